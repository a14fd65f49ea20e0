package contracts

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Repositories return mutations, they don't apply them (Golden Mutation Pattern).

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product.
	// Returns error if money values exceed int64 bounds.
	InsertMut(product *domain.Product) (*committer.Mutation, error)

	// UpdateMut creates a mutation replacing the product, guarded by the
	// version it was loaded at.
	UpdateMut(product *domain.Product) (*committer.Mutation, error)

	// DeleteMut creates a mutation removing the product.
	DeleteMut(productID string) *committer.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	// Returns domain.ErrProductNotFound when absent.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetMany loads the given products. Missing ids are simply absent from the map.
	GetMany(ctx context.Context, productIDs []string) (map[string]*domain.Product, error)

	// Exists checks if a product exists.
	Exists(ctx context.Context, productID string) (bool, error)
}

// CartRepository defines the interface for session carts.
type CartRepository interface {
	// GetBySession returns the session's cart, or a new empty one.
	GetBySession(ctx context.Context, sessionID string) (*domain.Cart, error)

	// SaveMut inserts a new cart or updates an existing one at its loaded version.
	SaveMut(cart *domain.Cart) *committer.Mutation
}

// BillRepository defines the interface for issued bills.
type BillRepository interface {
	// InsertMut creates a mutation for inserting a new bill.
	InsertMut(bill *domain.Bill) (*committer.Mutation, error)

	// UpdateMut creates a mutation recording the bill's verification state.
	UpdateMut(bill *domain.Bill) (*committer.Mutation, error)

	// GetByID returns domain.ErrUnknownBill when absent.
	GetByID(ctx context.Context, billID string) (*domain.Bill, error)
}

// VerificationRepository defines the append-only verification history.
type VerificationRepository interface {
	InsertMut(record *domain.VerificationRecord) (*committer.Mutation, error)
}

// StaffRepository defines the verification roster.
type StaffRepository interface {
	// InsertMut creates a mutation adding a member. Committing it fails with
	// committer.ErrDuplicateKey when the name is already on the roster.
	InsertMut(member *domain.StaffMember) *committer.Mutation

	// FindByName looks a member up by name, ignoring case and extra spaces.
	// Returns domain.ErrUnknownVerifier when absent.
	FindByName(ctx context.Context, name string) (*domain.StaffMember, error)
}
