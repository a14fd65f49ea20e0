package add_product

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
)

// Request contains the data needed to add a product to the catalog.
type Request struct {
	ProductID       string // empty = generate one
	Name            string
	Category        string
	ListPrice       *domain.Money
	DiscountedPrice *domain.Money // nil = no discount
	Stock           int64
}

// Interactor handles the add product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
	ids        ident.Generator
}

// NewInteractor creates a new add product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	ids ident.Generator,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
		ids:        ids,
	}
}

// Execute adds a product following the Golden Mutation Pattern and returns its id.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	productID := req.ProductID
	if productID == "" {
		productID = i.ids.NewID()
	}

	// 1. Reject duplicates before building anything
	exists, err := i.repo.Exists(ctx, productID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrDuplicateID
	}

	// 2. Create domain aggregate
	product, err := domain.NewProduct(productID, domain.ProductSpec{
		Name:            req.Name,
		Category:        req.Category,
		ListPrice:       req.ListPrice,
		DiscountedPrice: req.DiscountedPrice,
		Stock:           req.Stock,
	}, i.clock.Now())
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	// 3. Build commit plan
	plan := committer.NewPlan()

	mut, err := i.repo.InsertMut(product)
	if err != nil {
		return "", err
	}
	plan.Add(mut)

	events, err := i.outboxRepo.EventMuts(product.DomainEvents())
	if err != nil {
		return "", err
	}
	plan.AddMultiple(events)

	// 4. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		// Lost a race with another add of the same id.
		if errors.Is(err, committer.ErrDuplicateKey) {
			return "", domain.ErrDuplicateID
		}
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}
