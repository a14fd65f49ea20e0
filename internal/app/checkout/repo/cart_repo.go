package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_cart"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// CartRepo implements CartRepository on the in-memory store.
type CartRepo struct {
	db    *memstore.DB
	model *m_cart.Model
}

// NewCartRepo creates a new CartRepo.
func NewCartRepo(db *memstore.DB) contracts.CartRepository {
	return &CartRepo{
		db:    db,
		model: m_cart.NewModel(),
	}
}

// GetBySession returns the stored cart or a new empty one (version 0).
func (r *CartRepo) GetBySession(ctx context.Context, sessionID string) (*domain.Cart, error) {
	row, err := r.db.Get(m_cart.TableName, sessionID)
	if errors.Is(err, memstore.ErrRowNotFound) {
		return domain.NewCart(sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	data := row.(*m_cart.Data)
	entries := make([]domain.CartEntry, len(data.Entries))
	for i, e := range data.Entries {
		entries[i] = domain.CartEntry{ProductID: e.ProductID, Listing: e.Listing, Quantity: e.Quantity}
	}
	return domain.ReconstructCart(data.SessionID, entries, data.UpdatedAt, data.Version), nil
}

// SaveMut inserts a cart never stored before, otherwise updates it.
func (r *CartRepo) SaveMut(cart *domain.Cart) *committer.Mutation {
	data := &m_cart.Data{
		SessionID: cart.SessionID(),
		UpdatedAt: cart.UpdatedAt(),
	}
	for _, e := range cart.Entries() {
		data.Entries = append(data.Entries, m_cart.EntryData{ProductID: e.ProductID, Listing: e.Listing, Quantity: e.Quantity})
	}

	if cart.Version() == 0 {
		return r.model.InsertMut(data)
	}
	return r.model.UpdateMut(data, cart.Version())
}
