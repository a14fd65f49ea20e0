package remove_from_cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Request identifies the cart entry to drop.
type Request struct {
	SessionID string
	ProductID string
}

// Interactor handles the remove from cart use case.
type Interactor struct {
	products   contracts.ProductRepository
	carts      contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new remove from cart interactor.
func NewInteractor(
	products contracts.ProductRepository,
	carts contracts.CartRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		products:   products,
		carts:      carts,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute drops the entry and returns its reserved units to the shelf.
// If the product has left the catalog the entry is dropped with nothing
// to restore.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	cart, err := i.carts.GetBySession(ctx, req.SessionID)
	if err != nil {
		return err
	}
	if !cart.Contains(req.ProductID) {
		return domain.ErrNotInCart
	}

	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return err
	}
	if product != nil {
		defer product.ClearEvents()
	}

	if err := domain.RemoveFromCart(cart, req.ProductID, product, i.clock.Now()); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.carts.SaveMut(cart))

	// An orphaned entry leaves the product untouched.
	if product != nil && len(product.DomainEvents()) > 0 {
		mut, err := i.products.UpdateMut(product)
		if err != nil {
			return err
		}
		plan.Add(mut)

		events, err := i.outboxRepo.EventMuts(product.DomainEvents())
		if err != nil {
			return err
		}
		plan.AddMultiple(events)
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
