package clear_cart

import (
	"context"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Request identifies the cart to empty.
type Request struct {
	SessionID string
}

// Interactor handles the clear cart use case.
type Interactor struct {
	products   contracts.ProductRepository
	carts      contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new clear cart interactor.
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

// Execute returns every reserved unit to the shelf and empties the cart.
// Clearing an empty cart is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	cart, err := i.carts.GetBySession(ctx, req.SessionID)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return nil
	}

	products, err := i.products.GetMany(ctx, cart.ProductIDs())
	if err != nil {
		return err
	}

	touched, err := domain.ClearCart(cart, products, i.clock.Now())
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.carts.SaveMut(cart))

	var events []domain.DomainEvent
	for _, p := range touched {
		mut, err := i.products.UpdateMut(p)
		if err != nil {
			return err
		}
		plan.Add(mut)
		events = append(events, p.DomainEvents()...)
	}

	eventMuts, err := i.outboxRepo.EventMuts(events)
	if err != nil {
		return err
	}
	plan.AddMultiple(eventMuts)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
