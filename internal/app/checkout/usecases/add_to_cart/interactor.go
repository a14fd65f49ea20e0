package add_to_cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// DefaultQuantity is used when the request leaves Quantity at zero.
const DefaultQuantity = 1

// Request contains the data needed to reserve units into a session cart.
type Request struct {
	SessionID string
	ProductID string
	Quantity  int64 // 0 = DefaultQuantity
}

// Interactor handles the add to cart use case.
type Interactor struct {
	products   contracts.ProductRepository
	carts      contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new add to cart interactor.
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

// Execute moves units from the shelf into the cart. Stock and cart are
// written in the same commit.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	qty := req.Quantity
	if qty == 0 {
		qty = DefaultQuantity
	}

	// 1. Load aggregates
	cart, err := i.carts.GetBySession(ctx, req.SessionID)
	if err != nil {
		return err
	}

	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return err
	}
	if product != nil {
		defer product.ClearEvents()
	}

	// 2. Call domain method (a nil product yields ErrProductNotFound after
	// the quantity check)
	if err := domain.AddToCart(cart, product, qty, i.clock.Now()); err != nil {
		return err
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	mut, err := i.products.UpdateMut(product)
	if err != nil {
		return err
	}
	plan.Add(mut)
	plan.Add(i.carts.SaveMut(cart))

	events, err := i.outboxRepo.EventMuts(product.DomainEvents())
	if err != nil {
		return err
	}
	plan.AddMultiple(events)

	// 4. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
