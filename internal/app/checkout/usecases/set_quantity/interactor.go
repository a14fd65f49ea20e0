package set_quantity

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Request sets the reserved quantity of one cart entry.
type Request struct {
	SessionID string
	ProductID string
	Quantity  int64
}

// Interactor handles the set quantity use case.
type Interactor struct {
	products   contracts.ProductRepository
	carts      contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new set quantity interactor.
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

// Execute reserves or releases only the difference between the old and
// the new quantity.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	cart, err := i.carts.GetBySession(ctx, req.SessionID)
	if err != nil {
		return err
	}
	oldQty := cart.Quantity(req.ProductID)

	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		return err
	}
	if product != nil {
		defer product.ClearEvents()
	}

	if err := domain.SetQuantity(cart, req.ProductID, product, req.Quantity, i.clock.Now()); err != nil {
		return err
	}
	if oldQty == req.Quantity {
		return nil
	}

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

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
