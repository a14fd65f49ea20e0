package remove_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Request identifies the product to remove.
type Request struct {
	ProductID string
}

// Interactor handles the remove product use case. Carts still holding the
// product are left alone; the ledger reports the entries as not found later.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new remove product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute removes a product following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}
	defer product.ClearEvents()

	product.MarkRemoved(i.clock.Now())

	plan := committer.NewPlan()
	plan.Add(i.repo.DeleteMut(product.ID()))

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
