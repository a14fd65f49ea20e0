package update_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// Request carries the full replacement record. Update is not a patch:
// a nil DiscountedPrice removes the discount and Stock becomes the new
// shelf count.
type Request struct {
	ProductID       string
	Name            string
	Category        string
	ListPrice       *domain.Money
	DiscountedPrice *domain.Money
	Stock           int64
}

// Interactor handles the update product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update product interactor.
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

// Execute replaces a product following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Load aggregate
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	// Clear events on function exit to prevent duplicates on retry
	defer product.ClearEvents()

	// 2. Call domain method
	err = product.Replace(domain.ProductSpec{
		Name:            req.Name,
		Category:        req.Category,
		ListPrice:       req.ListPrice,
		DiscountedPrice: req.DiscountedPrice,
		Stock:           req.Stock,
	}, i.clock.Now())
	if err != nil {
		return err
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	mut, err := i.repo.UpdateMut(product)
	if err != nil {
		return err
	}
	plan.Add(mut)

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
