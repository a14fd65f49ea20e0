package checkout

import (
	"context"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/task"
)

// TaskKind labels checkout tasks in the task manager.
const TaskKind = "checkout"

const (
	stepPricing = iota + 1
	stepPayment
	stepIssue
	totalSteps = stepIssue
)

// Request contains the data needed to bill a session cart.
type Request struct {
	SessionID    string
	CustomerID   string
	CustomerName string
}

// Interactor handles the checkout use case.
type Interactor struct {
	products   contracts.ProductRepository
	carts      contracts.CartRepository
	bills      contracts.BillRepository
	outboxRepo contracts.OutboxRepository
	payments   contracts.PaymentProcessor
	committer  *committer.Committer
	clock      clock.Clock
	billIDs    ident.Generator
	tasks      *task.Manager
	taxRate    domain.TaxRate
}

// NewInteractor creates a new checkout interactor.
func NewInteractor(
	products contracts.ProductRepository,
	carts contracts.CartRepository,
	bills contracts.BillRepository,
	outboxRepo contracts.OutboxRepository,
	payments contracts.PaymentProcessor,
	committer *committer.Committer,
	clock clock.Clock,
	billIDs ident.Generator,
	tasks *task.Manager,
	taxRate domain.TaxRate,
) *Interactor {
	return &Interactor{
		products:   products,
		carts:      carts,
		bills:      bills,
		outboxRepo: outboxRepo,
		payments:   payments,
		committer:  committer,
		clock:      clock,
		billIDs:    billIDs,
		tasks:      tasks,
		taxRate:    taxRate,
	}
}

// Execute runs checkout synchronously and returns the issued bill.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Bill, error) {
	return i.run(ctx, req, noProgress{})
}

// Start runs checkout as a background task. The task result is the issued
// *domain.Bill. Cancelling the task before the commit leaves cart and
// stock untouched.
func (i *Interactor) Start(req *Request) *task.Task {
	return i.tasks.Start(TaskKind, func(ctx context.Context, report task.Reporter) (any, error) {
		return i.run(ctx, req, report)
	})
}

// run follows the Golden Mutation Pattern with payment in between pricing
// and the commit. The cart is written at the version it was priced at, so a
// cart changed during payment aborts with committer.ErrVersionConflict.
func (i *Interactor) run(ctx context.Context, req *Request, report task.Reporter) (*domain.Bill, error) {
	if req.CustomerID == "" || req.CustomerName == "" {
		return nil, domain.ErrEmptyCustomer
	}

	// 1. Load aggregates and price the cart
	report.Report(stepPricing, totalSteps, "pricing cart")

	cart, err := i.carts.GetBySession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}

	products, err := i.products.GetMany(ctx, cart.ProductIDs())
	if err != nil {
		return nil, err
	}

	totals, err := domain.CartTotals(cart, products, i.taxRate)
	if err != nil {
		return nil, err
	}

	// 2. Charge before anything is written
	report.Report(stepPayment, totalSteps, "processing payment")

	err = i.payments.Charge(ctx, &contracts.PaymentRequest{
		SessionID:  req.SessionID,
		CustomerID: req.CustomerID,
		Amount:     totals.Total,
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	// 3. Issue the bill and discard the cart in one commit
	report.Report(stepIssue, totalSteps, "issuing bill")

	bill, err := domain.Checkout(
		i.billIDs.NewID(),
		cart,
		products,
		req.CustomerID,
		req.CustomerName,
		i.taxRate,
		i.clock.Now(),
	)
	if err != nil {
		return nil, err
	}
	defer bill.ClearEvents()

	plan := committer.NewPlan()

	mut, err := i.bills.InsertMut(bill)
	if err != nil {
		return nil, err
	}
	plan.Add(mut)
	plan.Add(i.carts.SaveMut(cart))

	events, err := i.outboxRepo.EventMuts(bill.DomainEvents())
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(events)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return bill, nil
}

type noProgress struct{}

func (noProgress) Report(int, int, string) {}
