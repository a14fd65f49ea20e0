// Package testutil builds in-memory checkout environments for tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_events"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/repo"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_outbox"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// Env is a fresh store with every repository wired to it. Identifiers are
// sequential (BILL-000001, VER-000001, EVT-000001, TASK-000001) and the
// clock only moves when the test advances it.
type Env struct {
	DB            *memstore.DB
	Clock         *clock.MockClock
	Committer     *committer.Committer
	BillIDs       ident.Generator
	RecordIDs     ident.Generator
	TaskIDs       ident.Generator
	Products      contracts.ProductRepository
	Carts         contracts.CartRepository
	Bills         contracts.BillRepository
	Verifications contracts.VerificationRepository
	Staff         contracts.StaffRepository
	Outbox        contracts.OutboxRepository
	ReadModel     contracts.ReadModel
	Events        *repo.EventsReadModel
}

// NewEnv creates an empty environment.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	db, err := repo.NewStore()
	require.NoError(t, err, "failed to create store")

	clk := NewMockClock()
	return &Env{
		DB:            db,
		Clock:         clk,
		Committer:     committer.NewCommitter(db),
		BillIDs:       ident.NewSequenceGenerator("BILL"),
		RecordIDs:     ident.NewSequenceGenerator("VER"),
		TaskIDs:       ident.NewSequenceGenerator("TASK"),
		Products:      repo.NewProductRepo(db),
		Carts:         repo.NewCartRepo(db),
		Bills:         repo.NewBillRepo(db),
		Verifications: repo.NewVerificationRepo(),
		Staff:         repo.NewStaffRepo(db),
		Outbox:        repo.NewOutboxRepo(ident.NewSequenceGenerator("EVT"), clk),
		ReadModel:     repo.NewReadModel(db),
		Events:        repo.NewEventsReadModel(db),
	}
}

// CreateTestProduct stores a product directly. An empty discounted price
// means no discount.
func (e *Env) CreateTestProduct(t *testing.T, id, listPrice, discountedPrice string, stock int64) *domain.Product {
	t.Helper()

	spec := domain.ProductSpec{
		Name:      "Test product " + id,
		Category:  "Electronics",
		ListPrice: domain.MustMoney(listPrice),
		Stock:     stock,
	}
	if discountedPrice != "" {
		spec.DiscountedPrice = domain.MustMoney(discountedPrice)
	}

	product, err := domain.NewProduct(id, spec, e.Clock.Now())
	require.NoError(t, err, "failed to build test product")
	product.ClearEvents()

	mut, err := e.Products.InsertMut(product)
	require.NoError(t, err)
	plan := committer.NewPlan()
	plan.Add(mut)
	require.NoError(t, e.Committer.Apply(context.Background(), plan), "failed to create test product")

	stored, err := e.Products.GetByID(context.Background(), id)
	require.NoError(t, err)
	return stored
}

// CreateTestStaff puts a member on the roster directly.
func (e *Env) CreateTestStaff(t *testing.T, id, name string, role domain.StaffRole) *domain.StaffMember {
	t.Helper()

	member, err := domain.NewStaffMember(id, domain.StaffSpec{Name: name, Role: role}, e.Clock.Now())
	require.NoError(t, err, "failed to build test staff")
	member.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(e.Staff.InsertMut(member))
	require.NoError(t, e.Committer.Apply(context.Background(), plan), "failed to create test staff")
	return member
}

// Stock returns the current shelf stock of a product.
func (e *Env) Stock(t *testing.T, productID string) int64 {
	t.Helper()
	p, err := e.Products.GetByID(context.Background(), productID)
	require.NoError(t, err)
	return p.Stock()
}

// Cart loads a session cart.
func (e *Env) Cart(t *testing.T, sessionID string) *domain.Cart {
	t.Helper()
	c, err := e.Carts.GetBySession(context.Background(), sessionID)
	require.NoError(t, err)
	return c
}

// EventTypes lists the recorded outbox event types, newest first.
func (e *Env) EventTypes(t *testing.T) []string {
	t.Helper()
	rows, _, err := e.Events.ListEvents(context.Background(), &list_events.Request{Limit: 1000})
	require.NoError(t, err)

	types := make([]string, len(rows))
	for i, row := range rows {
		types[i] = row.EventType
	}
	return types
}

// AssertOutboxEvent verifies at least one pending event of eventType exists
// for the aggregate.
func (e *Env) AssertOutboxEvent(t *testing.T, eventType, aggregateID string) {
	t.Helper()
	rows, _, err := e.Events.ListEvents(context.Background(), &list_events.Request{
		EventType:   &eventType,
		AggregateID: &aggregateID,
		Limit:       1000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, rows, "expected %s event for %s", eventType, aggregateID)
	require.Equal(t, m_outbox.StatusPending, rows[0].Status)
}

// OutboxCount returns the number of recorded events.
func (e *Env) OutboxCount(t *testing.T) int64 {
	t.Helper()
	_, total, err := e.Events.ListEvents(context.Background(), &list_events.Request{Limit: 1})
	require.NoError(t, err)
	return total
}

// CreateTestBill stores an issued, unverified bill of 2 x 80.00 at a 0.08
// tax rate (total 172.80) for customer "Dana".
func (e *Env) CreateTestBill(t *testing.T, billID string) *domain.Bill {
	t.Helper()

	lines := []domain.BillLine{{ProductID: "P1", Name: "Test product P1", Quantity: 2, UnitPrice: domain.MustMoney("80")}}
	bill, err := domain.IssueBill(billID, "cust-1", "Dana", lines, domain.MustTaxRate("0.08"), e.Clock.Now())
	require.NoError(t, err)
	bill.ClearEvents()

	mut, err := e.Bills.InsertMut(bill)
	require.NoError(t, err)
	plan := committer.NewPlan()
	plan.Add(mut)
	require.NoError(t, e.Committer.Apply(context.Background(), plan), "failed to create test bill")

	stored, err := e.Bills.GetByID(context.Background(), billID)
	require.NoError(t, err)
	return stored
}
