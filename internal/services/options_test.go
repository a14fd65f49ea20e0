package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/get_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_products"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_staff"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_to_cart"
	checkoutuc "github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/checkout"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/verify_bill"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/task"
	"github.com/light-bringer/selfcheckout-service/internal/testutil"
)

type approvingProcessor struct{}

func (approvingProcessor) Charge(ctx context.Context, req *contracts.PaymentRequest) error {
	return nil
}

// blockingProcessor never settles a charge until the context is cancelled.
type blockingProcessor struct {
	started chan struct{}
}

func (p *blockingProcessor) Charge(ctx context.Context, req *contracts.PaymentRequest) error {
	close(p.started)
	<-ctx.Done()
	return ctx.Err()
}

func newTestServices(t *testing.T, cfg Config, opts ...Option) *ServiceOptions {
	t.Helper()
	cfg.TaxRate = domain.MustTaxRate("0.08")
	opts = append([]Option{WithClock(testutil.NewMockClock()), WithSequentialIDs()}, opts...)
	svc, err := NewServiceOptions(context.Background(), cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestNewServiceOptions_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded catalog", func(t *testing.T) {
		svc := newTestServices(t, Config{})

		result, err := svc.Queries.ListProducts.Execute(ctx, &list_products.Request{})
		require.NoError(t, err)
		assert.Equal(t, int64(6), result.TotalCount)
	})

	t.Run("skip seed leaves the catalog empty", func(t *testing.T) {
		svc := newTestServices(t, Config{SkipSeed: true})

		result, err := svc.Queries.ListProducts.Execute(ctx, &list_products.Request{})
		require.NoError(t, err)
		assert.Zero(t, result.TotalCount)
	})

	t.Run("missing seed file", func(t *testing.T) {
		_, err := NewServiceOptions(ctx, Config{
			TaxRate:     domain.MustTaxRate("0.08"),
			CatalogSeed: "testdata/does-not-exist.yaml",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load catalog")
	})
}

func TestNewServiceOptions_Roster(t *testing.T) {
	ctx := context.Background()

	checkedOutBill := func(t *testing.T, svc *ServiceOptions) string {
		t.Helper()
		require.NoError(t, svc.UseCases.AddToCart.Execute(ctx, &add_to_cart.Request{SessionID: "s1", ProductID: "1"}))
		bill, err := svc.UseCases.Checkout.Execute(ctx, &checkoutuc.Request{
			SessionID:    "s1",
			CustomerID:   "c1",
			CustomerName: "Dana",
		})
		require.NoError(t, err)
		return bill.ID()
	}

	t.Run("embedded roster is seeded", func(t *testing.T) {
		svc := newTestServices(t, Config{})

		roster, err := svc.Queries.ListStaff.Execute(ctx)
		require.NoError(t, err)
		require.Len(t, roster, 2)
		assert.Equal(t, "STAFF-000001", roster[0].StaffID)
		assert.Equal(t, "John Smith", roster[0].Name)
		assert.Equal(t, "security", roster[1].Role)
	})

	t.Run("restricted verification accepts roster members only", func(t *testing.T) {
		svc := newTestServices(t, Config{RestrictVerifiers: true}, WithPaymentProcessor(approvingProcessor{}))
		billID := checkedOutBill(t, svc)

		_, err := svc.UseCases.VerifyBill.Execute(ctx, &verify_bill.Request{BillID: billID, Verifier: "Mallory"})
		assert.ErrorIs(t, err, domain.ErrUnknownVerifier)

		rec, err := svc.UseCases.VerifyBill.Execute(ctx, &verify_bill.Request{BillID: billID, Verifier: "EMILY JOHNSON"})
		require.NoError(t, err)
		assert.Equal(t, "Emily Johnson", rec.VerifiedBy())
	})

	t.Run("staff added at runtime can verify", func(t *testing.T) {
		svc := newTestServices(t, Config{RestrictVerifiers: true}, WithPaymentProcessor(approvingProcessor{}))
		billID := checkedOutBill(t, svc)

		_, err := svc.UseCases.AddStaff.Execute(ctx, &add_staff.Request{Name: "Priya Patel", Role: "security"})
		require.NoError(t, err)

		rec, err := svc.UseCases.VerifyBill.Execute(ctx, &verify_bill.Request{BillID: billID, Verifier: "Priya Patel"})
		require.NoError(t, err)
		assert.Equal(t, "Priya Patel", rec.VerifiedBy())
	})

	t.Run("unrestricted by default", func(t *testing.T) {
		svc := newTestServices(t, Config{}, WithPaymentProcessor(approvingProcessor{}))
		billID := checkedOutBill(t, svc)

		_, err := svc.UseCases.VerifyBill.Execute(ctx, &verify_bill.Request{BillID: billID, Verifier: "Mallory"})
		assert.NoError(t, err)
	})
}

func TestNewServiceOptions_SequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t, Config{SkipSeed: true})

	price, err := domain.ParseMoney("10.00")
	require.NoError(t, err)

	id, err := svc.UseCases.AddProduct.Execute(ctx, &add_product.Request{
		Name:      "Notebook",
		Category:  "Stationery",
		ListPrice: price,
		Stock:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, "PROD-000001", id)

	require.NoError(t, svc.UseCases.AddToCart.Execute(ctx, &add_to_cart.Request{
		SessionID: "s1",
		ProductID: id,
		Quantity:  2,
	}))

	bill, err := svc.UseCases.Checkout.Execute(ctx, &checkoutuc.Request{
		SessionID:    "s1",
		CustomerID:   "c1",
		CustomerName: "Dana",
	})
	require.NoError(t, err)
	assert.Equal(t, "BILL-000001", bill.ID())

	cart, err := svc.Queries.GetCart.Execute(ctx, &get_cart.Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestServiceOptions_Close(t *testing.T) {
	ctx := context.Background()
	processor := &blockingProcessor{started: make(chan struct{})}
	svc := newTestServices(t, Config{}, WithPaymentProcessor(processor))

	require.NoError(t, svc.UseCases.AddToCart.Execute(ctx, &add_to_cart.Request{
		SessionID: "s1",
		ProductID: "1",
	}))

	started := svc.UseCases.Checkout.Start(&checkoutuc.Request{
		SessionID:    "s1",
		CustomerID:   "c1",
		CustomerName: "Dana",
	})
	<-processor.started

	svc.Close()

	snap := started.Snapshot()
	assert.Equal(t, task.StatusCancelled, snap.Status)

	cart, err := svc.Queries.GetCart.Execute(ctx, &get_cart.Request{SessionID: "s1"})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestServiceOptions_TaskPruning(t *testing.T) {
	ctx := context.Background()

	finishedCheckout := func(t *testing.T) (*ServiceOptions, *clock.MockClock, string) {
		t.Helper()
		clk := testutil.NewMockClock()
		svc := newTestServices(t, Config{TaskRetention: time.Hour},
			WithClock(clk), WithPaymentProcessor(approvingProcessor{}))

		require.NoError(t, svc.UseCases.AddToCart.Execute(ctx, &add_to_cart.Request{SessionID: "s1", ProductID: "1"}))
		started := svc.UseCases.Checkout.Start(&checkoutuc.Request{
			SessionID:    "s1",
			CustomerID:   "c1",
			CustomerName: "Dana",
		})
		snap, err := started.Wait(ctx)
		require.NoError(t, err)
		require.Equal(t, task.StatusCompleted, snap.Status)
		return svc, clk, started.ID()
	}

	t.Run("keeps tasks within the retention", func(t *testing.T) {
		svc, clk, id := finishedCheckout(t)

		clk.Advance(59 * time.Minute)
		assert.Zero(t, svc.PruneTasks())
		_, err := svc.Tasks.Get(id)
		assert.NoError(t, err)
	})

	t.Run("drops tasks past the retention", func(t *testing.T) {
		svc, clk, id := finishedCheckout(t)

		clk.Advance(61 * time.Minute)
		assert.Equal(t, 1, svc.PruneTasks())
		_, err := svc.Tasks.Get(id)
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})

	t.Run("pruner runs until cancelled", func(t *testing.T) {
		svc, clk, id := finishedCheckout(t)
		clk.Advance(2 * time.Hour)

		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- svc.RunTaskPruner(runCtx, time.Millisecond) }()

		assert.Eventually(t, func() bool {
			_, err := svc.Tasks.Get(id)
			return err != nil
		}, time.Second, 5*time.Millisecond)

		cancel()
		assert.NoError(t, <-done)
	})
}
