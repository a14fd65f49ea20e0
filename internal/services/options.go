package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/payment"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/bill_payload"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/get_bill"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/get_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/get_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/inventory_summary"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_bills"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_events"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_products"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_staff"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/list_verifications"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/queries/sales_report"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/repo"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/seed"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_staff"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_to_cart"
	checkoutuc "github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/checkout"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/clear_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/handle_scan"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/remove_from_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/remove_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/set_quantity"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/update_product"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/verify_bill"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/task"
	"github.com/light-bringer/selfcheckout-service/internal/transport/grpc/checkout"
)

// Config holds the settings the service is wired with.
type Config struct {
	TaxRate      domain.TaxRate
	PaymentDelay time.Duration

	// CatalogSeed is a YAML catalog path; empty loads the embedded demo
	// catalog and roster. SkipSeed starts with both empty.
	CatalogSeed string
	SkipSeed    bool

	// RestrictVerifiers rejects bill verifications by anyone missing from
	// the staff roster.
	RestrictVerifiers bool

	// TaskRetention is how long a finished checkout task stays pollable.
	// Zero means DefaultTaskRetention.
	TaskRetention time.Duration
}

// DefaultTaskRetention keeps finished tasks around long enough for a kiosk
// to pick up the result.
const DefaultTaskRetention = 15 * time.Minute

// Option overrides a default dependency.
type Option func(*settings)

type settings struct {
	clock    clock.Clock
	logger   *zap.Logger
	payments contracts.PaymentProcessor
	ids      func(prefix string) ident.Generator
}

// WithClock replaces the wall clock.
func WithClock(clk clock.Clock) Option {
	return func(s *settings) { s.clock = clk }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithPaymentProcessor replaces the simulated processor.
func WithPaymentProcessor(p contracts.PaymentProcessor) Option {
	return func(s *settings) { s.payments = p }
}

// WithSequentialIDs makes every generated identifier sequential
// (BILL-000001, ...) instead of UUID based.
func WithSequentialIDs() Option {
	return func(s *settings) {
		s.ids = func(prefix string) ident.Generator { return ident.NewSequenceGenerator(prefix) }
	}
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store           *memstore.DB
	Tasks           *task.Manager
	UseCases        checkout.UseCases
	Queries         checkout.Queries
	CheckoutHandler *checkout.Handler
	Logger          *zap.Logger

	clock         clock.Clock
	taskRetention time.Duration
}

// NewServiceOptions creates and wires up all application dependencies and
// seeds the catalog.
func NewServiceOptions(ctx context.Context, cfg Config, opts ...Option) (*ServiceOptions, error) {
	s := &settings{
		clock:  clock.NewRealClock(),
		logger: zap.NewNop(),
		ids: func(prefix string) ident.Generator {
			return ident.NewUUIDGenerator(prefix + "-")
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.payments == nil {
		s.payments = payment.NewSimulatedProcessor(cfg.PaymentDelay, s.logger.Named("payment"))
	}

	// 1. Initialize the store
	db, err := repo.NewStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	// 2. Create infrastructure components
	clk := s.clock
	comm := committer.NewCommitter(db)
	tasks := task.NewManager(s.ids("TASK"), clk)

	// 3. Create repositories
	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)
	billRepo := repo.NewBillRepo(db)
	verificationRepo := repo.NewVerificationRepo()
	staffRepo := repo.NewStaffRepo(db)
	outboxRepo := repo.NewOutboxRepo(s.ids("EVT"), clk)
	readModel := repo.NewReadModel(db)
	eventsReadModel := repo.NewEventsReadModel(db)

	// 4. Create command use cases (write operations)
	addToCart := add_to_cart.NewInteractor(productRepo, cartRepo, outboxRepo, comm, clk)
	verifyBill := verify_bill.NewInteractor(billRepo, verificationRepo, outboxRepo, comm, clk, s.ids("VER"), s.logger.Named("verification"))
	if cfg.RestrictVerifiers {
		verifyBill.RestrictTo(staffRepo)
	}

	uc := checkout.UseCases{
		AddProduct:     add_product.NewInteractor(productRepo, outboxRepo, comm, clk, s.ids("PROD")),
		UpdateProduct:  update_product.NewInteractor(productRepo, outboxRepo, comm, clk),
		RemoveProduct:  remove_product.NewInteractor(productRepo, outboxRepo, comm, clk),
		AddToCart:      addToCart,
		RemoveFromCart: remove_from_cart.NewInteractor(productRepo, cartRepo, outboxRepo, comm, clk),
		SetQuantity:    set_quantity.NewInteractor(productRepo, cartRepo, outboxRepo, comm, clk),
		ClearCart:      clear_cart.NewInteractor(productRepo, cartRepo, outboxRepo, comm, clk),
		Checkout: checkoutuc.NewInteractor(productRepo, cartRepo, billRepo, outboxRepo, s.payments,
			comm, clk, s.ids("BILL"), tasks, cfg.TaxRate),
		VerifyBill: verifyBill,
		HandleScan: handle_scan.NewInteractor(addToCart, verifyBill),
		AddStaff:   add_staff.NewInteractor(staffRepo, outboxRepo, comm, clk, s.ids("STAFF")),
	}

	// 5. Create query use cases (read operations)
	q := checkout.Queries{
		GetProduct:        get_product.NewQuery(readModel),
		ListProducts:      list_products.NewQuery(readModel),
		GetCart:           get_cart.NewQuery(productRepo, cartRepo, cfg.TaxRate),
		GetBill:           get_bill.NewQuery(readModel),
		ListBills:         list_bills.NewQuery(readModel),
		BillPayload:       bill_payload.NewQuery(billRepo),
		ListVerifications: list_verifications.NewQuery(readModel),
		ListStaff:         list_staff.NewQuery(readModel),
		InventorySummary:  inventory_summary.NewQuery(readModel),
		SalesReport:       sales_report.NewQuery(readModel),
		ListEvents:        list_events.NewQuery(eventsReadModel),
	}

	// 6. Seed the catalog and roster
	if !cfg.SkipSeed {
		n, err := seedCatalog(ctx, uc.AddProduct, cfg.CatalogSeed)
		if err != nil {
			return nil, err
		}
		staff, err := seedRoster(ctx, uc.AddStaff, cfg.CatalogSeed)
		if err != nil {
			return nil, err
		}
		s.logger.Info("catalog seeded",
			zap.Int("products", n),
			zap.Int("staff", staff),
			zap.String("source", seedSource(cfg.CatalogSeed)),
		)
	}

	retention := cfg.TaskRetention
	if retention <= 0 {
		retention = DefaultTaskRetention
	}

	// 7. Create gRPC handler
	handler := checkout.NewHandler(uc, q, tasks, s.logger.Named("grpc"))

	return &ServiceOptions{
		Store:           db,
		Tasks:           tasks,
		UseCases:        uc,
		Queries:         q,
		CheckoutHandler: handler,
		Logger:          s.logger,
		clock:           clk,
		taskRetention:   retention,
	}, nil
}

// Close cancels background tasks still running.
func (s *ServiceOptions) Close() {
	if n := s.Tasks.CancelAll(); n > 0 {
		s.Logger.Info("cancelled running tasks", zap.Int("count", n))
	}
}

// PruneTasks forgets checkout tasks that finished more than the retention
// ago and returns how many were dropped.
func (s *ServiceOptions) PruneTasks() int {
	return s.Tasks.Prune(s.clock.Now().Add(-s.taskRetention))
}

// RunTaskPruner calls PruneTasks every interval until ctx is done.
func (s *ServiceOptions) RunTaskPruner(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.PruneTasks(); n > 0 {
				s.Logger.Debug("pruned finished tasks", zap.Int("count", n))
			}
		}
	}
}

func seedCatalog(ctx context.Context, addProduct *add_product.Interactor, path string) (int, error) {
	entries, err := seed.LoadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	for _, e := range entries {
		_, err := addProduct.Execute(ctx, &add_product.Request{
			ProductID:       e.ID,
			Name:            e.Spec.Name,
			Category:        e.Spec.Category,
			ListPrice:       e.Spec.ListPrice,
			DiscountedPrice: e.Spec.DiscountedPrice,
			Stock:           e.Spec.Stock,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to seed product %q: %w", e.ID, err)
		}
	}
	return len(entries), nil
}

func seedRoster(ctx context.Context, addStaff *add_staff.Interactor, path string) (int, error) {
	entries, err := seed.LoadRosterFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load roster: %w", err)
	}

	for _, e := range entries {
		_, err := addStaff.Execute(ctx, &add_staff.Request{
			Name:  e.Spec.Name,
			Role:  string(e.Spec.Role),
			Phone: e.Spec.Phone,
			Email: e.Spec.Email,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to seed staff %q: %w", e.Spec.Name, err)
		}
	}
	return len(entries), nil
}

func seedSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
