package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/services"
	"github.com/light-bringer/selfcheckout-service/internal/transport/grpc/checkout"
	httphandler "github.com/light-bringer/selfcheckout-service/internal/transport/http"
	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	// 1. Load configuration from environment variables
	config, err := loadConfig()
	if err != nil {
		return err
	}

	logger.Info("starting self-checkout service",
		zap.String("grpc_port", config.GRPCPort),
		zap.String("http_port", config.HTTPPort),
		zap.String("tax_rate", config.TaxRate.String()),
		zap.Duration("payment_delay", config.PaymentDelay),
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, services.Config{
		TaxRate:       config.TaxRate,
		PaymentDelay:  config.PaymentDelay,
		CatalogSeed:   config.CatalogSeed,
		TaskRetention: config.TaskRetention,

		RestrictVerifiers: config.RestrictVerifiers,
	}, services.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC server and register services
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(checkout.LoggingInterceptor(logger.Named("rpc"))),
	)
	pb.RegisterCheckoutServiceServer(grpcServer, serviceOpts.CheckoutHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(pb.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", ":"+config.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	// 4. HTTP server talks to the gRPC server through a loopback client
	grpcConn, err := grpc.NewClient("localhost:"+config.GRPCPort,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return fmt.Errorf("failed to create gRPC client: %w", err)
	}
	defer grpcConn.Close()

	httpHandler := httphandler.NewHandler(pb.NewCheckoutServiceClient(grpcConn), config.RequestTimeout, logger.Named("http"))
	httpServer := &http.Server{
		Addr:              ":" + config.HTTPPort,
		Handler:           otelhttp.NewHandler(httphandler.NewRouter(httpHandler), "selfcheckout-http"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 5. Run both servers until a signal arrives or one of them fails
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("gRPC server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return serviceOpts.RunTaskPruner(gctx, config.TaskPruneInterval)
	})

	// 6. Graceful shutdown handling
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gracefully")

		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown error", zap.Error(err))
		}

		grpcServer.GracefulStop()
		return nil
	})

	return g.Wait()
}

// Config holds application configuration.
type Config struct {
	GRPCPort          string
	HTTPPort          string
	TaxRate           domain.TaxRate
	PaymentDelay      time.Duration
	CatalogSeed       string
	RestrictVerifiers bool
	TaskRetention     time.Duration
	TaskPruneInterval time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() (Config, error) {
	taxRate, err := domain.ParseTaxRate(getEnv("TAX_RATE", "0.08"))
	if err != nil {
		return Config{}, fmt.Errorf("TAX_RATE: %w", err)
	}

	paymentDelay, err := time.ParseDuration(getEnv("PAYMENT_DELAY", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("PAYMENT_DELAY: %w", err)
	}

	taskRetention, err := time.ParseDuration(getEnv("TASK_RETENTION", services.DefaultTaskRetention.String()))
	if err != nil {
		return Config{}, fmt.Errorf("TASK_RETENTION: %w", err)
	}

	restrictVerifiers, err := strconv.ParseBool(getEnv("RESTRICT_VERIFIERS", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("RESTRICT_VERIFIERS: %w", err)
	}

	return Config{
		GRPCPort:          getEnv("GRPC_PORT", "9090"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		TaxRate:           taxRate,
		PaymentDelay:      paymentDelay,
		CatalogSeed:       os.Getenv("CATALOG_SEED"),
		RestrictVerifiers: restrictVerifiers,
		TaskRetention:     taskRetention,
		TaskPruneInterval: time.Minute,
		RequestTimeout:    30 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
