// Command checkout_demo drives one shopping session against a running
// server: scan two products, check out, then scan the bill at the exit.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/scan"
	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

const sessionID = "demo-session"

func main() {
	if err := run(); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	addr := getEnv("GRPC_ADDR", "localhost:9090")
	scanDelay, err := time.ParseDuration(getEnv("SCAN_DELAY", "500ms"))
	if err != nil {
		return fmt.Errorf("SCAN_DELAY: %w", err)
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	client := pb.NewCheckoutServiceClient(conn)
	scanner := scan.NewSimulator(scanDelay)

	// 1. Browse the catalog
	catalog, err := client.ListProducts(ctx, &pb.ListProductsRequest{PageSize: 2})
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	if len(catalog.Products) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	for _, p := range catalog.Products {
		logger.Info("product",
			zap.String("id", p.ProductID),
			zap.String("name", p.Name),
			zap.String("price", p.EffectivePrice),
			zap.Int64("stock", p.Stock),
		)
	}

	// 2. Scan each product into the cart
	for _, p := range catalog.Products {
		result, err := scanner.Acquire(ctx, scan.ProductScan(p.ProductID))
		if err != nil {
			return fmt.Errorf("scan product: %w", err)
		}
		_, err = client.HandleScan(ctx, &pb.HandleScanRequest{
			Kind:      result.Kind.String(),
			ProductID: result.ProductID,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("add %s: %w", p.ProductID, err)
		}
		logger.Info("scanned into cart", zap.String("product_id", p.ProductID))
	}

	cart, err := client.GetCart(ctx, &pb.GetCartRequest{SessionID: sessionID})
	if err != nil {
		return fmt.Errorf("get cart: %w", err)
	}
	logger.Info("cart",
		zap.Int64("units", cart.Cart.Units),
		zap.String("subtotal", cart.Cart.Subtotal),
		zap.String("tax", cart.Cart.Tax),
		zap.String("total", cart.Cart.Total),
	)

	// 3. Check out in the background and follow progress
	started, err := client.StartCheckout(ctx, &pb.CheckoutRequest{
		SessionID:    sessionID,
		CustomerID:   "demo-customer",
		CustomerName: "Demo Customer",
	})
	if err != nil {
		return fmt.Errorf("start checkout: %w", err)
	}

	bill, err := waitForBill(ctx, client, started.TaskID, logger)
	if err != nil {
		return err
	}
	logger.Info("bill issued", zap.String("bill_id", bill.BillID), zap.String("total", bill.Total))

	// 4. Scan the bill's QR code at the exit
	payload, err := client.GetBillPayload(ctx, &pb.GetBillPayloadRequest{BillID: bill.BillID})
	if err != nil {
		return fmt.Errorf("get payload: %w", err)
	}
	decoded, err := scan.DecodePayload([]byte(payload.Payload))
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if _, err := scanner.Acquire(ctx, scan.BillScan(decoded)); err != nil {
		return fmt.Errorf("scan bill: %w", err)
	}

	verified, err := client.HandleScan(ctx, &pb.HandleScanRequest{
		Kind:     scan.KindBill.String(),
		Payload:  payload.Payload,
		Verifier: "Emily Johnson",
	})
	if err != nil {
		return fmt.Errorf("verify bill: %w", err)
	}
	logger.Info("bill verified",
		zap.String("record_id", verified.Verification.RecordID),
		zap.String("verified_by", verified.Verification.VerifiedBy),
	)

	// 5. A second scan of the same bill is refused
	_, err = client.VerifyScan(ctx, &pb.VerifyScanRequest{Payload: payload.Payload, Verifier: "John Smith"})
	if err == nil {
		return fmt.Errorf("bill was verified twice")
	}
	logger.Info("rescan rejected", zap.String("reason", status.Convert(err).Message()))

	return nil
}

func waitForBill(ctx context.Context, client pb.CheckoutServiceClient, taskID string, logger *zap.Logger) (*pb.Bill, error) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	lastStep := ""
	for {
		resp, err := client.GetTask(ctx, &pb.GetTaskRequest{TaskID: taskID})
		if err != nil {
			return nil, fmt.Errorf("get task: %w", err)
		}

		task := resp.Task
		if task.StepName != lastStep {
			logger.Info("checkout progress",
				zap.String("step", task.StepName),
				zap.Float64("percent", task.Percentage),
			)
			lastStep = task.StepName
		}

		switch task.Status {
		case "completed":
			return task.Bill, nil
		case "failed", "cancelled":
			return nil, fmt.Errorf("checkout %s: %s", task.Status, task.Error)
		}

		select {
		case <-ctx.Done():
			if _, err := client.CancelTask(context.Background(), &pb.CancelTaskRequest{TaskID: taskID}); err != nil {
				logger.Warn("cancel checkout", zap.Error(err))
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
