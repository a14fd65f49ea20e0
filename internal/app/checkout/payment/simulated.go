// Package payment holds PaymentProcessor implementations.
package payment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// SimulatedProcessor approves every charge after a fixed processing delay.
// Cancelling ctx during the delay aborts the charge.
type SimulatedProcessor struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSimulatedProcessor creates a processor that waits delay before approving.
func NewSimulatedProcessor(delay time.Duration, logger *zap.Logger) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay, logger: logger}
}

var _ contracts.PaymentProcessor = (*SimulatedProcessor)(nil)

// Charge implements contracts.PaymentProcessor.
func (p *SimulatedProcessor) Charge(ctx context.Context, req *contracts.PaymentRequest) error {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("payment processing aborted: %w", ctx.Err())
		}
	}

	p.logger.Info("payment approved",
		zap.String("session_id", req.SessionID),
		zap.String("customer_id", req.CustomerID),
		zap.String("amount", req.Amount.String()),
	)
	return nil
}
