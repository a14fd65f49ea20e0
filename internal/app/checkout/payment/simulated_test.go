package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

func TestSimulatedProcessor_Charge(t *testing.T) {
	req := &contracts.PaymentRequest{SessionID: "s1", CustomerID: "c1", Amount: domain.MustMoney("172.8")}

	t.Run("approves", func(t *testing.T) {
		p := NewSimulatedProcessor(time.Millisecond, zap.NewNop())
		assert.NoError(t, p.Charge(context.Background(), req))
	})

	t.Run("no delay", func(t *testing.T) {
		p := NewSimulatedProcessor(0, zap.NewNop())
		assert.NoError(t, p.Charge(context.Background(), req))
	})

	t.Run("cancellation aborts", func(t *testing.T) {
		p := NewSimulatedProcessor(time.Hour, zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := p.Charge(ctx, req)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
