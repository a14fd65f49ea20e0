package contracts

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

// PaymentRequest describes a charge for a cart about to be billed.
type PaymentRequest struct {
	SessionID  string
	CustomerID string
	Amount     *domain.Money
}

// PaymentProcessor authorizes payment before a bill is issued.
// A refusal must be reported as domain.ErrPaymentDeclined (possibly wrapped).
type PaymentProcessor interface {
	Charge(ctx context.Context, req *PaymentRequest) error
}
