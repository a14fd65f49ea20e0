package handle_scan

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/scan"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_to_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/verify_bill"
)

// ErrNothingScanned is returned for a scan that produced no result.
var ErrNothingScanned = errors.New("nothing scanned")

// Request is a scanner result together with who scanned it. A product scan
// lands in SessionID's cart; a bill scan is verified by Verifier.
type Request struct {
	Result    scan.Result
	SessionID string
	Verifier  string
}

// Response reports what a scan did.
type Response struct {
	Kind   scan.Kind
	Record *domain.VerificationRecord // set for bill scans
}

// Interactor dispatches scanner results.
type Interactor struct {
	addToCart  *add_to_cart.Interactor
	verifyBill *verify_bill.Interactor
}

// NewInteractor creates a new handle scan interactor.
func NewInteractor(addToCart *add_to_cart.Interactor, verifyBill *verify_bill.Interactor) *Interactor {
	return &Interactor{
		addToCart:  addToCart,
		verifyBill: verifyBill,
	}
}

// Execute adds one unit of a scanned product to the cart, or verifies a
// scanned bill.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	switch req.Result.Kind {
	case scan.KindProduct:
		err := i.addToCart.Execute(ctx, &add_to_cart.Request{
			SessionID: req.SessionID,
			ProductID: req.Result.ProductID,
			Quantity:  1,
		})
		if err != nil {
			return nil, err
		}
		return &Response{Kind: scan.KindProduct}, nil

	case scan.KindBill:
		if req.Result.Payload == nil {
			return nil, fmt.Errorf("%w: bill scan without payload", domain.ErrInvalidScanPayload)
		}
		record, err := i.verifyBill.ExecutePayload(ctx, req.Result.Payload, req.Verifier)
		if err != nil {
			return nil, err
		}
		return &Response{Kind: scan.KindBill, Record: record}, nil

	default:
		return nil, ErrNothingScanned
	}
}
