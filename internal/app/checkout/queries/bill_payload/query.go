package bill_payload

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/scan"
)

// Request identifies the bill to encode.
type Request struct {
	BillID string
}

// Query renders a bill as the payload a verifier scans.
type Query struct {
	bills contracts.BillRepository
}

// NewQuery creates a new bill payload query.
func NewQuery(bills contracts.BillRepository) *Query {
	return &Query{
		bills: bills,
	}
}

// Execute returns the JSON scan payload of the bill.
func (q *Query) Execute(ctx context.Context, req *Request) ([]byte, error) {
	bill, err := q.bills.GetByID(ctx, req.BillID)
	if err != nil {
		return nil, err
	}
	return scan.EncodeBill(bill)
}
