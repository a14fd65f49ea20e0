package get_bill

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// Request contains the bill ID to retrieve.
type Request struct {
	BillID string
}

// Query handles the get bill query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new get bill query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a bill by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.BillDTO, error) {
	return q.readModel.GetBill(ctx, req.BillID)
}
