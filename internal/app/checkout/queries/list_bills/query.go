package list_bills

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// Request filters bills by customer and verification status. Empty fields
// match everything.
type Request struct {
	CustomerID string
	Status     string
}

// Query handles the list bills query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list bills query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves bills in issue order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.BillDTO, error) {
	return q.readModel.ListBills(ctx, &contracts.BillFilter{
		CustomerID: req.CustomerID,
		Status:     req.Status,
	})
}
