package list_products

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// Request contains filtering and pagination parameters.
type Request struct {
	Category  string
	PageSize  int
	PageToken string
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a page of the catalog in insertion order.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	filter := &contracts.ListFilter{
		Category:  req.Category,
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	}

	return q.readModel.ListProducts(ctx, filter)
}
