package inventory_summary

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// DefaultLowStockThreshold flags products with fewer units than this.
const DefaultLowStockThreshold = 10

// Request optionally overrides the low stock threshold.
type Request struct {
	LowStockThreshold int64 // 0 = DefaultLowStockThreshold
}

// Query handles the inventory summary query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new inventory summary query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute aggregates the catalog.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.InventorySummaryDTO, error) {
	threshold := req.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return q.readModel.InventorySummary(ctx, threshold)
}
