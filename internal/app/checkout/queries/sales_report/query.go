package sales_report

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// Query handles the daily sales report.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new sales report query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute totals completed bills per UTC day, oldest day first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.DailySalesDTO, error) {
	return q.readModel.SalesReport(ctx)
}
