package list_staff

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// Query handles the staff roster query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list staff query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns the roster in the order members were added.
func (q *Query) Execute(ctx context.Context) ([]*contracts.StaffDTO, error) {
	return q.readModel.ListStaff(ctx)
}
