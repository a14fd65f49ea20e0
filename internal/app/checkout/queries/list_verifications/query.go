package list_verifications

import (
	"context"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
)

// Query handles the verification history query.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list verifications query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns every verification record, oldest first.
func (q *Query) Execute(ctx context.Context) ([]*contracts.VerificationDTO, error) {
	return q.readModel.ListVerifications(ctx)
}
