package repo

import (
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_verification"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
)

// VerificationRepo implements VerificationRepository.
type VerificationRepo struct {
	model *m_verification.Model
}

// NewVerificationRepo creates a new VerificationRepo.
func NewVerificationRepo() contracts.VerificationRepository {
	return &VerificationRepo{model: m_verification.NewModel()}
}

// InsertMut creates a mutation appending the record.
func (r *VerificationRepo) InsertMut(record *domain.VerificationRecord) (*committer.Mutation, error) {
	num, denom, err := moneyParts(record.BillTotal())
	if err != nil {
		return nil, fmt.Errorf("bill total: %w", err)
	}

	return r.model.InsertMut(&m_verification.Data{
		RecordID:             record.ID(),
		BillID:               record.BillID(),
		CustomerName:         record.CustomerName(),
		BillTotalNumerator:   num,
		BillTotalDenominator: denom,
		VerifiedBy:           record.VerifiedBy(),
		VerifiedAt:           record.VerifiedAt(),
	}), nil
}
