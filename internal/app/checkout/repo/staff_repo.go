package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_staff"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// StaffRepo implements StaffRepository.
type StaffRepo struct {
	db    *memstore.DB
	model *m_staff.Model
}

// NewStaffRepo creates a new StaffRepo.
func NewStaffRepo(db *memstore.DB) contracts.StaffRepository {
	return &StaffRepo{
		db:    db,
		model: m_staff.NewModel(),
	}
}

// InsertMut creates a mutation adding the member under its name key.
func (r *StaffRepo) InsertMut(member *domain.StaffMember) *committer.Mutation {
	return r.model.InsertMut(&m_staff.Data{
		NameKey: member.Key(),
		StaffID: member.ID(),
		Name:    member.Name(),
		Role:    string(member.Role()),
		Phone:   member.Phone(),
		Email:   member.Email(),
		AddedOn: member.AddedOn(),
	})
}

// FindByName looks a member up by normalized name.
func (r *StaffRepo) FindByName(ctx context.Context, name string) (*domain.StaffMember, error) {
	row, err := r.db.Get(m_staff.TableName, domain.StaffKey(name))
	if err != nil {
		if errors.Is(err, memstore.ErrRowNotFound) {
			return nil, domain.ErrUnknownVerifier
		}
		return nil, fmt.Errorf("failed to read staff: %w", err)
	}

	data := row.(*m_staff.Data)
	return domain.ReconstructStaffMember(
		data.StaffID,
		data.Name,
		domain.StaffRole(data.Role),
		data.Phone,
		data.Email,
		data.AddedOn,
	), nil
}
