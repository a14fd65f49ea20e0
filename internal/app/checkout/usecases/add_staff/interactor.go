package add_staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
)

// Request describes the person joining the roster.
type Request struct {
	Name  string
	Role  string
	Phone string
	Email string
}

// Interactor handles the add staff use case.
type Interactor struct {
	repo       contracts.StaffRepository
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
	ids        ident.Generator
}

// NewInteractor creates a new add staff interactor.
func NewInteractor(
	repo contracts.StaffRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	ids ident.Generator,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
		ids:        ids,
	}
}

// Execute puts a member on the roster and returns the stored aggregate.
// A name already on the roster, in any letter case, yields
// domain.ErrDuplicateStaff.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.StaffMember, error) {
	role, err := domain.ParseStaffRole(req.Role)
	if err != nil {
		return nil, err
	}

	member, err := domain.NewStaffMember(i.ids.NewID(), domain.StaffSpec{
		Name:  req.Name,
		Role:  role,
		Phone: req.Phone,
		Email: req.Email,
	}, i.clock.Now())
	if err != nil {
		return nil, err
	}
	defer member.ClearEvents()

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(member))

	events, err := i.outboxRepo.EventMuts(member.DomainEvents())
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(events)

	if err := i.committer.Apply(ctx, plan); err != nil {
		if errors.Is(err, committer.ErrDuplicateKey) {
			return nil, domain.ErrDuplicateStaff
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return member, nil
}
