package verify_bill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/scan"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/clock"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
)

// Request identifies the bill a verifier has checked.
type Request struct {
	BillID   string
	Verifier string
}

// Interactor handles the verify bill use case.
type Interactor struct {
	bills         contracts.BillRepository
	verifications contracts.VerificationRepository
	outboxRepo    contracts.OutboxRepository
	committer     *committer.Committer
	clock         clock.Clock
	recordIDs     ident.Generator
	logger        *zap.Logger

	// roster, when set, limits verification to staff members.
	roster contracts.StaffRepository
}

// NewInteractor creates a new verify bill interactor.
func NewInteractor(
	bills contracts.BillRepository,
	verifications contracts.VerificationRepository,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
	recordIDs ident.Generator,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		bills:         bills,
		verifications: verifications,
		outboxRepo:    outboxRepo,
		committer:     committer,
		clock:         clock,
		recordIDs:     recordIDs,
		logger:        logger,
	}
}

// RestrictTo makes the interactor reject verifiers missing from the roster.
// Accepted verifiers are recorded under their roster name.
func (i *Interactor) RestrictTo(roster contracts.StaffRepository) *Interactor {
	i.roster = roster
	return i
}

// Execute marks the bill verified and appends a history record. A bill
// that is already verified yields *domain.AlreadyVerifiedError and the
// history is not touched.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.VerificationRecord, error) {
	bill, err := i.bills.GetByID(ctx, req.BillID)
	if err != nil {
		return nil, err
	}
	return i.verify(ctx, bill, req.Verifier)
}

// ExecuteScan decodes a scanned bill payload and verifies the bill it names.
func (i *Interactor) ExecuteScan(ctx context.Context, raw []byte, verifier string) (*domain.VerificationRecord, error) {
	payload, err := scan.DecodePayload(raw)
	if err != nil {
		return nil, err
	}
	return i.ExecutePayload(ctx, payload, verifier)
}

// ExecutePayload verifies the bill named by an already decoded payload.
// The stored bill is authoritative; a payload that disagrees with it is
// logged and otherwise ignored.
func (i *Interactor) ExecutePayload(ctx context.Context, payload *scan.Payload, verifier string) (*domain.VerificationRecord, error) {
	bill, err := i.bills.GetByID(ctx, payload.BillID)
	if err != nil {
		return nil, err
	}

	if expected, err := scan.FromBill(bill); err == nil && !expected.Total.Equal(payload.Total.Decimal) {
		i.logger.Warn("scanned total differs from stored bill",
			zap.String("bill_id", bill.ID()),
			zap.String("scanned_total", payload.Total.StringFixed(2)),
			zap.String("bill_total", bill.Total().String()),
		)
	}

	return i.verify(ctx, bill, verifier)
}

// verify follows the Golden Mutation Pattern. The bill update is guarded by
// its loaded version, so of two concurrent verifications only one commits.
func (i *Interactor) verify(ctx context.Context, bill *domain.Bill, verifier string) (*domain.VerificationRecord, error) {
	defer bill.ClearEvents()

	if i.roster != nil && strings.TrimSpace(verifier) != "" {
		member, err := i.roster.FindByName(ctx, verifier)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownVerifier) {
				i.logger.Warn("verification by unknown staff rejected",
					zap.String("bill_id", bill.ID()),
					zap.String("verifier", verifier),
				)
			}
			return nil, err
		}
		verifier = member.Name()
	}

	record, err := bill.Verify(i.recordIDs.NewID(), verifier, i.clock.Now())
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()

	billMut, err := i.bills.UpdateMut(bill)
	if err != nil {
		return nil, err
	}
	plan.Add(billMut)

	recordMut, err := i.verifications.InsertMut(record)
	if err != nil {
		return nil, err
	}
	plan.Add(recordMut)

	events, err := i.outboxRepo.EventMuts(bill.DomainEvents())
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(events)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	i.logger.Info("bill verified",
		zap.String("bill_id", bill.ID()),
		zap.String("verified_by", record.VerifiedBy()),
		zap.String("record_id", record.ID()),
	)
	return record, nil
}
