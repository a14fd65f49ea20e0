package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_bill"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/memstore"
)

// BillRepo implements BillRepository on the in-memory store.
type BillRepo struct {
	db    *memstore.DB
	model *m_bill.Model
}

// NewBillRepo creates a new BillRepo.
func NewBillRepo(db *memstore.DB) contracts.BillRepository {
	return &BillRepo{
		db:    db,
		model: m_bill.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new bill.
func (r *BillRepo) InsertMut(bill *domain.Bill) (*committer.Mutation, error) {
	data, err := billToData(bill)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation replacing the bill at its loaded version.
func (r *BillRepo) UpdateMut(bill *domain.Bill) (*committer.Mutation, error) {
	data, err := billToData(bill)
	if err != nil {
		return nil, err
	}
	return r.model.UpdateMut(data, bill.Version()), nil
}

// GetByID retrieves a bill by ID.
func (r *BillRepo) GetByID(ctx context.Context, billID string) (*domain.Bill, error) {
	row, err := r.db.Get(m_bill.TableName, billID)
	if err != nil {
		if errors.Is(err, memstore.ErrRowNotFound) {
			return nil, domain.ErrUnknownBill
		}
		return nil, fmt.Errorf("failed to read bill: %w", err)
	}

	return dataToBill(row.(*m_bill.Data))
}

func billToData(bill *domain.Bill) (*m_bill.Data, error) {
	rateNum, rateDenom, err := taxRateParts(bill.TaxRate())
	if err != nil {
		return nil, fmt.Errorf("tax rate: %w", err)
	}

	data := &m_bill.Data{
		BillID:             bill.ID(),
		CustomerID:         bill.CustomerID(),
		CustomerName:       bill.CustomerName(),
		TaxRateNumerator:   rateNum,
		TaxRateDenominator: rateDenom,
		PaymentStatus:      string(bill.PaymentStatus()),
		VerificationStatus: string(bill.VerificationStatus()),
		VerifiedBy:         bill.VerifiedBy(),
		CreatedAt:          bill.CreatedAt(),
	}
	if at := bill.VerifiedAt(); at != nil {
		t := *at
		data.VerifiedAt = &t
	}

	for _, l := range bill.Lines() {
		num, denom, err := moneyParts(l.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("unit price of %s: %w", l.ProductID, err)
		}
		data.Lines = append(data.Lines, m_bill.LineData{
			ProductID:            l.ProductID,
			Name:                 l.Name,
			Quantity:             l.Quantity,
			UnitPriceNumerator:   num,
			UnitPriceDenominator: denom,
		})
	}

	return data, nil
}

func dataToBill(data *m_bill.Data) (*domain.Bill, error) {
	rate, err := taxRateFromParts(data.TaxRateNumerator, data.TaxRateDenominator)
	if err != nil {
		return nil, err
	}

	lines, err := dataToLines(data.Lines)
	if err != nil {
		return nil, err
	}

	var verifiedAt *time.Time
	if data.VerifiedAt != nil {
		t := *data.VerifiedAt
		verifiedAt = &t
	}

	return domain.ReconstructBill(
		data.BillID,
		data.CustomerID,
		data.CustomerName,
		lines,
		rate,
		domain.PaymentStatus(data.PaymentStatus),
		data.CreatedAt,
		domain.VerificationStatus(data.VerificationStatus),
		data.VerifiedBy,
		verifiedAt,
		data.Version,
	), nil
}

func dataToLines(rows []m_bill.LineData) ([]domain.BillLine, error) {
	lines := make([]domain.BillLine, len(rows))
	for i, l := range rows {
		price, err := moneyFromParts(l.UnitPriceNumerator, l.UnitPriceDenominator)
		if err != nil {
			return nil, err
		}
		lines[i] = domain.BillLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: price,
		}
	}
	return lines, nil
}
