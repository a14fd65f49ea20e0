package domain

import "time"

// VerificationRecord is an entry of the append-only verification history.
type VerificationRecord struct {
	id           string
	billID       string
	customerName string
	billTotal    *Money
	verifiedBy   string
	verifiedAt   time.Time
}

// NewVerificationRecord pairs a verified bill with the verification time.
func NewVerificationRecord(id string, bill *Bill, at time.Time) *VerificationRecord {
	return &VerificationRecord{
		id:           id,
		billID:       bill.ID(),
		customerName: bill.CustomerName(),
		billTotal:    bill.Total(),
		verifiedBy:   bill.VerifiedBy(),
		verifiedAt:   at,
	}
}

// ReconstructVerificationRecord reconstitutes a record from the store.
func ReconstructVerificationRecord(id, billID, customerName string, billTotal *Money, verifiedBy string, verifiedAt time.Time) *VerificationRecord {
	return &VerificationRecord{
		id:           id,
		billID:       billID,
		customerName: customerName,
		billTotal:    billTotal,
		verifiedBy:   verifiedBy,
		verifiedAt:   verifiedAt,
	}
}

func (r *VerificationRecord) ID() string            { return r.id }
func (r *VerificationRecord) BillID() string        { return r.billID }
func (r *VerificationRecord) CustomerName() string  { return r.customerName }
func (r *VerificationRecord) BillTotal() *Money     { return r.billTotal.Copy() }
func (r *VerificationRecord) VerifiedBy() string    { return r.verifiedBy }
func (r *VerificationRecord) VerifiedAt() time.Time { return r.verifiedAt }
