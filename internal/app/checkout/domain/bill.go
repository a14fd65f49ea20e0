package domain

import (
	"time"
)

// PaymentStatus of a bill.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// VerificationStatus of a bill. The only transition is pending → verified.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
)

// Bill is the immutable priced snapshot of a completed checkout. Only the
// verification fields ever change after issue.
type Bill struct {
	id            string
	customerID    string
	customerName  string
	lines         []BillLine
	taxRate       TaxRate
	subtotal      *Money
	tax           *Money
	total         *Money
	paymentStatus PaymentStatus
	createdAt     time.Time

	verificationStatus VerificationStatus
	verifiedBy         string
	verifiedAt         *time.Time

	version int64
	events  []DomainEvent
}

// IssueBill prices the lines and creates a bill with payment completed and
// verification pending.
func IssueBill(id, customerID, customerName string, lines []BillLine, rate TaxRate, now time.Time) (*Bill, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if customerID == "" || customerName == "" {
		return nil, ErrEmptyCustomer
	}

	frozen := make([]BillLine, len(lines))
	var units int64
	for i, l := range lines {
		frozen[i] = l.copy()
		units += l.Quantity
	}

	totals := defaultPricingCalculator.Totals(frozen, rate)

	b := &Bill{
		id:                 id,
		customerID:         customerID,
		customerName:       customerName,
		lines:              frozen,
		taxRate:            TaxRate{rat: rate.Rat()},
		subtotal:           totals.Subtotal,
		tax:                totals.Tax,
		total:              totals.Total,
		paymentStatus:      PaymentCompleted,
		createdAt:          now,
		verificationStatus: VerificationPending,
		events:             make([]DomainEvent, 0),
	}

	b.recordEvent(&BillIssuedEvent{
		BillID:       b.id,
		CustomerID:   b.customerID,
		CustomerName: b.customerName,
		ItemCount:    units,
		Total:        b.Total(),
		IssuedAt:     now,
	})

	return b, nil
}

// ReconstructBill reconstitutes a Bill from the store. Totals are recomputed
// from the lines and rate.
func ReconstructBill(
	id, customerID, customerName string,
	lines []BillLine,
	rate TaxRate,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	verificationStatus VerificationStatus,
	verifiedBy string,
	verifiedAt *time.Time,
	version int64,
) *Bill {
	frozen := make([]BillLine, len(lines))
	for i, l := range lines {
		frozen[i] = l.copy()
	}
	totals := defaultPricingCalculator.Totals(frozen, rate)

	return &Bill{
		id:                 id,
		customerID:         customerID,
		customerName:       customerName,
		lines:              frozen,
		taxRate:            rate,
		subtotal:           totals.Subtotal,
		tax:                totals.Tax,
		total:              totals.Total,
		paymentStatus:      paymentStatus,
		createdAt:          createdAt,
		verificationStatus: verificationStatus,
		verifiedBy:         verifiedBy,
		verifiedAt:         verifiedAt,
		version:            version,
		events:             make([]DomainEvent, 0),
	}
}

// Getters
func (b *Bill) ID() string                             { return b.id }
func (b *Bill) CustomerID() string                     { return b.customerID }
func (b *Bill) CustomerName() string                   { return b.customerName }
func (b *Bill) TaxRate() TaxRate                       { return b.taxRate }
func (b *Bill) Subtotal() *Money                       { return b.subtotal.Copy() }
func (b *Bill) Tax() *Money                            { return b.tax.Copy() }
func (b *Bill) Total() *Money                          { return b.total.Copy() }
func (b *Bill) PaymentStatus() PaymentStatus           { return b.paymentStatus }
func (b *Bill) CreatedAt() time.Time                   { return b.createdAt }
func (b *Bill) VerificationStatus() VerificationStatus { return b.verificationStatus }
func (b *Bill) VerifiedBy() string                     { return b.verifiedBy }
func (b *Bill) VerifiedAt() *time.Time                 { return b.verifiedAt }
func (b *Bill) Version() int64                         { return b.version }
func (b *Bill) DomainEvents() []DomainEvent            { return b.events }

// Lines returns a copy of the line snapshot.
func (b *Bill) Lines() []BillLine {
	cp := make([]BillLine, len(b.lines))
	for i, l := range b.lines {
		cp[i] = l.copy()
	}
	return cp
}

// IsVerified reports whether the bill has been verified.
func (b *Bill) IsVerified() bool {
	return b.verificationStatus == VerificationVerified
}

// Verify transitions the bill to verified and returns the history record.
// A second call fails with *AlreadyVerifiedError and leaves the first
// verifier in place.
func (b *Bill) Verify(recordID, verifier string, now time.Time) (*VerificationRecord, error) {
	if b.IsVerified() {
		return nil, &AlreadyVerifiedError{
			BillID:     b.id,
			VerifiedBy: b.verifiedBy,
			VerifiedAt: *b.verifiedAt,
		}
	}
	if verifier == "" {
		return nil, ErrEmptyVerifier
	}

	b.verificationStatus = VerificationVerified
	b.verifiedBy = verifier
	b.verifiedAt = &now

	b.recordEvent(&BillVerifiedEvent{
		BillID:     b.id,
		VerifiedBy: verifier,
		VerifiedAt: now,
	})

	return NewVerificationRecord(recordID, b, now), nil
}

// recordEvent adds a domain event to the list of events.
func (b *Bill) recordEvent(event DomainEvent) {
	b.events = append(b.events, event)
}

// ClearEvents clears all recorded domain events.
func (b *Bill) ClearEvents() {
	b.events = make([]DomainEvent, 0)
}

// Checkout prices the cart at this instant, issues the bill and discards the
// cart. Stock is not restored: the reserved units are sold. On error the cart
// is left untouched.
func Checkout(
	billID string,
	cart *Cart,
	products map[string]*Product,
	customerID, customerName string,
	rate TaxRate,
	now time.Time,
) (*Bill, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines, err := PriceCart(cart, products)
	if err != nil {
		return nil, err
	}

	bill, err := IssueBill(billID, customerID, customerName, lines, rate, now)
	if err != nil {
		return nil, err
	}

	cart.Discard(now)
	return bill, nil
}
