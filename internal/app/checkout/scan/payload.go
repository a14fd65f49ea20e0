// Package scan owns the scan payload carried by a bill's QR code and the
// tagged result a scanner hands to the checkout flow.
package scan

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

// Payload is the canonical encoding of a bill in a QR code.
type Payload struct {
	BillID        string        `json:"billId"`
	Customer      string        `json:"customer"`
	Date          string        `json:"date"`
	Items         []PayloadItem `json:"items"`
	Total         Amount        `json:"total"`
	PaymentStatus string        `json:"paymentStatus"`
	Verified      bool          `json:"verified"`
}

// PayloadItem is one bill line in a payload.
type PayloadItem struct {
	Name  string `json:"name"`
	Qty   int64  `json:"qty"`
	Price Amount `json:"price"`
}

// IssuedAt parses Date when it is RFC 3339.
func (p *Payload) IssuedAt() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FromBill builds the payload for an issued bill. Amounts are rounded to
// cents, the date is RFC 3339 in UTC.
func FromBill(bill *domain.Bill) (*Payload, error) {
	total, err := toAmount(bill.Total())
	if err != nil {
		return nil, err
	}

	p := &Payload{
		BillID:        bill.ID(),
		Customer:      bill.CustomerName(),
		Date:          bill.CreatedAt().UTC().Format(time.RFC3339),
		Items:         make([]PayloadItem, 0),
		Total:         total,
		PaymentStatus: string(bill.PaymentStatus()),
		Verified:      bill.IsVerified(),
	}
	for _, l := range bill.Lines() {
		price, err := toAmount(l.UnitPrice)
		if err != nil {
			return nil, err
		}
		p.Items = append(p.Items, PayloadItem{Name: l.Name, Qty: l.Quantity, Price: price})
	}
	return p, nil
}

// EncodeBill returns the JSON payload for a bill.
func EncodeBill(bill *domain.Bill) ([]byte, error) {
	p, err := FromBill(bill)
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}

func toAmount(m *domain.Money) (Amount, error) {
	d, err := decimal.NewFromString(m.String())
	if err != nil {
		return Amount{}, fmt.Errorf("amount %s: %w", m, err)
	}
	return NewAmount(d), nil
}

// wire mirrors Payload with pointers so missing fields can be told apart
// from zero values.
type wire struct {
	BillID        *string     `json:"billId"`
	Customer      *string     `json:"customer"`
	Date          *string     `json:"date"`
	Items         *[]wireItem `json:"items"`
	Total         *Amount     `json:"total"`
	PaymentStatus *string     `json:"paymentStatus"`
	Verified      *bool       `json:"verified"`
}

type wireItem struct {
	Name  *string `json:"name"`
	Qty   *int64  `json:"qty"`
	Price *Amount `json:"price"`
}

// DecodePayload parses and validates a scanned payload. Unknown fields are
// ignored; anything that does not have the payload's shape fails with
// domain.ErrInvalidScanPayload.
func DecodePayload(raw []byte) (*Payload, error) {
	var w wire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, invalid("%v", err)
	}

	switch {
	case w.BillID == nil || *w.BillID == "":
		return nil, invalid("billId is required")
	case w.Customer == nil:
		return nil, invalid("customer is required")
	case w.Date == nil:
		return nil, invalid("date is required")
	case w.Items == nil:
		return nil, invalid("items is required")
	case w.Total == nil:
		return nil, invalid("total is required")
	case w.PaymentStatus == nil:
		return nil, invalid("paymentStatus is required")
	case w.Verified == nil:
		return nil, invalid("verified is required")
	}
	if w.Total.IsNegative() {
		return nil, invalid("total cannot be negative")
	}

	p := &Payload{
		BillID:        *w.BillID,
		Customer:      *w.Customer,
		Date:          *w.Date,
		Items:         make([]PayloadItem, 0, len(*w.Items)),
		Total:         *w.Total,
		PaymentStatus: *w.PaymentStatus,
		Verified:      *w.Verified,
	}

	for i, item := range *w.Items {
		switch {
		case item.Name == nil:
			return nil, invalid("items[%d].name is required", i)
		case item.Qty == nil:
			return nil, invalid("items[%d].qty is required", i)
		case *item.Qty < 1:
			return nil, invalid("items[%d].qty must be at least 1", i)
		case item.Price == nil:
			return nil, invalid("items[%d].price is required", i)
		case item.Price.IsNegative():
			return nil, invalid("items[%d].price cannot be negative", i)
		}
		p.Items = append(p.Items, PayloadItem{Name: *item.Name, Qty: *item.Qty, Price: *item.Price})
	}

	return p, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidScanPayload, fmt.Sprintf(format, args...))
}
