package domain

import (
	"math/big"
)

// TaxRate is a fixed multiplier applied to a subtotal, e.g. 0.08.
type TaxRate struct {
	rat *big.Rat
}

// NewTaxRate validates a non-negative rate.
func NewTaxRate(rat *big.Rat) (TaxRate, error) {
	if rat == nil || rat.Sign() < 0 {
		return TaxRate{}, ErrInvalidTaxRate
	}
	return TaxRate{rat: new(big.Rat).Set(rat)}, nil
}

// ParseTaxRate parses a decimal such as "0.08".
func ParseTaxRate(s string) (TaxRate, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return TaxRate{}, ErrInvalidTaxRate
	}
	return NewTaxRate(rat)
}

// MustTaxRate parses s and panics on failure.
func MustTaxRate(s string) TaxRate {
	r, err := ParseTaxRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Rat returns a copy of the rate. The zero TaxRate is 0.
func (r TaxRate) Rat() *big.Rat {
	if r.rat == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r.rat)
}

func (r TaxRate) String() string {
	return r.Rat().FloatString(4)
}

// BillLine is a priced cart entry frozen at checkout.
type BillLine struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice *Money
}

// LineTotal is unit price times quantity.
func (l BillLine) LineTotal() *Money {
	return l.UnitPrice.MultiplyByInt(l.Quantity)
}

func (l BillLine) copy() BillLine {
	l.UnitPrice = l.UnitPrice.Copy()
	return l
}

// Totals is the priced summary of a set of lines.
type Totals struct {
	Subtotal *Money
	Tax      *Money
	Total    *Money
}

// PricingCalculator is a domain service for cart and bill arithmetic.
// All amounts stay exact; rounding happens only when formatting.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// Package-level calculator instance for domain object use
var defaultPricingCalculator = NewPricingCalculator()

// Subtotal is Σ(unitPrice × quantity).
func (pc *PricingCalculator) Subtotal(lines []BillLine) *Money {
	sum := Zero()
	for _, l := range lines {
		sum = sum.Add(l.LineTotal())
	}
	return sum
}

// Tax is subtotal × rate.
func (pc *PricingCalculator) Tax(subtotal *Money, rate TaxRate) *Money {
	return subtotal.MultiplyByRat(rate.Rat())
}

// Totals computes subtotal, tax and tax-inclusive total.
func (pc *PricingCalculator) Totals(lines []BillLine, rate TaxRate) *Totals {
	subtotal := pc.Subtotal(lines)
	tax := pc.Tax(subtotal, rate)
	return &Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
