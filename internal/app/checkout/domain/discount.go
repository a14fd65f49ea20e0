package domain

import (
	"math/big"
)

// Discount is a fixed markdown: the product sells at price instead of its list price.
type Discount struct {
	price      *Money
	percentage *big.Rat // derived, 0-100
}

// NewDiscount validates that 0 < price < listPrice.
func NewDiscount(listPrice, price *Money) (*Discount, error) {
	if price == nil || !price.IsPositive() || !price.LessThan(listPrice) {
		return nil, ErrInvalidDiscount
	}

	// (list - price) / list * 100
	saved := listPrice.Subtract(price).Rat()
	pct := new(big.Rat).Quo(saved, listPrice.Rat())
	pct.Mul(pct, big.NewRat(100, 1))

	return &Discount{
		price:      price.Copy(),
		percentage: pct,
	}, nil
}

// Price returns the discounted unit price.
func (d *Discount) Price() *Money {
	return d.price.Copy()
}

// Percentage returns the markdown relative to the list price.
func (d *Discount) Percentage() *big.Rat {
	return new(big.Rat).Set(d.percentage)
}

// PercentageString formats the markdown with two decimals, e.g. "16.67".
func (d *Discount) PercentageString() string {
	return d.percentage.FloatString(2)
}

// Copy creates a deep copy.
func (d *Discount) Copy() *Discount {
	if d == nil {
		return nil
	}
	return &Discount{
		price:      d.price.Copy(),
		percentage: new(big.Rat).Set(d.percentage),
	}
}
