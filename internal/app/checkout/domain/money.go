package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Money represents a monetary value with precise decimal arithmetic using big.Rat.
// It stores the value as a rational number (numerator/denominator) to avoid floating-point precision issues.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(29999, 100) represents $299.99
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	if denominator < 0 {
		return nil, fmt.Errorf("denominator must be positive")
	}

	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// ParseMoney parses a decimal string such as "249.99" or a fraction such as "864/5".
func ParseMoney(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q: %w", s, ErrInvalidPrice)
	}
	return &Money{rat: rat}, nil
}

// MustMoney parses s and panics on failure. Intended for fixtures.
func MustMoney(s string) *Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoneyFromRat creates a new Money instance from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Zero returns a zero amount.
func Zero() *Money {
	return &Money{rat: new(big.Rat)}
}

// Numerator returns the numerator of the rational number and whether it fits in int64.
func (m *Money) Numerator() (int64, bool) {
	num := m.rat.Num()
	return num.Int64(), num.IsInt64()
}

// Denominator returns the denominator of the rational number and whether it fits in int64.
func (m *Money) Denominator() (int64, bool) {
	denom := m.rat.Denom()
	return denom.Int64(), denom.IsInt64()
}

// IsSafeForStorage reports whether both parts fit the int64 columns of the store.
func (m *Money) IsSafeForStorage() bool {
	_, numOK := m.Numerator()
	_, denomOK := m.Denominator()
	return numOK && denomOK
}

// Rat returns a copy of the underlying rational.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract subtracts another Money value from this one and returns a new Money instance.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat multiplies this Money value by a rational number and returns a new Money instance.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// MultiplyByInt multiplies by a quantity.
func (m *Money) MultiplyByInt(n int64) *Money {
	return m.MultiplyByRat(new(big.Rat).SetInt64(n))
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only, not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value rounded to cents.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Exact returns the exact rational form, e.g. "864/5".
func (m *Money) Exact() string {
	return m.rat.RatString()
}

// MarshalJSON encodes the amount as a cent-rounded decimal string.
func (m *Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
