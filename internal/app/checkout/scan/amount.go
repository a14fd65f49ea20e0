package scan

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a payload money value. It is written as a bare JSON number with
// two decimals and only a bare number is accepted on the way in.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] == '"' || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("amount must be a JSON number, got %s", b)
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}
	a.Decimal = d
	return nil
}
