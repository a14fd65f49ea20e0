package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscount(t *testing.T) {
	list := MustMoney("100")

	t.Run("valid markdown", func(t *testing.T) {
		d, err := NewDiscount(list, MustMoney("80"))
		require.NoError(t, err)
		assert.Equal(t, "80.00", d.Price().String())
		assert.Equal(t, 0, d.Percentage().Cmp(big.NewRat(20, 1)))
	})

	t.Run("fractional percentage", func(t *testing.T) {
		d, err := NewDiscount(MustMoney("299.99"), MustMoney("249.99"))
		require.NoError(t, err)
		assert.Equal(t, "16.67", d.PercentageString())
	})

	tests := []struct {
		name  string
		price *Money
	}{
		{"equal to list price", MustMoney("100")},
		{"above list price", MustMoney("120")},
		{"zero", Zero()},
		{"negative", MustMoney("-5")},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDiscount(list, tt.price)
			assert.ErrorIs(t, err, ErrInvalidDiscount)
		})
	}
}

func TestDiscount_Copy(t *testing.T) {
	var nilDiscount *Discount
	assert.Nil(t, nilDiscount.Copy())

	d, err := NewDiscount(MustMoney("10"), MustMoney("5"))
	require.NoError(t, err)
	cp := d.Copy()
	assert.True(t, cp.Price().Equals(d.Price()))
}
