package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingCalculator(t *testing.T) {
	pc := NewPricingCalculator()
	lines := []BillLine{
		{ProductID: "A", Quantity: 2, UnitPrice: MustMoney("249.99")},
		{ProductID: "B", Quantity: 1, UnitPrice: MustMoney("129.99")},
	}

	totals := pc.Totals(lines, MustTaxRate("0.08"))
	assert.Equal(t, "629.97", totals.Subtotal.String())
	assert.True(t, totals.Tax.Equals(MustMoney("50.3976")))
	assert.Equal(t, "680.37", totals.Total.String())

	t.Run("zero rate", func(t *testing.T) {
		totals := pc.Totals(lines, MustTaxRate("0"))
		assert.True(t, totals.Tax.IsZero())
		assert.True(t, totals.Total.Equals(totals.Subtotal))
	})
}

func TestParseTaxRate(t *testing.T) {
	r, err := ParseTaxRate("0.08")
	require.NoError(t, err)
	assert.Equal(t, "0.0800", r.String())

	_, err = ParseTaxRate("-0.1")
	assert.ErrorIs(t, err, ErrInvalidTaxRate)

	_, err = ParseTaxRate("eight percent")
	assert.ErrorIs(t, err, ErrInvalidTaxRate)

	var zero TaxRate
	assert.Equal(t, 0, zero.Rat().Sign())
}

func TestCheckout(t *testing.T) {
	rate := MustTaxRate("0.08")

	t.Run("end to end pricing and discard", func(t *testing.T) {
		p := newTestProduct(t, "P1", "100", "80", 10)
		c := newTestCart(t)
		require.NoError(t, AddToCart(c, p, 2, testNow))
		assert.Equal(t, int64(8), p.Stock())

		bill, err := Checkout("BILL-000001", c, map[string]*Product{"P1": p}, "cust-1", "Dana", rate, testNow)
		require.NoError(t, err)

		assert.Equal(t, "BILL-000001", bill.ID())
		assert.True(t, bill.Subtotal().Equals(MustMoney("160")))
		assert.True(t, bill.Tax().Equals(MustMoney("12.8")))
		assert.True(t, bill.Total().Equals(MustMoney("172.8")))
		assert.Equal(t, PaymentCompleted, bill.PaymentStatus())
		assert.Equal(t, VerificationPending, bill.VerificationStatus())
		assert.Equal(t, testNow, bill.CreatedAt())
		assert.True(t, c.IsEmpty())
		assert.Equal(t, int64(8), p.Stock(), "checkout must not restore stock")

		require.Len(t, bill.DomainEvents(), 1)
		assert.Equal(t, "bill.issued", bill.DomainEvents()[0].EventType())
	})

	t.Run("later price changes do not alter the bill", func(t *testing.T) {
		p := newTestProduct(t, "P1", "100", "80", 10)
		c := newTestCart(t)
		require.NoError(t, AddToCart(c, p, 1, testNow))

		bill, err := Checkout("B1", c, map[string]*Product{"P1": p}, "cust-1", "Dana", rate, testNow)
		require.NoError(t, err)

		require.NoError(t, p.Replace(ProductSpec{Name: "P1", Category: "Test", ListPrice: MustMoney("500"), Stock: 9}, testNow))
		assert.Equal(t, "80.00", bill.Lines()[0].UnitPrice.String())
		assert.True(t, bill.Total().Equals(MustMoney("86.4")))
	})

	t.Run("line snapshot cannot be mutated from outside", func(t *testing.T) {
		lines := []BillLine{{ProductID: "A", Name: "A", Quantity: 1, UnitPrice: MustMoney("10")}}
		bill, err := IssueBill("B1", "c", "n", lines, rate, testNow)
		require.NoError(t, err)

		lines[0].Quantity = 99
		out := bill.Lines()
		out[0].Quantity = 42
		assert.Equal(t, int64(1), bill.Lines()[0].Quantity)
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := Checkout("B1", newTestCart(t), nil, "cust-1", "Dana", rate, testNow)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("missing customer keeps the cart", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)
		require.NoError(t, AddToCart(c, p, 1, testNow))

		_, err := Checkout("B1", c, map[string]*Product{"P1": p}, "", "", rate, testNow)
		assert.ErrorIs(t, err, ErrEmptyCustomer)
		assert.Equal(t, int64(1), c.Quantity("P1"))
	})

	t.Run("orphaned entry keeps the cart", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)
		require.NoError(t, AddToCart(c, p, 1, testNow))

		_, err := Checkout("B1", c, map[string]*Product{}, "cust-1", "Dana", rate, testNow)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.False(t, c.IsEmpty())
	})
}

func issuedBill(t *testing.T) *Bill {
	t.Helper()
	lines := []BillLine{{ProductID: "P1", Name: "Widget", Quantity: 2, UnitPrice: MustMoney("80")}}
	b, err := IssueBill("BILL-1", "cust-1", "Dana", lines, MustTaxRate("0.08"), testNow)
	require.NoError(t, err)
	b.ClearEvents()
	return b
}

func TestBill_Verify(t *testing.T) {
	t1 := testNow.Add(time.Hour)
	t2 := t1.Add(time.Minute)

	t.Run("first verification wins", func(t *testing.T) {
		b := issuedBill(t)

		rec, err := b.Verify("VER-1", "Alice", t1)
		require.NoError(t, err)
		assert.Equal(t, "VER-1", rec.ID())
		assert.Equal(t, "BILL-1", rec.BillID())
		assert.Equal(t, "Dana", rec.CustomerName())
		assert.Equal(t, "Alice", rec.VerifiedBy())
		assert.Equal(t, t1, rec.VerifiedAt())
		assert.True(t, rec.BillTotal().Equals(MustMoney("172.8")))

		assert.True(t, b.IsVerified())
		require.Len(t, b.DomainEvents(), 1)
		assert.Equal(t, "bill.verified", b.DomainEvents()[0].EventType())

		_, err = b.Verify("VER-2", "Bob", t2)
		assert.ErrorIs(t, err, ErrAlreadyVerified)

		var already *AlreadyVerifiedError
		require.ErrorAs(t, err, &already)
		assert.Equal(t, "Alice", already.VerifiedBy)
		assert.Equal(t, t1, already.VerifiedAt)

		assert.Equal(t, "Alice", b.VerifiedBy())
		assert.Equal(t, t1, *b.VerifiedAt())
		assert.Len(t, b.DomainEvents(), 1)
	})

	t.Run("verifier required", func(t *testing.T) {
		b := issuedBill(t)
		_, err := b.Verify("VER-1", "", t1)
		assert.ErrorIs(t, err, ErrEmptyVerifier)
		assert.False(t, b.IsVerified())
	})

	t.Run("reconstructed bill recomputes totals", func(t *testing.T) {
		b := issuedBill(t)
		r := ReconstructBill(b.ID(), b.CustomerID(), b.CustomerName(), b.Lines(), b.TaxRate(),
			b.PaymentStatus(), b.CreatedAt(), VerificationPending, "", nil, 1)
		assert.True(t, r.Total().Equals(b.Total()))
		assert.Equal(t, int64(1), r.Version())
	})
}
