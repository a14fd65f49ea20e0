package domain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	c, err := NewCart("session-1")
	require.NoError(t, err)
	return c
}

func TestNewCart(t *testing.T) {
	_, err := NewCart("")
	assert.ErrorIs(t, err, ErrEmptySession)

	c := newTestCart(t)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Version())
}

func TestAddToCart(t *testing.T) {
	t.Run("reserves stock and creates entry", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)

		require.NoError(t, AddToCart(c, p, 3, testNow))
		assert.Equal(t, int64(7), p.Stock())
		assert.Equal(t, int64(3), c.Quantity("P1"))
	})

	t.Run("adding again increases the same entry", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)

		require.NoError(t, AddToCart(c, p, 1, testNow))
		require.NoError(t, AddToCart(c, p, 2, testNow))
		assert.Equal(t, 1, c.Len())
		assert.Equal(t, int64(3), c.Quantity("P1"))
		assert.Equal(t, int64(7), p.Stock())
	})

	t.Run("entries keep insertion order", func(t *testing.T) {
		a := newTestProduct(t, "A", "1", "", 5)
		b := newTestProduct(t, "B", "1", "", 5)
		c := newTestCart(t)

		require.NoError(t, AddToCart(c, b, 1, testNow))
		require.NoError(t, AddToCart(c, a, 1, testNow))
		require.NoError(t, AddToCart(c, b, 1, testNow))
		assert.Equal(t, []string{"B", "A"}, c.ProductIDs())
	})

	t.Run("stock plus one is out of stock and changes nothing", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)

		err := AddToCart(c, p, 11, testNow)
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.Equal(t, int64(10), p.Stock())
		assert.True(t, c.IsEmpty())
	})

	t.Run("invalid quantity", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)
		assert.ErrorIs(t, AddToCart(c, p, 0, testNow), ErrInvalidQuantity)
		assert.Equal(t, int64(10), p.Stock())
	})

	t.Run("missing product", func(t *testing.T) {
		assert.ErrorIs(t, AddToCart(newTestCart(t), nil, 1, testNow), ErrProductNotFound)
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Run("add three then remove restores stock", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)

		require.NoError(t, AddToCart(c, p, 3, testNow))
		require.NoError(t, RemoveFromCart(c, "P1", p, testNow))
		assert.Equal(t, int64(10), p.Stock())
		assert.False(t, c.Contains("P1"))
	})

	t.Run("not in cart", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		assert.ErrorIs(t, RemoveFromCart(newTestCart(t), "P1", p, testNow), ErrNotInCart)
		assert.Equal(t, int64(10), p.Stock())
	})

	t.Run("entry for a removed product is dropped", func(t *testing.T) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)
		require.NoError(t, AddToCart(c, p, 2, testNow))

		require.NoError(t, RemoveFromCart(c, "P1", nil, testNow))
		assert.True(t, c.IsEmpty())
	})
}

func TestSetQuantity(t *testing.T) {
	setup := func(t *testing.T) (*Product, *Cart) {
		p := newTestProduct(t, "P1", "10", "", 10)
		c := newTestCart(t)
		require.NoError(t, AddToCart(c, p, 4, testNow))
		return p, c
	}

	t.Run("increase reserves only the delta", func(t *testing.T) {
		p, c := setup(t)
		require.NoError(t, SetQuantity(c, "P1", p, 6, testNow))
		assert.Equal(t, int64(6), c.Quantity("P1"))
		assert.Equal(t, int64(4), p.Stock())
	})

	t.Run("decrease releases the delta", func(t *testing.T) {
		p, c := setup(t)
		require.NoError(t, SetQuantity(c, "P1", p, 1, testNow))
		assert.Equal(t, int64(1), c.Quantity("P1"))
		assert.Equal(t, int64(9), p.Stock())
	})

	t.Run("same quantity is a no-op", func(t *testing.T) {
		p, c := setup(t)
		p.ClearEvents()
		require.NoError(t, SetQuantity(c, "P1", p, 4, testNow))
		assert.Equal(t, int64(6), p.Stock())
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("increase beyond stock fails", func(t *testing.T) {
		p, c := setup(t)
		assert.ErrorIs(t, SetQuantity(c, "P1", p, 11, testNow), ErrOutOfStock)
		assert.Equal(t, int64(4), c.Quantity("P1"))
		assert.Equal(t, int64(6), p.Stock())
	})

	t.Run("increase to exactly all units", func(t *testing.T) {
		p, c := setup(t)
		require.NoError(t, SetQuantity(c, "P1", p, 10, testNow))
		assert.Equal(t, int64(0), p.Stock())
	})

	t.Run("zero is invalid", func(t *testing.T) {
		p, c := setup(t)
		assert.ErrorIs(t, SetQuantity(c, "P1", p, 0, testNow), ErrInvalidQuantity)
		assert.Equal(t, int64(4), c.Quantity("P1"))
	})

	t.Run("not in cart", func(t *testing.T) {
		p, _ := setup(t)
		assert.ErrorIs(t, SetQuantity(newTestCart(t), "P1", p, 2, testNow), ErrNotInCart)
	})

	t.Run("removed product", func(t *testing.T) {
		_, c := setup(t)
		assert.ErrorIs(t, SetQuantity(c, "P1", nil, 2, testNow), ErrProductNotFound)
		assert.Equal(t, int64(4), c.Quantity("P1"))
	})
}

func TestClearCart(t *testing.T) {
	a := newTestProduct(t, "A", "1", "", 5)
	b := newTestProduct(t, "B", "1", "", 5)
	c := newTestCart(t)
	require.NoError(t, AddToCart(c, a, 2, testNow))
	require.NoError(t, AddToCart(c, b, 5, testNow))
	require.NoError(t, AddToCart(c, newTestProduct(t, "GONE", "1", "", 1), 1, testNow))

	touched, err := ClearCart(c, map[string]*Product{"A": a, "B": b}, testNow)
	require.NoError(t, err)
	assert.Len(t, touched, 2)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(5), a.Stock())
	assert.Equal(t, int64(5), b.Stock())
}

func TestLedger_RelistedProduct(t *testing.T) {
	listed := func(listing uint64, stock int64) *Product {
		return ReconstructProduct("P1", "Lamp", "Home", MustMoney("10"), nil, stock, testNow, testNow, 1, listing)
	}

	setup := func(t *testing.T) *Cart {
		c := newTestCart(t)
		require.NoError(t, AddToCart(c, listed(1, 5), 3, testNow))
		return c
	}

	t.Run("remove restores nothing to the new record", func(t *testing.T) {
		c := setup(t)
		p := listed(2, 5)

		require.NoError(t, RemoveFromCart(c, "P1", p, testNow))
		assert.Equal(t, int64(5), p.Stock())
		assert.False(t, c.Contains("P1"))
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("set quantity sees an orphaned entry", func(t *testing.T) {
		c := setup(t)
		p := listed(2, 5)

		err := SetQuantity(c, "P1", p, 1, testNow)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Equal(t, int64(5), p.Stock())
		assert.Equal(t, int64(3), c.Quantity("P1"))
	})

	t.Run("clear skips the new record", func(t *testing.T) {
		c := setup(t)
		p := listed(2, 5)

		touched, err := ClearCart(c, map[string]*Product{"P1": p}, testNow)
		require.NoError(t, err)
		assert.Empty(t, touched)
		assert.Equal(t, int64(5), p.Stock())
		assert.True(t, c.IsEmpty())
	})

	t.Run("pricing rejects the orphaned entry", func(t *testing.T) {
		c := setup(t)

		_, err := PriceCart(c, map[string]*Product{"P1": listed(2, 5)})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("add replaces the orphaned entry", func(t *testing.T) {
		c := setup(t)
		p := listed(2, 5)

		require.NoError(t, AddToCart(c, p, 2, testNow))
		assert.Equal(t, int64(2), c.Quantity("P1"))
		assert.Equal(t, int64(3), p.Stock())
		assert.Equal(t, uint64(2), c.Entries()[0].Listing)
	})
}

func TestDiscard_DoesNotRestoreStock(t *testing.T) {
	p := newTestProduct(t, "P1", "1", "", 5)
	c := newTestCart(t)
	require.NoError(t, AddToCart(c, p, 2, testNow))

	c.Discard(testNow)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(3), p.Stock())
}

// Random sequences of add/remove/set must keep shelf stock plus reserved
// quantity equal to the initial stock, and stock never goes negative.
func TestLedger_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	initial := map[string]int64{"A": 7, "B": 3, "C": 12}
	products := map[string]*Product{}
	for id, stock := range initial {
		products[id] = newTestProduct(t, id, "1", "", stock)
	}
	ids := []string{"A", "B", "C"}
	cart := newTestCart(t)

	for step := 0; step < 2000; step++ {
		id := ids[rng.Intn(len(ids))]
		p := products[id]

		var err error
		switch rng.Intn(3) {
		case 0:
			err = AddToCart(cart, p, int64(rng.Intn(5)), testNow)
		case 1:
			err = RemoveFromCart(cart, id, p, testNow)
		case 2:
			err = SetQuantity(cart, id, p, int64(rng.Intn(8)), testNow)
		}
		if err != nil {
			require.True(t, errorIsAny(err, ErrOutOfStock, ErrInvalidQuantity, ErrNotInCart),
				"unexpected error at step %d: %v", step, err)
		}

		for _, pid := range ids {
			pr := products[pid]
			require.GreaterOrEqual(t, pr.Stock(), int64(0))
			require.Equal(t, initial[pid], pr.Stock()+cart.Quantity(pid), "step %d product %s", step, pid)
		}
		for _, e := range cart.Entries() {
			require.GreaterOrEqual(t, e.Quantity, int64(1))
		}
	}
}

func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func TestCartTotals(t *testing.T) {
	p := newTestProduct(t, "P1", "100", "80", 10)
	c := newTestCart(t)
	require.NoError(t, AddToCart(c, p, 2, testNow))
	products := map[string]*Product{"P1": p}
	rate := MustTaxRate("0.08")

	first, err := CartTotals(c, products, rate)
	require.NoError(t, err)
	second, err := CartTotals(c, products, rate)
	require.NoError(t, err)

	assert.True(t, first.Subtotal.Equals(MustMoney("160")))
	assert.True(t, first.Tax.Equals(MustMoney("12.8")))
	assert.True(t, first.Total.Equals(MustMoney("172.8")))
	assert.True(t, first.Total.Equals(second.Total))
	assert.Equal(t, int64(8), p.Stock(), "totals must not mutate")

	t.Run("orphaned entry", func(t *testing.T) {
		_, err := CartTotals(c, map[string]*Product{}, rate)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
