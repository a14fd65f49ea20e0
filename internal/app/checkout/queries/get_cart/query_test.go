package get_cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/add_to_cart"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/remove_product"
	"github.com/light-bringer/selfcheckout-service/internal/testutil"
)

func TestGetCart(t *testing.T) {
	ctx := context.Background()
	rate := domain.MustTaxRate("0.08")

	t.Run("prices entries and leaves stock alone", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.CreateTestProduct(t, "P1", "100", "80", 10)
		env.CreateTestProduct(t, "P2", "5", "", 10)
		add := add_to_cart.NewInteractor(env.Products, env.Carts, env.Outbox, env.Committer, env.Clock)
		require.NoError(t, add.Execute(ctx, &add_to_cart.Request{SessionID: "s1", ProductID: "P1", Quantity: 2}))
		require.NoError(t, add.Execute(ctx, &add_to_cart.Request{SessionID: "s1", ProductID: "P2", Quantity: 1}))

		q := NewQuery(env.Products, env.Carts, rate)
		first, err := q.Execute(ctx, &Request{SessionID: "s1"})
		require.NoError(t, err)
		second, err := q.Execute(ctx, &Request{SessionID: "s1"})
		require.NoError(t, err)

		assert.Equal(t, "165.00", first.Subtotal)
		assert.Equal(t, "13.20", first.Tax)
		assert.Equal(t, "178.20", first.Total)
		assert.Equal(t, int64(3), first.Units)
		require.Len(t, first.Items, 2)
		assert.Equal(t, "P1", first.Items[0].ProductID)
		assert.Equal(t, "160.00", first.Items[0].LineTotal)
		assert.Equal(t, first, second)
		assert.Equal(t, int64(8), env.Stock(t, "P1"))
	})

	t.Run("unknown session is an empty cart", func(t *testing.T) {
		env := testutil.NewEnv(t)
		dto, err := NewQuery(env.Products, env.Carts, rate).Execute(ctx, &Request{SessionID: "new"})
		require.NoError(t, err)
		assert.Empty(t, dto.Items)
		assert.Equal(t, "0.00", dto.Total)
	})

	t.Run("orphaned entry", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.CreateTestProduct(t, "P1", "10", "", 10)
		add := add_to_cart.NewInteractor(env.Products, env.Carts, env.Outbox, env.Committer, env.Clock)
		require.NoError(t, add.Execute(ctx, &add_to_cart.Request{SessionID: "s1", ProductID: "P1"}))
		remove := remove_product.NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)
		require.NoError(t, remove.Execute(ctx, &remove_product.Request{ProductID: "P1"}))

		_, err := NewQuery(env.Products, env.Carts, rate).Execute(ctx, &Request{SessionID: "s1"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
