package set_quantity

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

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testutil.Env, *Interactor) {
		env := testutil.NewEnv(t)
		env.CreateTestProduct(t, "P1", "10", "", 10)
		add := add_to_cart.NewInteractor(env.Products, env.Carts, env.Outbox, env.Committer, env.Clock)
		require.NoError(t, add.Execute(ctx, &add_to_cart.Request{SessionID: "s1", ProductID: "P1", Quantity: 4}))
		return env, NewInteractor(env.Products, env.Carts, env.Outbox, env.Committer, env.Clock)
	}

	tests := []struct {
		name      string
		quantity  int64
		wantErr   error
		wantQty   int64
		wantStock int64
	}{
		{"increase reserves the delta", 6, nil, 6, 4},
		{"decrease releases the delta", 1, nil, 1, 9},
		{"unchanged", 4, nil, 4, 6},
		{"all remaining units", 10, nil, 10, 0},
		{"beyond stock", 11, domain.ErrOutOfStock, 4, 6},
		{"zero", 0, domain.ErrInvalidQuantity, 4, 6},
		{"negative", -3, domain.ErrInvalidQuantity, 4, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, uc := setup(t)

			err := uc.Execute(ctx, &Request{SessionID: "s1", ProductID: "P1", Quantity: tt.quantity})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantQty, env.Cart(t, "s1").Quantity("P1"))
			assert.Equal(t, tt.wantStock, env.Stock(t, "P1"))
		})
	}

	t.Run("not in cart", func(t *testing.T) {
		_, uc := setup(t)
		err := uc.Execute(ctx, &Request{SessionID: "s2", ProductID: "P1", Quantity: 2})
		assert.ErrorIs(t, err, domain.ErrNotInCart)
	})

	t.Run("removed product", func(t *testing.T) {
		env, uc := setup(t)
		remove := remove_product.NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)
		require.NoError(t, remove.Execute(ctx, &remove_product.Request{ProductID: "P1"}))

		err := uc.Execute(ctx, &Request{SessionID: "s1", ProductID: "P1", Quantity: 2})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Equal(t, int64(4), env.Cart(t, "s1").Quantity("P1"))
	})

	t.Run("re-added product is a different listing", func(t *testing.T) {
		env, uc := setup(t)
		remove := remove_product.NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)
		require.NoError(t, remove.Execute(ctx, &remove_product.Request{ProductID: "P1"}))
		env.CreateTestProduct(t, "P1", "10", "", 10)

		err := uc.Execute(ctx, &Request{SessionID: "s1", ProductID: "P1", Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Equal(t, int64(10), env.Stock(t, "P1"))
	})
}
