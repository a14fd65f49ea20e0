package add_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/ident"
	"github.com/light-bringer/selfcheckout-service/internal/testutil"
)

func newInteractor(env *testutil.Env) *Interactor {
	return NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock, ident.NewSequenceGenerator("PROD"))
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("adds product with discount", func(t *testing.T) {
		env := testutil.NewEnv(t)
		uc := newInteractor(env)

		id, err := uc.Execute(ctx, &Request{
			ProductID:       "1",
			Name:            "Premium Headphones",
			Category:        "Electronics",
			ListPrice:       domain.MustMoney("299.99"),
			DiscountedPrice: domain.MustMoney("249.99"),
			Stock:           50,
		})
		require.NoError(t, err)
		assert.Equal(t, "1", id)

		dto, err := env.ReadModel.GetProductByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "299.99", dto.ListPrice)
		assert.Equal(t, "249.99", dto.EffectivePrice)
		assert.Equal(t, int64(50), dto.Stock)
		assert.Equal(t, testutil.FixedTime, dto.AddedOn)

		env.AssertOutboxEvent(t, "product.added", "1")
	})

	t.Run("generates id when none given", func(t *testing.T) {
		env := testutil.NewEnv(t)
		id, err := newInteractor(env).Execute(ctx, &Request{
			Name: "Smart Watch", Category: "Electronics", ListPrice: domain.MustMoney("199.99"), Stock: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, "PROD-000001", id)
	})

	t.Run("duplicate id", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.CreateTestProduct(t, "1", "10", "", 5)

		_, err := newInteractor(env).Execute(ctx, &Request{
			ProductID: "1", Name: "Other", Category: "Misc", ListPrice: domain.MustMoney("1"), Stock: 1,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateID)
		assert.Equal(t, int64(5), env.Stock(t, "1"), "existing record must be untouched")
	})

	t.Run("invalid record writes nothing", func(t *testing.T) {
		env := testutil.NewEnv(t)
		_, err := newInteractor(env).Execute(ctx, &Request{
			ProductID: "1", Name: "Bag", Category: "Fashion", ListPrice: domain.MustMoney("100"),
			DiscountedPrice: domain.MustMoney("150"), Stock: 1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

		exists, err := env.Products.Exists(ctx, "1")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Zero(t, env.OutboxCount(t))
	})
}
