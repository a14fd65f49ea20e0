package update_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/testutil"
)

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the full record", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.CreateTestProduct(t, "P1", "100", "80", 10)
		env.Clock.Advance(time.Hour)
		uc := NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)

		err := uc.Execute(ctx, &Request{
			ProductID: "P1",
			Name:      "Renamed",
			Category:  "Fashion",
			ListPrice: domain.MustMoney("120"),
			Stock:     3,
		})
		require.NoError(t, err)

		p, err := env.Products.GetByID(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", p.Name())
		assert.Nil(t, p.DiscountedPrice(), "omitted discount is removed")
		assert.Equal(t, int64(3), p.Stock())
		assert.Equal(t, testutil.FixedTime, p.AddedOn())
		assert.Equal(t, testutil.FixedTime.Add(time.Hour), p.UpdatedAt())
		assert.Equal(t, int64(2), p.Version())

		env.AssertOutboxEvent(t, "product.updated", "P1")
	})

	t.Run("unknown product", func(t *testing.T) {
		env := testutil.NewEnv(t)
		uc := NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)

		err := uc.Execute(ctx, &Request{ProductID: "nope", Name: "x", Category: "y", ListPrice: domain.MustMoney("1")})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("invalid replacement leaves the record", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.CreateTestProduct(t, "P1", "100", "", 10)
		uc := NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)

		err := uc.Execute(ctx, &Request{ProductID: "P1", Name: "P1", Category: "Misc", ListPrice: domain.MustMoney("5"), Stock: -1})
		assert.ErrorIs(t, err, domain.ErrNegativeStock)
		assert.Equal(t, int64(10), env.Stock(t, "P1"))
	})
}
