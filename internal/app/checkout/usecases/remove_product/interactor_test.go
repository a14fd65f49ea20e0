package remove_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/testutil"
)

func TestRemoveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("removes product and records event", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.CreateTestProduct(t, "P1", "10", "", 1)
		uc := NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)

		require.NoError(t, uc.Execute(ctx, &Request{ProductID: "P1"}))

		_, err := env.Products.GetByID(ctx, "P1")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		env.AssertOutboxEvent(t, "product.removed", "P1")
	})

	t.Run("unknown product", func(t *testing.T) {
		env := testutil.NewEnv(t)
		uc := NewInteractor(env.Products, env.Outbox, env.Committer, env.Clock)

		assert.ErrorIs(t, uc.Execute(ctx, &Request{ProductID: "P1"}), domain.ErrProductNotFound)
	})
}
