package add_staff

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
	return NewInteractor(env.Staff, env.Outbox, env.Committer, env.Clock, ident.NewSequenceGenerator("STAFF"))
}

func TestAddStaff(t *testing.T) {
	ctx := context.Background()

	t.Run("adds member to the roster", func(t *testing.T) {
		env := testutil.NewEnv(t)

		member, err := newInteractor(env).Execute(ctx, &Request{
			Name:  "Emily Johnson",
			Role:  "security",
			Phone: "234-567-8901",
			Email: "emily.johnson@qwikpay.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "STAFF-000001", member.ID())

		roster, err := env.ReadModel.ListStaff(ctx)
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Equal(t, "Emily Johnson", roster[0].Name)
		assert.Equal(t, "security", roster[0].Role)
		assert.Equal(t, "234-567-8901", roster[0].Phone)
		assert.Equal(t, testutil.FixedTime, roster[0].AddedOn)

		env.AssertOutboxEvent(t, "staff.added", "STAFF-000001")
	})

	t.Run("same name in another case is a duplicate", func(t *testing.T) {
		env := testutil.NewEnv(t)
		uc := newInteractor(env)

		_, err := uc.Execute(ctx, &Request{Name: "John Smith", Role: "admin"})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, &Request{Name: "john smith", Role: "security"})
		assert.ErrorIs(t, err, domain.ErrDuplicateStaff)

		roster, err := env.ReadModel.ListStaff(ctx)
		require.NoError(t, err)
		assert.Len(t, roster, 1)
		assert.Equal(t, int64(1), env.OutboxCount(t))
	})

	t.Run("invalid requests", func(t *testing.T) {
		env := testutil.NewEnv(t)
		uc := newInteractor(env)

		_, err := uc.Execute(ctx, &Request{Name: "", Role: "admin"})
		assert.ErrorIs(t, err, domain.ErrEmptyStaffName)

		_, err = uc.Execute(ctx, &Request{Name: "Sam", Role: "manager"})
		assert.ErrorIs(t, err, domain.ErrInvalidStaffRole)

		roster, err := env.ReadModel.ListStaff(ctx)
		require.NoError(t, err)
		assert.Empty(t, roster)
	})
}
