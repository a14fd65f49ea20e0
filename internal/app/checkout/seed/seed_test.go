package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
)

var testTime = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func TestDefault(t *testing.T) {
	entries, err := Default()
	require.NoError(t, err)
	require.Len(t, entries, 6)

	first := entries[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Premium Headphones", first.Spec.Name)
	assert.Equal(t, "299.99", first.Spec.ListPrice.String())
	require.NotNil(t, first.Spec.DiscountedPrice)
	assert.Equal(t, "249.99", first.Spec.DiscountedPrice.String())
	assert.Equal(t, int64(50), first.Spec.Stock)

	assert.Nil(t, entries[1].Spec.DiscountedPrice)
	assert.Equal(t, "Home & Kitchen", entries[5].Spec.Category)

	for _, e := range entries {
		_, err := domain.NewProduct(e.ID, e.Spec, testTime)
		assert.NoError(t, err, e.Spec.Name)
	}
}

func TestLoad(t *testing.T) {
	t.Run("custom catalog", func(t *testing.T) {
		doc := `
products:
  - id: X1
    name: Tea
    category: Food
    list_price: "4.50"
    stock: 3
`
		entries, err := Load(strings.NewReader(doc))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "4.50", entries[0].Spec.ListPrice.String())
	})

	t.Run("bad price", func(t *testing.T) {
		doc := "products:\n  - name: Tea\n    list_price: cheap\n"
		_, err := Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader("products: [unclosed"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	entries, err := LoadFile("")
	require.NoError(t, err)
	assert.Len(t, entries, 6)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: []\n"), 0o600))
	entries, err = LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRosterFile(t *testing.T) {
	t.Run("embedded roster", func(t *testing.T) {
		roster, err := LoadRosterFile("")
		require.NoError(t, err)
		require.Len(t, roster, 2)
		assert.Equal(t, "John Smith", roster[0].Spec.Name)
		assert.Equal(t, domain.RoleAdmin, roster[0].Spec.Role)
		assert.Equal(t, domain.RoleSecurity, roster[1].Spec.Role)
		assert.Equal(t, "emily.johnson@qwikpay.com", roster[1].Spec.Email)
	})

	t.Run("catalog without staff", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("products: []\n"), 0o600))
		roster, err := LoadRosterFile(path)
		require.NoError(t, err)
		assert.Empty(t, roster)
	})

	t.Run("unknown role", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("staff:\n  - name: Sam\n    role: cashier\n"), 0o600))
		_, err := LoadRosterFile(path)
		assert.ErrorIs(t, err, domain.ErrInvalidStaffRole)
	})
}
