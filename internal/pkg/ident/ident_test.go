package ident

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceGenerator(t *testing.T) {
	t.Run("produces padded sequential ids", func(t *testing.T) {
		gen := NewSequenceGenerator("BILL")
		assert.Equal(t, "BILL-000001", gen.NewID())
		assert.Equal(t, "BILL-000002", gen.NewID())
		assert.Equal(t, "BILL-000003", gen.NewID())
	})

	t.Run("ids are unique under concurrent use", func(t *testing.T) {
		gen := NewSequenceGenerator("EVT")
		seen := sync.Map{}

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, loaded := seen.LoadOrStore(gen.NewID(), true)
				assert.False(t, loaded)
			}()
		}
		wg.Wait()
	})
}

func TestUUIDGenerator(t *testing.T) {
	gen := NewUUIDGenerator("BILL-")

	id := gen.NewID()
	require.True(t, strings.HasPrefix(id, "BILL-"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "BILL-"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.NewID())
}
