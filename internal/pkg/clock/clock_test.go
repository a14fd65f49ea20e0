package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_UTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewRealClock().Now().Location())
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("moves only when told", func(t *testing.T) {
		clk := NewMockClock(start)
		assert.Equal(t, start, clk.Now())

		clk.Advance(90 * time.Second)
		assert.Equal(t, start.Add(90*time.Second), clk.Now())

		clk.Set(start)
		assert.Equal(t, start, clk.Now())
	})

	t.Run("concurrent advances all land", func(t *testing.T) {
		clk := NewMockClock(start)

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				clk.Advance(time.Minute)
				_ = clk.Now()
			}()
		}
		wg.Wait()

		assert.Equal(t, start.Add(50*time.Minute), clk.Now())
	})
}
