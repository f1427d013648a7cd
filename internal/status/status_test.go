package status

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusLifecycle(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := start
	s := newWithClock(func() time.Time { return now })

	assert.Equal(t, None, s.Last())

	s.SetDigit(5)
	assert.Equal(t, "5", s.Last())

	s.SetInvalid(12)
	assert.Equal(t, "Invalid: 12", s.Last())

	s.SetInvalidText("99999999999999999999")
	assert.Equal(t, "Invalid: 99999999999999999999", s.Last())

	s.SetInvalid(-1)
	assert.Equal(t, "Invalid: -1", s.Last())

	now = start.Add(1500 * time.Millisecond)
	snap := s.Snapshot()
	assert.Equal(t, "Invalid: -1", snap.Last)
	assert.Equal(t, int64(1500), snap.UptimeMillis())
}

func TestStatusConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.SetInvalid(i*100 + j)
				_ = s.Snapshot()
			}
		}(i)
	}
	wg.Wait()
	assert.Contains(t, s.Last(), "Invalid: ")
}
