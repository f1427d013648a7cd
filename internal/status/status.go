// Package status holds the device's record of the last digit request.
// It lives for the whole process and is never persisted.
package status

import (
	"strconv"
	"sync"
	"time"

	"github.com/nhdewitt/digit-matrix/internal/glyph"
)

// None is shown until the first digit request arrives.
const None = "None"

type Status struct {
	mu      sync.Mutex
	last    string
	started time.Time
	now     func() time.Time
}

// Snapshot is a consistent copy for the control page.
type Snapshot struct {
	Last   string
	Uptime time.Duration
}

func New() *Status {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Status {
	return &Status{
		last:    None,
		started: now(),
		now:     now,
	}
}

func (s *Status) SetDigit(d glyph.Digit) {
	s.set(strconv.Itoa(d.Int()))
}

// SetInvalid records a rejected value as "Invalid: N".
func (s *Status) SetInvalid(n int) {
	s.SetInvalidText(strconv.Itoa(n))
}

// SetInvalidText is SetInvalid for values that do not fit in an int.
func (s *Status) SetInvalidText(text string) {
	s.set("Invalid: " + text)
}

func (s *Status) set(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = v
}

func (s *Status) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Status) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Last:   s.last,
		Uptime: s.now().Sub(s.started),
	}
}

// UptimeMillis is the uptime counter shown on the control page.
func (sn Snapshot) UptimeMillis() int64 {
	return sn.Uptime.Milliseconds()
}
