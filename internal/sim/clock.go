package sim

import "time"

// Clock is the real-time-clock collaborator. It is read exactly once,
// at startup, to fix the session's epoch.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }
