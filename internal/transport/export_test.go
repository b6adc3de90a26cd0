package transport

import "time"

// SetClock replaces the observer's time source for tests.
func (o *Observer) SetClock(now func() time.Time) {
	o.now = now
}
