package frame

import (
	"time"
)

// spinWindow is how close to the deadline the limiter stops sleeping and
// polls the clock instead; Sleep overshoots by about this much.
const spinWindow = 200 * time.Microsecond

// Limiter paces the frame loop to a target rate. Deadlines advance by a fixed
// period so short jitter evens out; a stall longer than one period restarts
// the schedule.
type Limiter struct {
	period   time.Duration
	deadline time.Time
}

// Wait blocks until the next frame is due at limit frames per second and
// returns how long it blocked. A limit of 0 or less disables capping.
func (l *Limiter) Wait(limit int) time.Duration {
	if limit <= 0 {
		l.Reset()
		return 0
	}

	now := time.Now()
	period := time.Second / time.Duration(limit)
	if period != l.period || l.deadline.IsZero() {
		l.period = period
		l.deadline = now
	}
	l.deadline = l.deadline.Add(period)

	if now.Sub(l.deadline) > period {
		l.deadline = now
		return 0
	}
	sleepUntil(l.deadline)
	return time.Since(now)
}

// Reset drops the schedule so the next Wait starts from the current time,
// e.g. after the window was hidden.
func (l *Limiter) Reset() {
	l.deadline = time.Time{}
}

func sleepUntil(deadline time.Time) {
	if d := time.Until(deadline) - spinWindow; d > 0 {
		time.Sleep(d)
	}
	for time.Now().Before(deadline) {
	}
}
