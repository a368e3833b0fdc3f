// Package overlay draws short-lived text messages ("toasts") into each eye.
package overlay

import "time"

const fadeDuration = 500 * time.Millisecond

// Toast is a message shown until its deadline, fading out at the end.
type Toast struct {
	Text    string
	shownAt time.Time
	until   time.Time
}

// NewToast starts a toast at now that lasts d.
func NewToast(text string, now time.Time, d time.Duration) Toast {
	return Toast{Text: text, shownAt: now, until: now.Add(d)}
}

// Visible reports whether the toast should still be drawn.
func (t Toast) Visible(now time.Time) bool {
	return t.Text != "" && now.Before(t.until) && !now.Before(t.shownAt)
}

// Alpha is 1 until the last fadeDuration, then falls linearly to 0.
func (t Toast) Alpha(now time.Time) float32 {
	if !t.Visible(now) {
		return 0
	}
	remaining := t.until.Sub(now)
	if remaining >= fadeDuration {
		return 1
	}
	return float32(remaining) / float32(fadeDuration)
}
