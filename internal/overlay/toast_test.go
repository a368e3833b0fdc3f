package overlay

import (
	"testing"
	"time"
)

func TestToastLifetime(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	toast := NewToast("3D Toast example.", start, 2*time.Second)

	tests := []struct {
		after   time.Duration
		visible bool
		alpha   float32
	}{
		{-time.Second, false, 0},
		{0, true, 1},
		{time.Second, true, 1},
		{1750 * time.Millisecond, true, 0.5},
		{2 * time.Second, false, 0},
	}
	for _, tt := range tests {
		now := start.Add(tt.after)
		if got := toast.Visible(now); got != tt.visible {
			t.Errorf("Visible(+%v) = %v, want %v", tt.after, got, tt.visible)
		}
		if got := toast.Alpha(now); got != tt.alpha {
			t.Errorf("Alpha(+%v) = %v, want %v", tt.after, got, tt.alpha)
		}
	}
}

func TestEmptyToastNeverVisible(t *testing.T) {
	var toast Toast
	if toast.Visible(time.Now()) {
		t.Error("zero toast should not be visible")
	}
}
