package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Per-frame CPU timing buckets. Names are "subsystem.Operation", e.g.
// "frame.DrawEye" or "audio.Next".

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("frame.DrawEye")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// TopN formats the n slowest buckets of the current frame,
// e.g. "frame.DrawEye:4.2ms, audio.Next:0.3ms".
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]] == ss[names[j]] {
			return names[i] < names[j]
		}
		return ss[names[i]] > ss[names[j]]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(ss[name]))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", float64(d.Microseconds())/1000), ".0") + "ms"
}

// FPSCounter logs the frame rate and the slowest buckets once per interval.
type FPSCounter struct {
	Interval time.Duration

	frames int
	last   time.Time
}

// NewFPSCounter starts counting from now.
func NewFPSCounter(interval time.Duration) *FPSCounter {
	return &FPSCounter{Interval: interval, last: time.Now()}
}

// Frame counts one frame and reports when the interval has passed. It returns
// the measured rate, or 0 when nothing was reported.
func (c *FPSCounter) Frame(now time.Time) float64 {
	c.frames++
	elapsed := now.Sub(c.last)
	if elapsed < c.Interval {
		return 0
	}
	fps := float64(c.frames) / elapsed.Seconds()
	log.WithFields(log.Fields{
		"fps":   fmt.Sprintf("%.0f", fps),
		"frame": formatMs(SumWithPrefix("frame.")),
		"top":   TopN(3),
	}).Debug("frame stats")
	c.frames = 0
	c.last = now
	return fps
}
