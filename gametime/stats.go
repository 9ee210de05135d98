package gametime

import (
	"time"
)

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// FrameStats collects timings of the update and draw phase of each frame.
type FrameStats struct {
	Update Timings
	Draw   Timings
}

// Measure runs fn and adds its duration to the given Timings.
func Measure(timings *Timings, fn func()) {
	startTime := time.Now()
	fn()
	*timings = timings.Add(time.Since(startTime))
}
