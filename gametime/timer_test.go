package gametime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimer_Once(t *testing.T) {
	timer := NewTimer(500*time.Millisecond, TimerModeOnce)

	require.False(t, timer.Tick(300*time.Millisecond).Finished())
	require.InDelta(t, 0.6, timer.Fraction(), 1e-9)

	require.True(t, timer.Tick(300*time.Millisecond).JustFinished())
	require.True(t, timer.Finished())
	require.Equal(t, 500*time.Millisecond, timer.Elapsed())

	// does not fire again
	require.False(t, timer.Tick(time.Second).JustFinished())
	require.True(t, timer.Finished())

	timer.Reset()
	require.False(t, timer.Finished())
	require.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestTimer_RepeatingCatchesUp(t *testing.T) {
	timer := NewTimer(100*time.Millisecond, TimerModeRepeating)

	timer.Tick(350 * time.Millisecond)
	require.Equal(t, 3, timer.TimesFinishedThisTick())
	require.Equal(t, 50*time.Millisecond, timer.Elapsed())
	require.False(t, timer.Finished())

	timer.Tick(50 * time.Millisecond)
	require.Equal(t, 1, timer.TimesFinishedThisTick())

	timer.Tick(10 * time.Millisecond)
	require.Equal(t, 0, timer.TimesFinishedThisTick())
}

func TestTimer_ZeroDurationNeverFinishes(t *testing.T) {
	timer := NewTimer(0, TimerModeOnce)

	for range 100 {
		timer.Tick(time.Hour)
	}

	require.False(t, timer.Finished())
	require.Equal(t, 0.0, timer.Fraction())
}

func TestNewTimerWithFrequency(t *testing.T) {
	timer := NewTimerWithFrequency(50)
	require.Equal(t, 20*time.Millisecond, timer.Duration())
}

func TestVirtualTime_Advance(t *testing.T) {
	vt := NewVirtualTime()
	vt.Advance(20 * time.Millisecond)
	vt.Advance(30 * time.Millisecond)

	require.Equal(t, 50*time.Millisecond, vt.Elapsed)
	require.Equal(t, 30*time.Millisecond, vt.Delta)
	require.InDelta(t, 0.03, vt.DeltaSecs, 1e-12)

	vt.Scale = 0
	vt.Advance(time.Second)
	require.Equal(t, time.Duration(0), vt.Delta)
	require.Equal(t, 50*time.Millisecond, vt.Elapsed)
}

func TestClock_Tick(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := NewClock(func() time.Time { return now })

	vt := NewVirtualTime()
	clock.Tick(&vt)
	require.Equal(t, time.Duration(0), vt.Elapsed)

	now = now.Add(16 * time.Millisecond)
	clock.Tick(&vt)
	require.Equal(t, 16*time.Millisecond, vt.Delta)
	require.Equal(t, 16*time.Millisecond, vt.Elapsed)
}

func TestTimings_Add(t *testing.T) {
	var timings Timings
	timings = timings.Add(10 * time.Millisecond)
	timings = timings.Add(30 * time.Millisecond)

	require.Equal(t, 2, timings.Count)
	require.Equal(t, 10*time.Millisecond, timings.Min)
	require.Equal(t, 30*time.Millisecond, timings.Max)
	require.Equal(t, 30*time.Millisecond, timings.Latest)
	require.Equal(t, 11*time.Millisecond, timings.MovingAverage)
}
