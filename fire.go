package skyrail

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/skyrail/gametime"
)

// FireControl owns a pool of bullets and gates launching them by a cooldown.
//
// The control is either ready or cooling. While cooling the cooldown timer
// advances, and once it finishes the control becomes ready on that frame
// without firing. A ready control fires on request and starts cooling again.
type FireControl struct {
	bullets  []*Bullet
	cooldown gametime.Timer
	ready    bool
}

// NewFireControl takes ownership of the given bullets. The pool must hold at
// least MinPoolSize bullets for the bullets lifetime and the fire delay, so
// that a bullet is available whenever the cooldown finishes.
func NewFireControl(bullets []*Bullet, delay time.Duration) (*FireControl, error) {
	if delay <= 0 {
		return nil, fmt.Errorf("%w: fire delay must be positive, got %s", ErrInvalidConfig, delay)
	}

	if len(bullets) == 0 {
		return nil, fmt.Errorf("%w: bullet pool is empty", ErrInvalidConfig)
	}

	required := MinPoolSize(bullets[0].Lifetime(), delay)
	if len(bullets) < required {
		return nil, fmt.Errorf("%w: bullet pool holds %d bullets, need at least %d",
			ErrInvalidConfig, len(bullets), required)
	}

	return &FireControl{
		bullets:  bullets,
		cooldown: gametime.NewTimer(delay, gametime.TimerModeOnce),
		ready:    true,
	}, nil
}

// Fire advances the cooldown and launches the first inactive bullet in pool
// order if the control is ready and wantsToFire is set.
func (f *FireControl) Fire(vt gametime.VirtualTime, wantsToFire bool) {
	if !f.ready {
		if f.cooldown.Tick(vt.Delta).JustFinished() {
			f.cooldown.Reset()
			f.ready = true
		}

		return
	}

	if !wantsToFire {
		return
	}

	f.ready = false

	for _, bullet := range f.bullets {
		if bullet.IsActive() {
			continue
		}

		bullet.Launch(vt.Elapsed)
		return
	}

	slog.Debug("No inactive bullet to fire", slog.Int("poolSize", len(f.bullets)))
}

// Ready reports whether the next call to Fire launches a bullet on request.
func (f *FireControl) Ready() bool {
	return f.ready
}

// Charge returns how far the cooldown has progressed, from 0 right after
// firing to 1 when ready.
func (f *FireControl) Charge() float64 {
	if f.ready {
		return 1
	}

	return f.cooldown.Fraction()
}

// Bullets returns the pool. The slice must not be modified.
func (f *FireControl) Bullets() []*Bullet {
	return f.bullets
}

// Release releases all bullets of the pool.
func (f *FireControl) Release() {
	for _, bullet := range f.bullets {
		bullet.Release()
	}
}
