package skyrail

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
	"github.com/oliverbestmann/skyrail/partycle"
)

// TargetManager owns a fixed number of targets placed along the Z axis.
// Targets are recycled using ResetTargets instead of being recreated.
type TargetManager struct {
	config  TargetsConfig
	targets []*Target
	rng     *rand.Rand
}

// NewTargetManager creates config.Count targets. Every target gets its own
// clones of the thruster and explosion emitters, the prototypes stay owned
// by the caller.
func NewTargetManager(
	config TargetsConfig,
	mesh gfx.Mesh, material gfx.Material,
	thruster, explosion *partycle.Emitter,
	lights *LightManager,
) (*TargetManager, error) {
	m := &TargetManager{
		config: config,
		rng:    rand.New(rand.NewPCG(config.Seed, config.Seed^0x5eed)),
	}

	for idx := range config.Count {
		target, err := m.newTarget(mesh, material, thruster, explosion, lights)
		if err != nil {
			m.Release()
			return nil, fmt.Errorf("create target %d: %w", idx, err)
		}

		m.place(target, idx)
		m.targets = append(m.targets, target)
	}

	slog.Debug("Created targets",
		slog.Int("count", len(m.targets)),
		slog.Bool("randomized", config.Randomize))

	return m, nil
}

func (m *TargetManager) newTarget(
	mesh gfx.Mesh, material gfx.Material,
	thrusterPrototype, explosionPrototype *partycle.Emitter,
	lights *LightManager,
) (*Target, error) {
	thruster, err := thrusterPrototype.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone thruster: %w", err)
	}

	explosion, err := explosionPrototype.Clone()
	if err != nil {
		thruster.Release()
		return nil, fmt.Errorf("clone explosion: %w", err)
	}

	target, err := NewTarget(mesh, material, m.config, thruster, explosion, lights)
	if err != nil {
		thruster.Release()
		explosion.Release()
		return nil, err
	}

	return target, nil
}

// place positions the target with the given index along the Z axis, with
// either a fixed or a random lateral position.
func (m *TargetManager) place(target *Target, idx int) {
	position := gm.Vec3{
		Y: m.config.BaseY,
		Z: float64(idx) * m.config.Spacing,
	}

	if m.config.Randomize {
		position.X = gm.RandomInWith(m.rng, -m.config.Width, m.config.Width)
		position.Y += gm.RandomInWith(m.rng, -m.config.Height, m.config.Height)
	}

	target.SetPosition(position)
}

// Targets returns all targets, active or not. The slice must not be modified.
func (m *TargetManager) Targets() []*Target {
	return m.targets
}

// ActiveCount returns the number of targets that are still alive.
func (m *TargetManager) ActiveCount() int {
	var count int
	for _, target := range m.targets {
		if target.IsActive() {
			count++
		}
	}

	return count
}

// ResetTargets reactivates all targets. In randomized mode, every target
// gets a new lateral position.
func (m *TargetManager) ResetTargets() {
	for idx, target := range m.targets {
		target.Reset()
		m.place(target, idx)
	}
}

func (m *TargetManager) Update(vt gametime.VirtualTime) {
	for _, target := range m.targets {
		target.Update(vt)
	}
}

func (m *TargetManager) Draw(dc DrawContext) {
	for _, target := range m.targets {
		target.Draw(dc)
	}
}

func (m *TargetManager) DrawEmitters(frame *gfx.Frame) {
	for _, target := range m.targets {
		target.DrawEmitters(frame)
	}
}

// Release releases all targets.
func (m *TargetManager) Release() {
	for _, target := range m.targets {
		target.Release()
	}
}
