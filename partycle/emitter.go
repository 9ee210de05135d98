package partycle

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
)

// Emitter spawns particles at a fixed rate into a fixed size pool.
//
// The pool is a ring buffer: the living particles occupy the slots from
// firstAlive up to (excluding) firstDead in spawn order, possibly wrapping
// around the end of the pool. All other slots are dead. As every particle
// lives for the same time, particles always die in spawn order and retiring
// a particle only needs to advance firstAlive.
type Emitter struct {
	config EmitterConfig
	device gfx.Device

	particles  []Particle
	firstAlive int
	firstDead  int
	living     int

	position gm.Vec3
	active   bool

	// finishes once per spawn interval
	spawnTimer gametime.Timer

	// finishes after MaxLife, never if MaxLife is zero
	life gametime.Timer

	// four vertices per particle, uv coordinates never change
	vertices     []gfx.Vertex
	vertexBuffer gfx.Buffer
	indexBuffer  gfx.Buffer
}

// New creates an active emitter and allocates its device buffers.
func New(device gfx.Device, config EmitterConfig) (*Emitter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Emitter{
		config:     config,
		device:     device,
		particles:  make([]Particle, config.MaxParticles),
		position:   config.Position,
		active:     true,
		spawnTimer: gametime.NewTimerWithFrequency(config.ParticlesPerSecond),
		life:       gametime.NewTimer(config.MaxLife, gametime.TimerModeOnce),
		vertices:   make([]gfx.Vertex, 4*config.MaxParticles),
	}

	// all slots start out dead
	for idx := range e.particles {
		e.particles[idx].Age = config.Lifetime
	}

	for idx := 0; idx < len(e.vertices); idx += 4 {
		e.vertices[idx+0].UV = [2]float32{0, 0}
		e.vertices[idx+1].UV = [2]float32{1, 0}
		e.vertices[idx+2].UV = [2]float32{1, 1}
		e.vertices[idx+3].UV = [2]float32{0, 1}
	}

	vertexBuffer, err := device.CreateVertexBuffer(len(e.vertices))
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	indexBuffer, err := device.CreateIndexBuffer(quadIndices(config.MaxParticles))
	if err != nil {
		device.ReleaseBuffer(vertexBuffer)
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	e.vertexBuffer = vertexBuffer
	e.indexBuffer = indexBuffer

	slog.Debug("Created particle emitter",
		slog.Int("maxParticles", config.MaxParticles),
		slog.Float64("particlesPerSecond", config.ParticlesPerSecond),
		slog.Duration("lifetime", config.Lifetime))

	return e, nil
}

// Clone creates a new emitter with the same configuration at the current
// position of e. The clone owns its own pool and device buffers.
func (e *Emitter) Clone() (*Emitter, error) {
	config := e.config
	config.Position = e.position
	return New(e.device, config)
}

// Release frees the device buffers of the emitter. The emitter must not
// be drawn afterwards. Calling Release more than once is fine.
func (e *Emitter) Release() {
	if e.vertexBuffer == gfx.NoBuffer {
		return
	}

	e.device.ReleaseBuffer(e.vertexBuffer)
	e.device.ReleaseBuffer(e.indexBuffer)

	e.vertexBuffer = gfx.NoBuffer
	e.indexBuffer = gfx.NoBuffer
	e.active = false

	slog.Debug("Released particle emitter")
}

func (e *Emitter) Config() EmitterConfig {
	return e.config
}

func (e *Emitter) IsActive() bool {
	return e.active
}

func (e *Emitter) SetActive(active bool) {
	e.active = active
}

// Restart re-arms the emitter: its max life starts over, the spawn cadence
// is reset and the emitter is activated. Particles still alive stay alive.
func (e *Emitter) Restart() {
	e.life.Reset()
	e.spawnTimer.Reset()
	e.active = true
}

// Clear kills all particles. The emitter stays active or inactive.
func (e *Emitter) Clear() {
	for idx := range e.particles {
		e.particles[idx].Age = e.config.Lifetime
	}

	e.firstAlive = 0
	e.firstDead = 0
	e.living = 0
}

func (e *Emitter) Position() gm.Vec3 {
	return e.position
}

// SetPosition moves the emitter. Living particles are simulated relative
// to the current emitter position.
func (e *Emitter) SetPosition(pos gm.Vec3) {
	e.position = pos
}

// LivingCount returns the number of particles currently alive.
func (e *Emitter) LivingCount() int {
	return e.living
}

// Capacity returns the size of the particle pool.
func (e *Emitter) Capacity() int {
	return len(e.particles)
}

// Particles iterates over all living particles, oldest first.
func (e *Emitter) Particles() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for i := range e.living {
			if !yield(e.particles[e.slot(i)]) {
				return
			}
		}
	}
}

// Update advances the emitter by dt: it ages and moves all living
// particles, retires the ones that reached their lifetime and then spawns
// as many particles as spawn intervals have passed.
func (e *Emitter) Update(dt time.Duration) {
	if !e.active {
		return
	}

	if e.life.Tick(dt).Finished() {
		e.active = false
		return
	}

	e.updateParticles(dt)

	spawnCount := e.spawnTimer.Tick(dt).TimesFinishedThisTick()

	// everything above the free capacity would be dropped anyways
	spawnCount = min(spawnCount, len(e.particles)-e.living)

	for range spawnCount {
		e.SpawnParticle()
	}
}

func (e *Emitter) updateParticles(dt time.Duration) {
	lifetime := e.config.Lifetime

	start := e.firstAlive
	count := e.living

	for i := range count {
		idx := (start + i) % len(e.particles)
		p := &e.particles[idx]

		if p.Age >= lifetime {
			continue
		}

		p.Age += dt

		if p.Age >= lifetime {
			// the oldest particle died, retire it
			e.firstAlive = (e.firstAlive + 1) % len(e.particles)
			e.living -= 1
			continue
		}

		p.simulate(&e.config, e.position)
	}
}

// SpawnParticle resets the first dead slot to a fresh particle at the
// emitters position. Does nothing if the pool is full.
func (e *Emitter) SpawnParticle() {
	if e.living == len(e.particles) {
		return
	}

	e.particles[e.firstDead] = Particle{
		Position:      e.position,
		Color:         e.config.StartColor,
		Size:          e.config.StartSize,
		StartVelocity: gm.Jitter(e.config.StartVelocity, e.config.VelocityJitter),
	}

	e.firstDead = (e.firstDead + 1) % len(e.particles)
	e.living += 1
}

// slot returns the pool index of the i-th living particle.
func (e *Emitter) slot(i int) int {
	return (e.firstAlive + i) % len(e.particles)
}
