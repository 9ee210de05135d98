package partycle

import (
	"iter"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/gfx"
)

// Draw uploads the living particles and issues one draw call per
// contiguous span of living particles: one if the live range does not
// wrap around the end of the pool, two otherwise.
func (e *Emitter) Draw(frame *gfx.Frame) {
	if !e.active || e.living == 0 || e.vertexBuffer == gfx.NoBuffer {
		return
	}

	for sp := range e.liveSpans() {
		e.drawSpan(frame, sp)
	}
}

type span struct {
	start, count int
}

// liveSpans returns the one or two index ranges covering all living particles.
func (e *Emitter) liveSpans() iter.Seq[span] {
	return func(yield func(span) bool) {
		if e.living == 0 {
			return
		}

		capacity := len(e.particles)

		if e.firstAlive+e.living <= capacity {
			yield(span{start: e.firstAlive, count: e.living})
			return
		}

		head := capacity - e.firstAlive
		if !yield(span{start: e.firstAlive, count: head}) {
			return
		}

		yield(span{start: 0, count: e.living - head})
	}
}

func (e *Emitter) drawSpan(frame *gfx.Frame, sp span) {
	for idx := sp.start; idx < sp.start+sp.count; idx++ {
		p := &e.particles[idx]

		pos := p.Position.Mgl()
		size := float32(p.Size)

		for v := range 4 {
			vertex := &e.vertices[4*idx+v]
			vertex.Position = pos
			vertex.Color = p.Color
			vertex.Size = size
		}
	}

	vertices := e.vertices[4*sp.start : 4*(sp.start+sp.count)]
	e.device.UploadVertices(e.vertexBuffer, 4*sp.start, vertices)

	e.device.DrawIndexed(gfx.DrawCall{
		Pass:        gfx.PassTranslucent,
		Material:    e.config.Material,
		World:       mgl32.Ident4(),
		NormalWorld: mgl32.Ident4(),
		Vertices:    e.vertexBuffer,
		Indices:     e.indexBuffer,
		IndexCount:  6 * sp.count,
		StartIndex:  6 * sp.start,
		Frame:       frame,
	})
}

// quadIndices builds the index buffer content for count quads, two
// triangles per quad.
func quadIndices(count int) []uint32 {
	indices := make([]uint32, 0, 6*count)

	for idx := range count {
		base := uint32(4 * idx)
		indices = append(indices,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}

	return indices
}
