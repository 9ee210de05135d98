// Package gfx describes the graphics collaborators the simulation talks to.
//
// The simulation never interprets meshes, materials or buffers. It forwards
// them together with transforms and light data to a Device, which treats a
// DrawCall as a complete description of one indexed draw.
package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/color"
)

//go:generate go tool mockgen -destination=gfxmock/device.go -package=gfxmock . Device

// Buffer is a handle to a device owned vertex or index buffer.
type Buffer uint32

// NoBuffer is the zero handle, never returned by a Device.
const NoBuffer Buffer = 0

// Vertex is a particle vertex. Every particle is expanded into a quad of
// four vertices sharing position, color and size, distinguished by UV.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
	Color    color.Color
	Size     float32
}

// Pass selects the render pass of a draw call.
type Pass uint8

const (
	// PassOpaque draws depth tested, non blended geometry.
	PassOpaque Pass = iota

	// PassTranslucent draws additive blended geometry after all opaque geometry.
	PassTranslucent
)

// Mesh is geometry provided by the device side. Only the intrinsic
// bounding radius is inspected.
type Mesh interface {
	Radius() float64
}

// Material is an opaque shading handle forwarded unchanged to the device.
type Material interface {
	MaterialName() string
}

// DrawCall describes a single indexed draw.
//
// Either Mesh is set, in which case the device draws the full mesh
// using World and NormalWorld, or Vertices and Indices reference buffers
// and IndexCount indices starting at StartIndex are drawn.
type DrawCall struct {
	Pass Pass

	Mesh     Mesh
	Material Material

	World       mgl32.Mat4
	NormalWorld mgl32.Mat4

	Vertices   Buffer
	Indices    Buffer
	IndexCount int
	StartIndex int

	Frame *Frame
}

// Device is the graphics device capability passed into draw calls.
type Device interface {
	// CreateVertexBuffer allocates a dynamic vertex buffer
	// holding vertexCount vertices.
	CreateVertexBuffer(vertexCount int) (Buffer, error)

	// CreateIndexBuffer allocates a static index buffer with the given content.
	CreateIndexBuffer(indices []uint32) (Buffer, error)

	// UploadVertices replaces the vertices starting at firstVertex.
	UploadVertices(buffer Buffer, firstVertex int, vertices []Vertex)

	// DrawIndexed issues a draw call.
	DrawIndexed(call DrawCall)

	// ReleaseBuffer frees the buffer. The handle must not be used afterwards.
	ReleaseBuffer(buffer Buffer)
}
