package skybiten

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gfx"
)

// maxBatchVertices is the number of vertices addressable by uint16 indices.
const maxBatchVertices = math.MaxUint16

// Stats are collected for each frame between Begin and Flush.
type Stats struct {
	DrawCalls int
	Triangles int
	Culled    int
	Batches   int
}

type buffer struct {
	vertices []gfx.Vertex
	indices  []uint32
}

// triangle is a screen space triangle with premultiplied vertex colors.
type triangle struct {
	Vertices [3]ebiten.Vertex
	Depth    float32
	Material *Material
}

// Device is a software transforming gfx.Device drawing to an ebiten image.
//
// Draw calls are projected on the cpu and queued. Flush sorts the opaque
// triangles back to front and draws them, followed by all translucent
// triangles in submission order using additive blending.
type Device struct {
	buffers    map[gfx.Buffer]*buffer
	nextBuffer gfx.Buffer

	width, height int

	opaque      []triangle
	translucent []triangle

	stats     Stats
	lastStats Stats

	// reused for each batch
	batchVertices []ebiten.Vertex
	batchIndices  []uint16
}

var _ gfx.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{
		buffers: map[gfx.Buffer]*buffer{},
		width:   1,
		height:  1,
	}
}

func (d *Device) CreateVertexBuffer(vertexCount int) (gfx.Buffer, error) {
	if vertexCount <= 0 {
		return gfx.NoBuffer, fmt.Errorf("invalid vertex count %d", vertexCount)
	}

	return d.insert(&buffer{vertices: make([]gfx.Vertex, vertexCount)}), nil
}

func (d *Device) CreateIndexBuffer(indices []uint32) (gfx.Buffer, error) {
	if len(indices) == 0 {
		return gfx.NoBuffer, fmt.Errorf("index buffer must not be empty")
	}

	return d.insert(&buffer{indices: slices.Clone(indices)}), nil
}

func (d *Device) insert(buf *buffer) gfx.Buffer {
	d.nextBuffer += 1
	d.buffers[d.nextBuffer] = buf
	return d.nextBuffer
}

func (d *Device) UploadVertices(handle gfx.Buffer, firstVertex int, vertices []gfx.Vertex) {
	buf, ok := d.buffers[handle]
	if !ok {
		slog.Warn("Upload to unknown buffer", slog.Int("buffer", int(handle)))
		return
	}

	if firstVertex < 0 || firstVertex+len(vertices) > len(buf.vertices) {
		panic(fmt.Sprintf(
			"upload of %d vertices at %d exceeds buffer of size %d",
			len(vertices), firstVertex, len(buf.vertices),
		))
	}

	copy(buf.vertices[firstVertex:], vertices)
}

func (d *Device) ReleaseBuffer(handle gfx.Buffer) {
	if _, ok := d.buffers[handle]; !ok {
		slog.Warn("Release of unknown buffer", slog.Int("buffer", int(handle)))
		return
	}

	delete(d.buffers, handle)
}

// BufferCount returns the number of live buffers.
func (d *Device) BufferCount() int {
	return len(d.buffers)
}

// Stats returns the statistics of the previously flushed frame.
func (d *Device) Stats() Stats {
	return d.lastStats
}

// Begin starts a new frame with the given target size.
func (d *Device) Begin(width, height int) {
	d.width = max(1, width)
	d.height = max(1, height)

	d.opaque = d.opaque[:0]
	d.translucent = d.translucent[:0]
	d.stats = Stats{}
}

func (d *Device) DrawIndexed(call gfx.DrawCall) {
	if call.Frame == nil {
		slog.Warn("Draw call without frame")
		return
	}

	d.stats.DrawCalls += 1

	material := materialOf(call.Material)

	queue := &d.opaque
	if call.Pass == gfx.PassTranslucent {
		queue = &d.translucent
	}

	switch {
	case call.Mesh != nil:
		mesh, ok := call.Mesh.(*Mesh)
		if !ok {
			slog.Warn("Unsupported mesh type", slog.String("type", fmt.Sprintf("%T", call.Mesh)))
			return
		}

		*queue = d.appendMesh(*queue, call, mesh, material)

	default:
		vertices, indices, ok := d.lookup(call)
		if !ok {
			return
		}

		*queue = d.appendParticles(*queue, call.Frame, vertices, indices, material)
	}
}

func (d *Device) lookup(call gfx.DrawCall) ([]gfx.Vertex, []uint32, bool) {
	vb, ok := d.buffers[call.Vertices]
	if !ok {
		slog.Warn("Draw with unknown vertex buffer", slog.Int("buffer", int(call.Vertices)))
		return nil, nil, false
	}

	ib, ok := d.buffers[call.Indices]
	if !ok {
		slog.Warn("Draw with unknown index buffer", slog.Int("buffer", int(call.Indices)))
		return nil, nil, false
	}

	end := call.StartIndex + call.IndexCount
	if call.StartIndex < 0 || end > len(ib.indices) {
		slog.Warn("Draw exceeds index buffer",
			slog.Int("start", call.StartIndex),
			slog.Int("count", call.IndexCount),
		)

		return nil, nil, false
	}

	return vb.vertices, ib.indices[call.StartIndex:end], true
}

func (d *Device) appendMesh(queue []triangle, call gfx.DrawCall, mesh *Mesh, material *Material) []triangle {
	frame := call.Frame
	mvp := frame.Projection.Mul4(frame.View).Mul4(call.World)

	var clip [3]mgl32.Vec4
	var colors [3]color.Color

	for idx := 0; idx+2 < len(mesh.Indices); idx += 3 {
		visible := true

		for corner := range 3 {
			vertex := mesh.Indices[idx+corner]
			clip[corner] = mvp.Mul4x1(mesh.Positions[vertex].Vec4(1))

			if clip[corner].W() <= 0 {
				visible = false
				break
			}

			if material.Unlit {
				colors[corner] = material.Color
				continue
			}

			position := call.World.Mul4x1(mesh.Positions[vertex].Vec4(1)).Vec3()
			normal := call.NormalWorld.Mul4x1(mesh.Normals[vertex].Vec4(0)).Vec3()
			colors[corner] = shade(frame, material.Color, position, normal)
		}

		if !visible {
			d.stats.Culled += 1
			continue
		}

		var tri triangle
		tri.Material = material

		for corner := range 3 {
			x, y := d.toScreen(clip[corner])
			tri.Vertices[corner] = vertexOf(x, y, 0, 0, colors[corner])
			tri.Depth += clip[corner].W() / 3
		}

		queue = append(queue, tri)
		d.stats.Triangles += 1
	}

	return queue
}

func (d *Device) appendParticles(queue []triangle, frame *gfx.Frame, vertices []gfx.Vertex, indices []uint32, material *Material) []triangle {
	viewProjection := frame.Projection.Mul4(frame.View)
	focal := frame.Projection.At(1, 1)

	for idx := 0; idx+2 < len(indices); idx += 3 {
		var tri triangle
		tri.Material = material

		visible := true

		for corner := range 3 {
			vertex := indices[idx+corner]
			if int(vertex) >= len(vertices) {
				visible = false
				break
			}

			particle := vertices[vertex]

			clip := viewProjection.Mul4x1(particle.Position.Vec4(1))
			if clip.W() <= 0 {
				visible = false
				break
			}

			// billboard size in pixels
			size := particle.Size * focal / clip.W() * float32(d.height) / 2

			x, y := d.toScreen(clip)
			x += (particle.UV.X() - 0.5) * size
			y += (particle.UV.Y() - 0.5) * size

			tint := multiply(particle.Color, material.Color)
			tri.Vertices[corner] = vertexOf(x, y, particle.UV.X(), particle.UV.Y(), tint)
			tri.Depth += clip.W() / 3
		}

		if !visible {
			d.stats.Culled += 1
			continue
		}

		queue = append(queue, tri)
		d.stats.Triangles += 1
	}

	return queue
}

// toScreen maps a clip space position to pixel coordinates.
func (d *Device) toScreen(clip mgl32.Vec4) (float32, float32) {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()

	x := (ndcX*0.5 + 0.5) * float32(d.width)
	y := (0.5 - ndcY*0.5) * float32(d.height)
	return x, y
}

// Flush draws all queued triangles onto the screen.
func (d *Device) Flush(screen *ebiten.Image) {
	// painters algorithm, farthest first
	slices.SortStableFunc(d.opaque, func(a, b triangle) int {
		return cmp.Compare(b.Depth, a.Depth)
	})

	d.drawTriangles(screen, d.opaque, ebiten.BlendSourceOver)
	d.drawTriangles(screen, d.translucent, ebiten.BlendLighter)

	d.lastStats = d.stats
}

func (d *Device) drawTriangles(screen *ebiten.Image, triangles []triangle, blend ebiten.Blend) {
	for len(triangles) > 0 {
		image := triangles[0].Material.image()

		// collect a run of triangles sharing the same source image
		count := 0
		for count < len(triangles) && count*3+3 <= maxBatchVertices {
			if triangles[count].Material.image() != image {
				break
			}

			count++
		}

		d.drawBatch(screen, image, triangles[:count], blend)
		triangles = triangles[count:]
	}
}

func (d *Device) drawBatch(screen, image *ebiten.Image, triangles []triangle, blend ebiten.Blend) {
	bounds := image.Bounds()
	width := float32(bounds.Dx())
	height := float32(bounds.Dy())

	d.batchVertices = d.batchVertices[:0]
	d.batchIndices = d.batchIndices[:0]

	for _, tri := range triangles {
		for _, vertex := range tri.Vertices {
			// uv to source pixel coordinates
			vertex.SrcX = float32(bounds.Min.X) + vertex.SrcX*width
			vertex.SrcY = float32(bounds.Min.Y) + vertex.SrcY*height

			d.batchIndices = append(d.batchIndices, uint16(len(d.batchVertices)))
			d.batchVertices = append(d.batchVertices, vertex)
		}
	}

	var op ebiten.DrawTrianglesOptions
	op.Blend = blend
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	screen.DrawTriangles(d.batchVertices, d.batchIndices, image, &op)

	d.stats.Batches += 1
}

func vertexOf(x, y, u, v float32, c color.Color) ebiten.Vertex {
	r, g, b, a := c.PremultipliedValues()

	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   u,
		SrcY:   v,
		ColorR: min(r, 1),
		ColorG: min(g, 1),
		ColorB: min(b, 1),
		ColorA: min(a, 1),
	}
}

// shade computes gouraud lighting for a single vertex.
func shade(frame *gfx.Frame, base color.Color, position, normal mgl32.Vec3) color.Color {
	if normal.LenSqr() > 0 {
		normal = normal.Normalize()
	}

	dir := frame.Directional

	lambert := max(0, normal.Dot(dir.Direction.Mul(-1)))
	light := add(dir.AmbientColor, dir.DiffuseColor.Scale(lambert))

	for _, point := range frame.PointLights {
		if point.Radius <= 0 {
			continue
		}

		toLight := point.Position.Sub(position)
		distance := toLight.Len()
		if distance >= point.Radius {
			continue
		}

		attenuation := 1 - distance/point.Radius

		lambert := float32(1)
		if distance > 0 {
			lambert = max(0, normal.Dot(toLight.Mul(1/distance)))
		}

		light = add(light, point.AmbientColor.Scale(attenuation))
		light = add(light, point.DiffuseColor.Scale(attenuation*lambert))
	}

	lit := multiply(base, light)
	lit.A = base.A
	return lit
}

func add(a, b color.Color) color.Color {
	return color.RGBA(a.R+b.R, a.G+b.G, a.B+b.B, a.A)
}

func multiply(a, b color.Color) color.Color {
	return color.RGBA(a.R*b.R, a.G*b.G, a.B*b.B, a.A*b.A)
}
