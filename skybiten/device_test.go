package skybiten

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/stretchr/testify/require"
)

func testFrame() *gfx.Frame {
	return &gfx.Frame{
		View:       mgl32.Ident4(),
		Projection: mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1, 100),
		Directional: gfx.DirectionalLight{
			DiffuseColor: color.White,
			Direction:    mgl32.Vec3{0, -1, 0},
		},
	}
}

func TestDevice_Buffers(t *testing.T) {
	device := NewDevice()

	vertices, err := device.CreateVertexBuffer(8)
	require.NoError(t, err)

	indices, err := device.CreateIndexBuffer([]uint32{0, 1, 2})
	require.NoError(t, err)

	require.NotEqual(t, gfx.NoBuffer, vertices)
	require.NotEqual(t, vertices, indices)
	require.Equal(t, 2, device.BufferCount())

	_, err = device.CreateVertexBuffer(0)
	require.Error(t, err)

	_, err = device.CreateIndexBuffer(nil)
	require.Error(t, err)

	device.UploadVertices(vertices, 6, make([]gfx.Vertex, 2))
	require.Panics(t, func() { device.UploadVertices(vertices, 7, make([]gfx.Vertex, 2)) })

	device.ReleaseBuffer(vertices)
	device.ReleaseBuffer(vertices)
	require.Equal(t, 1, device.BufferCount())

	// uploads to released buffers are ignored
	device.UploadVertices(vertices, 0, make([]gfx.Vertex, 1))
}

func TestDevice_DrawMesh(t *testing.T) {
	device := NewDevice()
	device.Begin(100, 100)

	cube := Cube(1)
	material := &Material{Name: "cube", Color: color.White}

	device.DrawIndexed(gfx.DrawCall{
		Mesh:        cube,
		Material:    material,
		World:       mgl32.Translate3D(0, 0, -5),
		NormalWorld: mgl32.Ident4(),
		Frame:       testFrame(),
	})

	// behind the camera
	device.DrawIndexed(gfx.DrawCall{
		Pass:        gfx.PassTranslucent,
		Mesh:        cube,
		Material:    material,
		World:       mgl32.Translate3D(0, 0, 5),
		NormalWorld: mgl32.Ident4(),
		Frame:       testFrame(),
	})

	require.Len(t, device.opaque, 12)
	require.Empty(t, device.translucent)
	require.Equal(t, Stats{DrawCalls: 2, Triangles: 12, Culled: 12}, device.stats)

	for _, tri := range device.opaque {
		require.InDelta(t, 5, tri.Depth, 0.5)
		require.Same(t, material, tri.Material)
	}
}

func TestDevice_DrawParticles(t *testing.T) {
	device := NewDevice()
	device.Begin(100, 100)

	vertices, err := device.CreateVertexBuffer(4)
	require.NoError(t, err)

	indices, err := device.CreateIndexBuffer([]uint32{0, 1, 2, 0, 2, 3})
	require.NoError(t, err)

	quad := make([]gfx.Vertex, 4)
	for idx, uv := range []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
		quad[idx] = gfx.Vertex{
			Position: mgl32.Vec3{0, 0, -2},
			UV:       uv,
			Color:    color.RGBA(1, 0.5, 0, 0.5),
			Size:     1,
		}
	}

	device.UploadVertices(vertices, 0, quad)

	device.DrawIndexed(gfx.DrawCall{
		Pass:       gfx.PassTranslucent,
		Material:   &Material{Name: "particle", Color: color.White, Unlit: true},
		Vertices:   vertices,
		Indices:    indices,
		IndexCount: 6,
		Frame:      testFrame(),
	})

	require.Len(t, device.translucent, 2)

	// size of one at distance two fills a quarter of the screen height
	first := device.translucent[0].Vertices[0]
	require.InDelta(t, 37.5, first.DstX, 1e-3)
	require.InDelta(t, 37.5, first.DstY, 1e-3)

	third := device.translucent[0].Vertices[2]
	require.InDelta(t, 62.5, third.DstX, 1e-3)
	require.InDelta(t, 62.5, third.DstY, 1e-3)

	// premultiplied alpha
	require.InDelta(t, 0.5, first.ColorR, 1e-6)
	require.InDelta(t, 0.25, first.ColorG, 1e-6)
	require.InDelta(t, 0.5, first.ColorA, 1e-6)
}

func TestDevice_DrawOutOfRange(t *testing.T) {
	device := NewDevice()
	device.Begin(100, 100)

	vertices, _ := device.CreateVertexBuffer(4)
	indices, _ := device.CreateIndexBuffer([]uint32{0, 1, 2})

	device.DrawIndexed(gfx.DrawCall{
		Vertices:   vertices,
		Indices:    indices,
		StartIndex: 3,
		IndexCount: 3,
		Frame:      testFrame(),
	})

	device.DrawIndexed(gfx.DrawCall{
		Vertices:   gfx.Buffer(99),
		Indices:    indices,
		IndexCount: 3,
		Frame:      testFrame(),
	})

	require.Empty(t, device.opaque)
}

func TestShade(t *testing.T) {
	frame := testFrame()
	base := color.RGB(1, 0.5, 0.25)

	lit := shade(frame, base, mgl32.Vec3{}, mgl32.Vec3{0, 2, 0})
	require.Equal(t, base, lit)

	dark := shade(frame, base, mgl32.Vec3{}, mgl32.Vec3{0, -1, 0})
	require.Equal(t, color.RGBA(0, 0, 0, 1), dark)

	frame.PointLights = []gfx.PointLight{
		{DiffuseColor: color.White, Position: mgl32.Vec3{0, -1, 0}, Radius: 2},
		{DiffuseColor: color.White, Position: mgl32.Vec3{0, -1, 0}, Radius: 0},
	}

	// half way into the radius of the light below
	lit = shade(frame, color.White, mgl32.Vec3{}, mgl32.Vec3{0, -1, 0})
	require.InDelta(t, 0.5, lit.R, 1e-6)
}
