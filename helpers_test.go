package skyrail

import (
	"testing"
	"time"

	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gfx/gfxmock"
	"go.uber.org/mock/gomock"
)

type sphereMesh float64

func (s sphereMesh) Radius() float64 {
	return float64(s)
}

type material string

func (m material) MaterialName() string {
	return string(m)
}

// newDevice returns a mock device that hands out increasing buffer handles
// and accepts any upload, draw and release.
func newDevice(t *testing.T) *gfxmock.MockDevice {
	ctrl := gomock.NewController(t)
	device := gfxmock.NewMockDevice(ctrl)

	var next gfx.Buffer

	device.EXPECT().
		CreateVertexBuffer(gomock.Any()).
		DoAndReturn(func(int) (gfx.Buffer, error) {
			next++
			return next, nil
		}).
		AnyTimes()

	device.EXPECT().
		CreateIndexBuffer(gomock.Any()).
		DoAndReturn(func([]uint32) (gfx.Buffer, error) {
			next++
			return next, nil
		}).
		AnyTimes()

	device.EXPECT().UploadVertices(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	device.EXPECT().ReleaseBuffer(gomock.Any()).AnyTimes()

	return device
}

// step advances vt by dt.
func step(vt *gametime.VirtualTime, dt time.Duration) gametime.VirtualTime {
	vt.Advance(dt)
	return *vt
}
