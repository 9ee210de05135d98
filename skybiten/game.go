package skybiten

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/oliverbestmann/skyrail"
	"github.com/oliverbestmann/skyrail/color"
	"github.com/oliverbestmann/skyrail/gametime"
)

var background = color.RGB(0.02, 0.02, 0.05)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool
}

// DefaultWindowConfig returns a resizable 1280x720 window.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:  "skyrail",
		Width:  1280,
		Height: 720,
	}
}

// NewAssets creates the meshes and materials of a level.
func NewAssets(device *Device) skyrail.Assets {
	return skyrail.Assets{
		Device: device,

		PlayerMesh:   Cube(0.8),
		BulletMesh:   Sphere(1, 6, 8),
		TargetMesh:   Sphere(1, 10, 16),
		ReticuleMesh: Ring(0.3, 0.4, 24),

		PlayerMaterial: &Material{Name: "ship", Color: color.RGB(0.6, 0.7, 0.9)},
		TargetMaterial: &Material{Name: "drone", Color: color.RGB(0.9, 0.3, 0.2)},

		BulletMaterial: &Material{
			Name:  "laser",
			Color: color.RGB(0.4, 1, 0.4),
			Unlit: true,
		},

		ReticuleMaterial: &Material{
			Name:  "reticule",
			Color: color.RGB(1, 0.9, 0.2).WithAlpha(0.8),
			Unlit: true,
		},

		ParticleMaterial: &Material{
			Name:  "particle",
			Color: color.White,
			Unlit: true,
			Image: glowImage,
		},
	}
}

// Game runs a level inside an ebiten window.
type Game struct {
	level    *skyrail.Level
	device   *Device
	bindings Bindings
	keys     KeyState

	clock *gametime.Clock
	vt    gametime.VirtualTime

	stats     gametime.FrameStats
	showStats bool

	width, height int

	// set to a non nil value to exit the game
	exit error
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(config skyrail.Config, window WindowConfig) (*Game, error) {
	device := NewDevice()

	level, err := skyrail.NewLevel(config, NewAssets(device), window.Width, window.Height)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	return &Game{
		level:    level,
		device:   device,
		bindings: DefaultBindings(),
		keys:     Keys{},
		clock:    gametime.NewClock(nil),
		vt:       gametime.NewVirtualTime(),
		width:    window.Width,
		height:   window.Height,
	}, nil
}

func (g *Game) Level() *skyrail.Level {
	return g.level
}

func (g *Game) Update() error {
	if g.exit != nil {
		return g.exit
	}

	if g.keys.IsJustPressed(ebiten.KeyEscape) {
		g.exit = ebiten.Termination
		return g.exit
	}

	if g.keys.IsJustPressed(ebiten.KeyF3) {
		g.showStats = !g.showStats
	}

	if g.keys.IsJustPressed(ebiten.KeyP) {
		g.togglePause()
	}

	g.clock.Tick(&g.vt)

	intents := g.bindings.Intents(g.keys)

	gametime.Measure(&g.stats.Update, func() {
		g.level.Update(g.vt, intents)
	})

	return nil
}

func (g *Game) togglePause() {
	if g.vt.Scale == 0 {
		g.vt.Scale = 1
	} else {
		g.vt.Scale = 0
	}

	slog.Info("Pause toggled", slog.Bool("paused", g.vt.Scale == 0))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	bounds := screen.Bounds()

	gametime.Measure(&g.stats.Draw, func() {
		g.device.Begin(bounds.Dx(), bounds.Dy())
		g.level.Draw()
		g.device.Flush(screen)
	})

	text := fmt.Sprintf("score %d  laps %d  charge %3.0f%%",
		g.level.Score(), g.level.Laps(), 100*g.level.FireControl().Charge())
	if g.vt.Scale == 0 {
		text += "  [paused]"
	}

	ebitenutil.DebugPrintAt(screen, text, 16, 16)

	if g.showStats {
		g.drawStats(screen)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	rows := []string{
		formatTimings("update", g.stats.Update),
		formatTimings("draw", g.stats.Draw),
	}

	stats := g.device.Stats()
	rows = append(rows, fmt.Sprintf(
		"calls=%d, triangles=%d, culled=%d, batches=%d, buffers=%d, tps=%.1f",
		stats.DrawCalls, stats.Triangles, stats.Culled, stats.Batches,
		g.device.BufferCount(), ebiten.ActualTPS(),
	))

	for row, text := range rows {
		ebitenutil.DebugPrintAt(screen, text, 16, 40+16*row)
	}
}

func formatTimings(name string, t gametime.Timings) string {
	return fmt.Sprintf("%-6s runs=%5d, latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms",
		name,
		t.Count,
		millis(t.Latest),
		millis(t.Min),
		millis(t.Max),
		millis(t.MovingAverage),
	)
}

func millis(d time.Duration) float64 {
	return d.Seconds() * 1000
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.level.Resize(outsideWidth, outsideHeight)
	}

	return outsideWidth, outsideHeight
}

// Run opens the window and runs the game until it is closed.
// The level is released afterwards.
func Run(game *Game, win WindowConfig) error {
	defer game.level.Release()

	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	err := ebiten.RunGameWithOptions(game, &options)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}

	return err
}
