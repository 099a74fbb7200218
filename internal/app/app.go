//go:build ebiten

package app

import (
	"log"
	"time"

	"hydromap/internal/render"
	"hydromap/internal/snapshot"
	"hydromap/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// panSpeed is the view pan rate in world units per frame.
const panSpeed = 8.0

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	world   World
	painter *render.TilePainter
	hud     *ui.HUD

	scale float64
	offX  float64
	offY  float64

	paused   bool
	tickOnce bool
	seed     int64
	snapPath string
}

// New constructs a Game for the provided world.
func New(world World, cfg *Config) *Game {
	scale := float64(cfg.Scale)
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		world:    world,
		painter:  render.NewTilePainter(world),
		hud:      ui.NewHUD(world),
		scale:    scale,
		seed:     cfg.Seed,
		snapPath: cfg.Snapshot,
	}
	g.painter.RedrawAll(world)
	return g
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
	g.painter.RedrawAll(g.world)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if err := snapshot.Save(g.snapPath, g.world); err != nil {
			log.Printf("snapshot: %v", err)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.offX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.offX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.offY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.offY += panSpeed
	}

	if g.hud != nil {
		g.hud.Update()
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
		g.painter.RedrawAll(g.world)
	}
	return nil
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale, g.offX, g.offY)
	if g.hud != nil {
		g.hud.Draw(screen, g.paused, g.seed)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return int(float64(s.W) * g.scale), int(float64(s.H) * g.scale)
}
