//go:build ebiten

package ui

import (
	"fmt"

	"hydromap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD prints the viewer status line in the top-left corner.
type HUD struct {
	sim     core.Sim
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Update handles HUD input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status line.
func (h *HUD) Draw(screen *ebiten.Image, paused bool, seed int64) {
	if !h.visible {
		return
	}
	msg := fmt.Sprintf("%s  seed %d", h.sim.Name(), seed)
	if ticker, ok := h.sim.(interface{ Tick() int }); ok {
		msg = fmt.Sprintf("%s  tick %d", msg, ticker.Tick())
	}
	if paused {
		msg += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, msg)
}
