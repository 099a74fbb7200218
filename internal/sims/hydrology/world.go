package hydrology

import (
	"fmt"

	"hydromap/internal/core"
)

// World owns the cell arena and the tile lattice and advances the hydraulic
// simulation over them. The arena is sized exactly for the configured
// layout, allocated once, and never resized; pointers handed out by the
// grid stay valid for the world's whole lifetime.
type World struct {
	cfg Config

	size int // world units per side

	arena *core.Arena[Cell]
	grid  *core.Grid[Cell]

	rng  *core.RNG
	tick int
}

// New returns a hydrology world with the default layout.
func New() (*World, error) { return NewWithConfig(DefaultConfig()) }

// NewWithConfig lays out the arena and the tile lattice from the
// configuration. Every tile must receive backing cells; a layout the arena
// cannot satisfy is reported as an error rather than leaving dead tiles
// behind.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.TileSize <= 0 || cfg.MapSize <= 0 {
		return nil, fmt.Errorf("hydrology: invalid lattice: %d tiles of %d units", cfg.MapSize, cfg.TileSize)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.TileSize%cfg.Scale != 0 {
		return nil, fmt.Errorf("hydrology: tile size %d not divisible by scale %d", cfg.TileSize, cfg.Scale)
	}

	tileRes := core.Pt(cfg.TileSize, cfg.TileSize)
	dim := core.Pt(cfg.MapSize, cfg.MapSize)
	side := cfg.TileSize / cfg.Scale
	capacity := cfg.MapSize * cfg.MapSize * side * side

	w := &World{
		cfg:   cfg,
		size:  cfg.MapSize * cfg.TileSize,
		arena: core.NewArena[Cell](capacity),
		grid:  core.NewGrid[Cell](tileRes, dim),
		rng:   core.NewRNG(cfg.Seed),
	}

	for i := 0; i < cfg.MapSize; i++ {
		for j := 0; j < cfg.MapSize; j++ {
			mesh := core.Flatten(core.Pt(i, j), dim)
			tile := core.NewTile(w.arena, core.Pt(i*cfg.TileSize, j*cfg.TileSize), tileRes, cfg.Scale, mesh)
			if err := w.grid.Add(tile); err != nil {
				return nil, fmt.Errorf("hydrology: laying out tile %d: %w", mesh, err)
			}
		}
	}

	w.seedTerrain(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "hydrology" }

// Size reports the world dimensions in world units.
func (w *World) Size() core.Size { return core.Size{W: w.size, H: w.size} }

// Config returns the layout configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the tile lattice.
func (w *World) Grid() *core.Grid[Cell] { return w.grid }

// Layout returns the render-facing description of every tile.
func (w *World) Layout() []core.TileInfo { return w.grid.Layout() }

// Field exposes the full interleaved cell storage in arena order.
func (w *World) Field() []Cell { return w.arena.Cells() }

// Tick reports how many steps have run since the last reset.
func (w *World) Tick() int { return w.tick }

// Reset reseeds the terrain and clears all water state.
func (w *World) Reset(seed int64) {
	w.rng = core.NewRNG(seed)
	w.seedTerrain(seed)
	w.tick = 0
}

// seedTerrain fills the height field from fBm value noise and zeroes the
// water fields.
func (w *World) seedTerrain(seed int64) {
	p := w.cfg.Params
	noise := newValueNoise(seed)
	freq := p.NoiseFrequency
	if freq <= 0 {
		freq = 1
	}

	tiles := w.grid.Tiles()
	for ti := range tiles {
		t := &tiles[ti]
		for i := 0; i < t.Cells.Res.X; i++ {
			for j := 0; j < t.Cells.Res.Y; j++ {
				world := t.Pos.Add(core.Pt(i, j).Mul(t.Scale))
				nx := float64(world.X) / float64(w.size) * freq
				ny := float64(world.Y) / float64(w.size) * freq
				c := t.Cells.Get(core.Pt(i, j))
				*c = Cell{Height: float32(noise.fbm(nx, ny, p.NoiseOctaves))}
			}
		}
	}
}

// Stats summarizes the current field for headless runs: the height range
// and the total discharge across the map.
func (w *World) Stats() (minH, maxH, discharge float64) {
	cells := w.arena.Cells()
	if len(cells) == 0 {
		return 0, 0, 0
	}
	minH, maxH = float64(cells[0].Height), float64(cells[0].Height)
	for i := range cells {
		h := float64(cells[i].Height)
		if h < minH {
			minH = h
		}
		if h > maxH {
			maxH = h
		}
		discharge += float64(cells[i].Discharge)
	}
	return minH, maxH, discharge
}

func init() {
	core.Register("hydrology", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
