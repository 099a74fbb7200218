package core

import "fmt"

// Grid is a fixed uniform lattice of tiles covering the half-open bounding
// rectangle [Min, Max). Tiles are added once during setup in row-major
// lattice order; lookup then resolves a world point to its owning tile by
// integer division instead of a general point-location search.
type Grid[T any] struct {
	tileRes P // world extent of every tile
	dim     P // tile count per axis
	tiles   []Tile[T]
	min     P
	max     P
}

// NewGrid constructs an empty grid for a lattice of dim.X by dim.Y tiles,
// each spanning tileRes world units.
func NewGrid[T any](tileRes, dim P) *Grid[T] {
	n := dim.X * dim.Y
	if n < 0 {
		n = 0
	}
	return &Grid[T]{tileRes: tileRes, dim: dim, tiles: make([]Tile[T], 0, n)}
}

// Add appends the tile and extends the grid bounds to cover it. A tile
// whose slice has no backing storage is rejected, so a failed arena
// allocation aborts setup instead of leaving behind a dead tile that
// answers every lookup with nil.
func (g *Grid[T]) Add(t Tile[T]) error {
	if t.Cells.Buf.IsNull() {
		return fmt.Errorf("grid: tile at (%d,%d) has no backing cells", t.Pos.X, t.Pos.Y)
	}
	if len(g.tiles) == 0 {
		g.min, g.max = t.Pos, t.Pos.Add(t.Res)
	} else {
		g.min = MinP(g.min, t.Pos)
		g.max = MaxP(g.max, t.Pos.Add(t.Res))
	}
	g.tiles = append(g.tiles, t)
	return nil
}

// OOB reports whether the world point falls outside [Min, Max).
func (g *Grid[T]) OOB(p P) bool {
	return p.X < g.min.X || p.Y < g.min.Y || p.X >= g.max.X || p.Y >= g.max.Y
}

// Get resolves the world point to its owning tile, or nil when the point is
// outside the grid. Resolution trusts the uniform lattice: the point is
// divided by the per-tile extent and flattened over the per-axis tile
// count. No secondary containment check is made, so a non-uniform tile
// arrangement would silently resolve to the wrong tile.
func (g *Grid[T]) Get(p P) *Tile[T] {
	if len(g.tiles) == 0 || g.OOB(p) {
		return nil
	}
	q := Pt(FloorDiv(p.X-g.min.X, g.tileRes.X), FloorDiv(p.Y-g.min.Y, g.tileRes.Y))
	i := Flatten(q, g.dim)
	if i < 0 || i >= len(g.tiles) {
		return nil
	}
	return &g.tiles[i]
}

// Len reports the number of tiles added.
func (g *Grid[T]) Len() int { return len(g.tiles) }

// Bounds returns the accumulated [min, max) rectangle.
func (g *Grid[T]) Bounds() (min, max P) { return g.min, g.max }

// Tiles exposes the tile collection. The slice must not be appended to by
// callers; after setup the layout is fixed.
func (g *Grid[T]) Tiles() []Tile[T] { return g.tiles }

// Layout returns the render-facing description of every tile in add order.
func (g *Grid[T]) Layout() []TileInfo {
	infos := make([]TileInfo, len(g.tiles))
	for i := range g.tiles {
		infos[i] = g.tiles[i].Info()
	}
	return infos
}
