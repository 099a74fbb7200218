package core

// Tile anchors a Slice at an absolute world origin. Scale is the number of
// world units one local cell spans along each axis, which lets coarse and
// fine tiles share a single addressing scheme. Mesh is an opaque handle to
// externally-owned render geometry; the core stores it verbatim and never
// interprets it.
type Tile[T any] struct {
	Pos   P // world origin
	Res   P // absolute world extent
	Scale int
	Mesh  int
	Cells Slice[T]
}

// TileInfo is the render-facing description of a tile: placement, cell
// resolution, scale, and the mesh handle. Render code uses it to decide
// which geometry region to regenerate and at what world offset and scale.
type TileInfo struct {
	Pos   P
	Res   P // absolute world extent
	Local P // cell resolution, Res / Scale
	Scale int
	Mesh  int
}

// NewTile cuts a Res/Scale resolution slice for the tile out of the arena.
// The returned tile has a null backing when the arena could not satisfy the
// request; Grid.Add rejects such tiles.
func NewTile[T any](a *Arena[T], pos, res P, scale, mesh int) Tile[T] {
	if scale < 1 {
		scale = 1
	}
	local := res.DivFloor(scale)
	return Tile[T]{
		Pos:   pos,
		Res:   res,
		Scale: scale,
		Mesh:  mesh,
		Cells: Slice[T]{Buf: a.Alloc(local.X * local.Y), Res: local},
	}
}

// local maps a world point into the tile's cell coordinates.
func (t *Tile[T]) local(world P) P {
	return world.Sub(t.Pos).DivFloor(t.Scale)
}

// Get returns a pointer to the cell covering the world point, or nil when
// the point lies outside the tile or the tile has no backing.
func (t *Tile[T]) Get(world P) *T { return t.Cells.Get(t.local(world)) }

// OOB reports whether the world point falls outside the tile.
func (t *Tile[T]) OOB(world P) bool { return t.Cells.OOB(t.local(world)) }

// Info returns the tile's render-facing description.
func (t *Tile[T]) Info() TileInfo {
	return TileInfo{Pos: t.Pos, Res: t.Res, Local: t.Cells.Res, Scale: t.Scale, Mesh: t.Mesh}
}
