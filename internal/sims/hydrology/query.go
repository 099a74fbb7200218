package hydrology

import (
	"math"

	"hydromap/internal/core"
)

// The query layer is built strictly on the Tile/Grid Get/OOB contract, so
// it works unchanged over any mix of tile scales. Every lookup is
// nil-checked; points outside the map read as zero.

// OOB reports whether the world point falls outside the map.
func (w *World) OOB(p core.P) bool { return w.grid.OOB(p) }

// Height returns the terrain height at the world point, or 0 outside the map.
func (w *World) Height(p core.P) float32 {
	t := w.grid.Get(p)
	if t == nil {
		return 0
	}
	c := t.Get(p)
	if c == nil {
		return 0
	}
	return c.Height
}

// Discharge returns the smoothed water discharge at the world point,
// squashed into [0, 1) with an error function.
func (w *World) Discharge(p core.P) float32 {
	t := w.grid.Get(p)
	if t == nil {
		return 0
	}
	c := t.Get(p)
	if c == nil {
		return 0
	}
	return float32(math.Erf(0.4 * float64(c.Discharge)))
}

// Normal computes a finite-difference surface normal at the world point by
// accumulating the cross products of up to four neighboring height planes,
// sampled one cell scale apart. Y is the vertical axis; heights are
// exaggerated by MapScale. The zero vector is returned when no neighbor
// plane is available.
func (w *World) Normal(p core.P) (nx, ny, nz float64) {
	k := w.cfg.Scale
	m := w.cfg.Params.MapScale
	h0 := float64(w.Height(p)) * m
	dx := func(q core.P) float64 { return float64(w.Height(q))*m - h0 }

	if !w.OOB(p.Add(core.Pt(k, k))) {
		dxp, dyp := dx(p.Add(core.Pt(k, 0))), dx(p.Add(core.Pt(0, k)))
		nx -= dxp
		ny++
		nz -= dyp
	}
	if !w.OOB(p.Sub(core.Pt(k, k))) {
		dxm, dym := dx(p.Sub(core.Pt(k, 0))), dx(p.Sub(core.Pt(0, k)))
		nx += dxm
		ny++
		nz += dym
	}
	if !w.OOB(p.Add(core.Pt(k, -k))) {
		dxp, dym := dx(p.Add(core.Pt(k, 0))), dx(p.Sub(core.Pt(0, k)))
		nx -= dxp
		ny++
		nz += dym
	}
	if !w.OOB(p.Add(core.Pt(-k, k))) {
		dxm, dyp := dx(p.Sub(core.Pt(k, 0))), dx(p.Add(core.Pt(0, k)))
		nx += dxm
		ny++
		nz -= dyp
	}

	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if l > 0 {
		nx, ny, nz = nx/l, ny/l, nz/l
	}
	return nx, ny, nz
}
