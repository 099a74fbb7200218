package hydrology

import (
	"math"

	"hydromap/internal/core"
)

// Step advances the world by one tick: rain drops descend the height field,
// eroding and depositing as they go, then the tracked discharge and
// momentum are folded into the persistent fields.
func (w *World) Step() {
	for n := 0; n < w.cfg.Params.Drops; n++ {
		w.splash()
	}
	w.fold()
	w.tick++
}

// splash spawns one rain drop at a random cell and walks it downhill until
// it evaporates, settles, or leaves the map.
func (w *World) splash() {
	p := w.cfg.Params

	x := float64(w.rng.IntN(w.size)) + 0.5
	y := float64(w.rng.IntN(w.size)) + 0.5
	sx, sy := 0.0, 0.0
	volume, sediment := 1.0, 0.0
	step := float64(w.cfg.Scale)

	for age := 0; age < p.MaxAge; age++ {
		ip := core.Pt(int(math.Floor(x)), int(math.Floor(y)))
		t := w.grid.Get(ip)
		if t == nil {
			return
		}
		c := t.Get(ip)
		if c == nil {
			return
		}

		c.DischargeTrack += float32(volume)
		c.MomentumXTrack += float32(volume * sx)
		c.MomentumYTrack += float32(volume * sy)

		nx, _, nz := w.Normal(ip)
		sx = (1 - p.Friction) * (sx + p.Gravity*nx)
		sy = (1 - p.Friction) * (sy + p.Gravity*nz)
		sl := math.Hypot(sx, sy)
		if sl < 1e-8 {
			// settled in a pit: leave the remaining load behind
			c.Height += float32(sediment)
			return
		}

		// advance roughly one cell along the flow direction
		x += step * sx / sl
		y += step * sy / sl
		np := core.Pt(int(math.Floor(x)), int(math.Floor(y)))
		if w.grid.OOB(np) {
			return
		}

		// exchange sediment against the drop's carrying capacity
		drop := float64(c.Height) - float64(w.Height(np))
		capacity := volume * sl * drop * p.Entrainment
		if capacity < 0 {
			capacity = 0
		}
		cdiff := p.Deposition * (capacity - sediment)
		sediment += cdiff
		c.Height -= float32(cdiff)

		volume *= 1 - p.Evaporation
		if volume < p.MinVolume {
			c.Height += float32(sediment)
			return
		}
	}
}

// fold blends the tracked accumulators into the persistent fields with an
// exponential moving average and clears them for the next step.
func (w *World) fold() {
	lr := float32(w.cfg.Params.LRate)
	cells := w.arena.Cells()
	for i := range cells {
		c := &cells[i]
		c.Discharge = (1-lr)*c.Discharge + lr*c.DischargeTrack
		c.MomentumX = (1-lr)*c.MomentumX + lr*c.MomentumXTrack
		c.MomentumY = (1-lr)*c.MomentumY + lr*c.MomentumYTrack
		c.DischargeTrack = 0
		c.MomentumXTrack = 0
		c.MomentumYTrack = 0
	}
}
