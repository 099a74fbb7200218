package hydrology

import (
	"math"

	"hydromap/internal/core"
)

// valueNoise is a seeded lattice value-noise source. Terrain is seeded with
// a few fBm octaves of it; gradient noise would be overkill for a heightmap
// that erosion immediately reworks.
type valueNoise struct {
	perm [512]uint8
}

func newValueNoise(seed int64) *valueNoise {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng := core.NewRNG(seed).Source()
	rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	n := &valueNoise{}
	for i := range n.perm {
		n.perm[i] = p[i&255]
	}
	return n
}

// lattice returns the hashed value at an integer lattice point, in [0, 1].
func (n *valueNoise) lattice(x, y int) float64 {
	h := n.perm[(int(n.perm[x&255])+y)&255]
	return float64(h) / 255
}

// at samples the noise at a continuous point, in [0, 1].
func (n *valueNoise) at(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	x0, y0 := int(fx), int(fy)
	tx, ty := fade(x-fx), fade(y-fy)

	a := n.lattice(x0, y0)
	b := n.lattice(x0+1, y0)
	c := n.lattice(x0, y0+1)
	d := n.lattice(x0+1, y0+1)
	return lerp(lerp(a, b, tx), lerp(c, d, tx), ty)
}

// fbm layers octaves of value noise, normalized back into [0, 1].
func (n *valueNoise) fbm(x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	sum, amp, freq, norm := 0.0, 1.0, 1.0, 0.0
	for o := 0; o < octaves; o++ {
		sum += amp * n.at(x*freq, y*freq)
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

func fade(t float64) float64 { return t * t * (3 - 2*t) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
