package render

import (
	"image/color"

	"hydromap/internal/core"
)

// Surface is the view of the world the painter consumes: the tile layout
// for region bookkeeping plus the query layer for shading. The painter only
// reads; it never calls back into the simulation.
type Surface interface {
	Layout() []core.TileInfo
	Height(p core.P) float32
	Discharge(p core.P) float32
	Normal(p core.P) (x, y, z float64)
}

var (
	flatColor  = color.RGBA{R: 84, G: 140, B: 47, A: 255}
	steepColor = color.RGBA{R: 120, G: 112, B: 96, A: 255}
	waterColor = color.RGBA{R: 48, G: 90, B: 158, A: 255}
)

// steepness is the vertical normal component below which terrain shades as
// bare rock.
const steepness = 0.8

// shadeRegion rasterizes one tile region into buf, 4 bytes per cell. Pixel
// rows run along the world Y axis so the buffer can be uploaded to an image
// of Local.X by Local.Y pixels directly.
func shadeRegion(buf []byte, s Surface, info core.TileInfo) {
	for j := 0; j < info.Local.Y; j++ {
		for i := 0; i < info.Local.X; i++ {
			world := info.Pos.Add(core.Pt(i, j).Mul(info.Scale))

			col := flatColor
			if _, ny, _ := s.Normal(world); ny < steepness {
				col = steepColor
			}
			col = mix(col, waterColor, float64(s.Discharge(world)))

			base := 4 * (j*info.Local.X + i)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// mix linearly blends from a to b by t, clamped to [0, 1].
func mix(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	blend := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)))
	}
	return color.RGBA{
		R: blend(a.R, b.R),
		G: blend(a.G, b.G),
		B: blend(a.B, b.B),
		A: blend(a.A, b.A),
	}
}
