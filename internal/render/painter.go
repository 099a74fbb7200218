//go:build ebiten

package render

import (
	"hydromap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// TilePainter keeps one RGBA image per tile region, addressed by the tile's
// mesh handle, and regenerates only the regions asked of it.
type TilePainter struct {
	regions []paintRegion
}

type paintRegion struct {
	info core.TileInfo
	img  *ebiten.Image
	buf  []byte
}

// NewTilePainter allocates an image and a staging buffer for every region
// in the surface layout. Mesh handles index the painter's region table, so
// they must be unique and dense over [0, len(layout)).
func NewTilePainter(s Surface) *TilePainter {
	layout := s.Layout()
	tp := &TilePainter{regions: make([]paintRegion, len(layout))}
	for _, info := range layout {
		if info.Mesh < 0 || info.Mesh >= len(tp.regions) {
			continue
		}
		tp.regions[info.Mesh] = paintRegion{
			info: info,
			img:  ebiten.NewImage(info.Local.X, info.Local.Y),
			buf:  make([]byte, 4*info.Local.X*info.Local.Y),
		}
	}
	return tp
}

// Redraw regenerates the region addressed by the mesh handle.
func (tp *TilePainter) Redraw(s Surface, mesh int) {
	if mesh < 0 || mesh >= len(tp.regions) {
		return
	}
	r := &tp.regions[mesh]
	if r.img == nil {
		return
	}
	shadeRegion(r.buf, s, r.info)
	r.img.WritePixels(r.buf)
}

// RedrawAll regenerates every region.
func (tp *TilePainter) RedrawAll(s Surface) {
	for mesh := range tp.regions {
		tp.Redraw(s, mesh)
	}
}

// Draw blits every region into dst. scale is screen pixels per world unit;
// offX/offY pan the view in world units.
func (tp *TilePainter) Draw(dst *ebiten.Image, scale, offX, offY float64) {
	for i := range tp.regions {
		r := &tp.regions[i]
		if r.img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale*float64(r.info.Scale), scale*float64(r.info.Scale))
		op.GeoM.Translate((float64(r.info.Pos.X)-offX)*scale, (float64(r.info.Pos.Y)-offY)*scale)
		dst.DrawImage(r.img, op)
	}
}
