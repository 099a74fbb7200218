package hydrology

import (
	"math"
	"testing"

	"hydromap/internal/core"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TileSize = 16
	cfg.MapSize = 2
	cfg.Scale = 2
	cfg.Params.Drops = 64
	return cfg
}

func TestLayoutMatchesConfig(t *testing.T) {
	w, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	if w.Grid().Len() != 4 {
		t.Fatalf("grid has %d tiles, want 4", w.Grid().Len())
	}
	if got, want := len(w.Field()), 4*8*8; got != want {
		t.Fatalf("field has %d cells, want %d", got, want)
	}
	min, max := w.Grid().Bounds()
	if min != core.Pt(0, 0) || max != core.Pt(32, 32) {
		t.Fatalf("bounds = [%v, %v), want [(0,0), (32,32))", min, max)
	}
	for i, info := range w.Layout() {
		if info.Mesh != i {
			t.Fatalf("layout[%d].Mesh = %d, want dense handles in add order", i, info.Mesh)
		}
		if info.Local != core.Pt(8, 8) {
			t.Fatalf("layout[%d].Local = %v, want (8,8)", i, info.Local)
		}
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := testConfig()
	cfg.TileSize = 0
	if _, err := NewWithConfig(cfg); err == nil {
		t.Fatal("zero tile size should be rejected")
	}

	cfg = testConfig()
	cfg.TileSize = 17
	if _, err := NewWithConfig(cfg); err == nil {
		t.Fatal("tile size not divisible by scale should be rejected")
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	a.Reset(5)
	b.Reset(5)
	fa, fb := a.Field(), b.Field()
	for i := range fa {
		if fa[i] != fb[i] {
			t.Fatalf("cell %d differs across identically seeded worlds", i)
		}
	}

	b.Reset(6)
	same := true
	for i := range fa {
		if fa[i] != fb[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestStepTracksAndFolds(t *testing.T) {
	w, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	w.Reset(11)
	w.Step()
	w.Step()

	var discharge float64
	for _, c := range w.Field() {
		if c.DischargeTrack != 0 || c.MomentumXTrack != 0 || c.MomentumYTrack != 0 {
			t.Fatal("tracked accumulators must be cleared after a step")
		}
		if math.IsNaN(float64(c.Height)) || math.IsInf(float64(c.Height), 0) {
			t.Fatal("step produced a non-finite height")
		}
		discharge += float64(c.Discharge)
	}
	if discharge <= 0 {
		t.Fatal("two steps of rain left no discharge anywhere")
	}
	if w.Tick() != 2 {
		t.Fatalf("tick = %d, want 2", w.Tick())
	}
}

func TestQueriesOutsideMapReadZero(t *testing.T) {
	w, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []core.P{core.Pt(-1, -1), core.Pt(32, 0), core.Pt(0, 32)} {
		if !w.OOB(p) {
			t.Fatalf("oob(%v) = false", p)
		}
		if w.Height(p) != 0 || w.Discharge(p) != 0 {
			t.Fatalf("queries at %v should read zero outside the map", p)
		}
	}
}

func TestDischargeSmoothing(t *testing.T) {
	w, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	p := core.Pt(10, 10)
	c := w.Grid().Get(p).Get(p)
	if c == nil {
		t.Fatal("interior cell lookup failed")
	}
	c.Discharge = 2.0

	want := float32(math.Erf(0.4 * 2.0))
	if got := w.Discharge(p); got != want {
		t.Fatalf("discharge(%v) = %v, want erf-smoothed %v", p, got, want)
	}
}

func TestNormalOnFlatTerrain(t *testing.T) {
	w, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	cells := w.Field()
	for i := range cells {
		cells[i] = Cell{Height: 0.5}
	}

	nx, ny, nz := w.Normal(core.Pt(16, 16))
	if nx != 0 || nz != 0 {
		t.Fatalf("flat terrain normal = (%v, %v, %v), want no horizontal component", nx, ny, nz)
	}
	if math.Abs(ny-1) > 1e-12 {
		t.Fatalf("flat terrain normal y = %v, want 1", ny)
	}
}

func TestNormalTiltsAgainstSlope(t *testing.T) {
	w, err := NewWithConfig(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	tiles := w.Grid().Tiles()
	for ti := range tiles {
		tile := &tiles[ti]
		for i := 0; i < tile.Cells.Res.X; i++ {
			for j := 0; j < tile.Cells.Res.Y; j++ {
				world := tile.Pos.Add(core.Pt(i, j).Mul(tile.Scale))
				tile.Cells.Get(core.Pt(i, j)).Height = float32(world.X) * 0.01
			}
		}
	}

	nx, ny, _ := w.Normal(core.Pt(16, 16))
	if nx >= 0 {
		t.Fatalf("normal x = %v on terrain rising with x, want negative", nx)
	}
	if ny <= 0 {
		t.Fatalf("normal y = %v, want positive", ny)
	}
}
