package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"hydromap/internal/sims/hydrology"
)

func testWorld(t *testing.T, seed int64) *hydrology.World {
	t.Helper()
	cfg := hydrology.DefaultConfig()
	cfg.TileSize = 8
	cfg.MapSize = 2
	cfg.Scale = 2
	cfg.Seed = seed
	cfg.Params.Drops = 32
	w, err := hydrology.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestRoundTrip(t *testing.T) {
	src := testWorld(t, 1)
	src.Step()
	src.Step()

	var buf bytes.Buffer
	if err := Write(&buf, src); err != nil {
		t.Fatal(err)
	}

	dst := testWorld(t, 2)
	if err := Read(&buf, dst); err != nil {
		t.Fatal(err)
	}

	fs, fd := src.Field(), dst.Field()
	if len(fs) != len(fd) {
		t.Fatalf("field lengths differ: %d vs %d", len(fs), len(fd))
	}
	for i := range fs {
		if fs[i] != fd[i] {
			t.Fatalf("cell %d differs after round trip", i)
		}
	}
}

func TestReadRejectsMismatchedLayout(t *testing.T) {
	src := testWorld(t, 1)

	var buf bytes.Buffer
	if err := Write(&buf, src); err != nil {
		t.Fatal(err)
	}

	cfg := hydrology.DefaultConfig()
	cfg.TileSize = 16
	cfg.MapSize = 2
	cfg.Scale = 2
	dst, err := hydrology.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := Read(&buf, dst); err == nil {
		t.Fatal("reading into a world with a different layout must fail")
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	dst := testWorld(t, 1)
	if err := Read(strings.NewReader("this is not a snapshot"), dst); err == nil {
		t.Fatal("garbage input must fail")
	}
}
