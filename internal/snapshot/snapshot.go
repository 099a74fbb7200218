// Package snapshot persists the full cell field of a hydrology world as an
// s2-compressed little-endian binary stream.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"hydromap/internal/sims/hydrology"

	"github.com/klauspost/compress/s2"
)

// World is the slice of the hydrology world the codec needs.
type World interface {
	Config() hydrology.Config
	Field() []hydrology.Cell
}

var magic = [4]byte{'H', 'Y', 'D', 'R'}

const version = 1

type header struct {
	Magic    [4]byte
	Version  uint32
	TileSize int32
	MapSize  int32
	Scale    int32
	Seed     int64
}

// Write encodes the world's layout header and cell field into dst.
func Write(dst io.Writer, w World) error {
	cfg := w.Config()
	h := header{
		Magic:    magic,
		Version:  version,
		TileSize: int32(cfg.TileSize),
		MapSize:  int32(cfg.MapSize),
		Scale:    int32(cfg.Scale),
		Seed:     cfg.Seed,
	}

	zw := s2.NewWriter(dst)
	if err := binary.Write(zw, binary.LittleEndian, h); err != nil {
		zw.Close()
		return fmt.Errorf("snapshot: writing header: %w", err)
	}
	if err := binary.Write(zw, binary.LittleEndian, w.Field()); err != nil {
		zw.Close()
		return fmt.Errorf("snapshot: writing cells: %w", err)
	}
	return zw.Close()
}

// Read decodes a stream produced by Write into the world's cell field. The
// stored lattice layout must match the world's configured layout.
func Read(src io.Reader, w World) error {
	zr := s2.NewReader(src)

	var h header
	if err := binary.Read(zr, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("snapshot: reading header: %w", err)
	}
	if h.Magic != magic {
		return fmt.Errorf("snapshot: bad magic %q", h.Magic)
	}
	if h.Version != version {
		return fmt.Errorf("snapshot: unsupported version %d", h.Version)
	}

	cfg := w.Config()
	if int(h.TileSize) != cfg.TileSize || int(h.MapSize) != cfg.MapSize || int(h.Scale) != cfg.Scale {
		return fmt.Errorf("snapshot: stored layout %dx%d/%d does not match world %dx%d/%d",
			h.MapSize, h.TileSize, h.Scale, cfg.MapSize, cfg.TileSize, cfg.Scale)
	}

	if err := binary.Read(zr, binary.LittleEndian, w.Field()); err != nil {
		return fmt.Errorf("snapshot: reading cells: %w", err)
	}
	return nil
}

// Save writes the world's snapshot to a file at path.
func Save(path string, w World) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Write(f, w); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load replaces the world's cell field with the snapshot at path.
func Load(path string, w World) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	return Read(f, w)
}
