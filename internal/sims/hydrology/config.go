package hydrology

import "strconv"

// Params holds tunable rates for the hydraulic step.
type Params struct {
	MapScale float64 // vertical exaggeration applied to heights

	Drops     int     // rain drops spawned per step
	MaxAge    int     // descent steps before a drop is retired
	MinVolume float64 // drop volume below which a drop is retired

	Evaporation float64 // fractional volume loss per descent step
	Deposition  float64 // sediment exchange rate toward capacity
	Entrainment float64 // capacity multiplier from speed and volume
	Gravity     float64 // downslope acceleration
	Friction    float64 // momentum damping per descent step
	LRate       float64 // fold rate for tracked discharge and momentum

	NoiseOctaves   int     // fBm octaves for terrain seeding
	NoiseFrequency float64 // lattice periods across the map
}

// Config controls the world layout: lattice dimensions and cell scale.
type Config struct {
	TileSize int // world units per tile edge
	MapSize  int // tiles per axis
	Scale    int // world units per cell

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration: a 2x2 lattice of
// 512-unit tiles at half cell density.
func DefaultConfig() Config {
	return Config{
		TileSize: 512,
		MapSize:  2,
		Scale:    2,
		Seed:     1337,
		Params: Params{
			MapScale:       80,
			Drops:          512,
			MaxAge:         256,
			MinVolume:      0.01,
			Evaporation:    0.001,
			Deposition:     0.1,
			Entrainment:    10.0,
			Gravity:        2.0,
			Friction:       0.05,
			LRate:          0.1,
			NoiseOctaves:   6,
			NoiseFrequency: 4.0,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TileSize = parsed
		}
	}
	if v, ok := cfg["map"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MapSize = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["drops"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Drops = parsed
		}
	}
	return c
}
