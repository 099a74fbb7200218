package main

import (
	"flag"
	"log"
	"time"

	"hydromap/internal/core"
	"hydromap/internal/sims/hydrology"
	"hydromap/internal/snapshot"
)

func main() {
	steps := flag.Int("steps", 240, "ticks to simulate")
	seed := flag.Int64("seed", 1337, "terrain seed")
	tile := flag.Int("tile", 512, "world units per tile edge")
	mapSize := flag.Int("map", 2, "tiles per axis")
	scale := flag.Int("scale", 2, "world units per cell")
	drops := flag.Int("drops", 512, "rain drops per tick")
	report := flag.Int("report", 20, "ticks between stat lines")
	tps := flag.Int("tps", 0, "pace the run at this tick rate (0 = unpaced)")
	out := flag.String("out", "", "write a snapshot here when done")
	flag.Parse()

	cfg := hydrology.DefaultConfig()
	cfg.TileSize = *tile
	cfg.MapSize = *mapSize
	cfg.Scale = *scale
	cfg.Seed = *seed
	cfg.Params.Drops = *drops

	world, err := hydrology.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("laying out world: %v", err)
	}
	world.Reset(*seed)

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	start := time.Now()
	for tick := 0; tick < *steps; {
		if pacer != nil && !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		world.Step()
		tick++
		if *report > 0 && tick%*report == 0 {
			minH, maxH, discharge := world.Stats()
			log.Printf("tick %d  height [%.3f, %.3f]  discharge %.1f", tick, minH, maxH, discharge)
		}
	}
	minH, maxH, discharge := world.Stats()
	log.Printf("done: %d ticks in %s  height [%.3f, %.3f]  discharge %.1f",
		*steps, time.Since(start).Round(time.Millisecond), minH, maxH, discharge)

	if *out != "" {
		if err := snapshot.Save(*out, world); err != nil {
			log.Fatalf("writing snapshot: %v", err)
		}
		log.Printf("snapshot written to %s", *out)
	}
}
