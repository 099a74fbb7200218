//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hydromap/internal/app"
	"hydromap/internal/core"
	_ "hydromap/internal/sims/hydrology"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(nil)
	if err != nil {
		log.Fatalf("building %s world: %v", cfg.Sim, err)
	}
	world, ok := sim.(app.World)
	if !ok {
		log.Fatalf("sim %q cannot drive the viewer", cfg.Sim)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("hydromap — " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
