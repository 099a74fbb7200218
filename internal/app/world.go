package app

import (
	"hydromap/internal/core"
	"hydromap/internal/render"
	"hydromap/internal/snapshot"
)

// World is the surface the viewer drives: a steppable simulation that also
// answers the painter's queries and can be snapshotted to disk.
type World interface {
	core.Sim
	render.Surface
	snapshot.World
}
