package hydrology

// Cell is the interleaved per-cell record stored in the arena: terrain
// height plus the water discharge and momentum fields, each paired with a
// per-step tracked accumulator that is folded into the persistent field
// when a step completes.
type Cell struct {
	Height    float32
	Discharge float32
	MomentumX float32
	MomentumY float32

	DischargeTrack float32
	MomentumXTrack float32
	MomentumYTrack float32
}
