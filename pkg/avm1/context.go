package avm1

import "math/rand"

// UpdateContext carries the per-tick mutable state every mutating
// runtime call threads through. The host player owns it; this module
// only reads from it.
type UpdateContext struct {
	// PlayerVersion is the emulated player's version, used when no
	// movie clip supplies a content version.
	PlayerVersion uint8

	// Rng backs the legacy random() builtin. Nil means an unseeded
	// shared source.
	Rng *rand.Rand
}

// NewUpdateContext builds a context for the given player version with a
// deterministically seeded random source (hosts that want real entropy
// replace Rng).
func NewUpdateContext(playerVersion uint8) *UpdateContext {
	return &UpdateContext{
		PlayerVersion: playerVersion,
		Rng:           rand.New(rand.NewSource(0)),
	}
}

func (ctx *UpdateContext) randFloat() float64 {
	if ctx.Rng == nil {
		return rand.Float64()
	}
	return ctx.Rng.Float64()
}
