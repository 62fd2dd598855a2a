// Package netsim provides the seeded delay oracle the simulator uses to
// stamp every scheduled envelope with a reproducible delivery delay.
package netsim

import "math/rand"

// Source is a reseedable stream of pseudorandom 64-bit values, the same
// minimal shape this codebase's other simulators wrap math/rand with.
type Source interface {
	Seed(seed int64)
	Uint64() uint64
}

// DelayOracle draws uniform delays in the half-open interval [Lo, Hi)
// from a stream seeded once at construction. Given the same seed, the
// sequence of draws is a deterministic function of the draw index alone
// — the oracle holds no other state that could perturb it.
type DelayOracle struct {
	rng    *rand.Rand
	lo, hi int
}

// NewDelayOracle returns a DelayOracle drawing from [1, 10), the range
// fixed by the protocol's wire-compatibility contract.
func NewDelayOracle(seed uint64) *DelayOracle {
	return NewDelayOracleRange(seed, 1, 10)
}

// NewDelayOracleRange returns a DelayOracle drawing uniform integers in
// the half-open interval [lo, hi). It exists for what-if experimentation
// with the timing model; the protocol itself always uses [1, 10).
func NewDelayOracleRange(seed uint64, lo, hi int) *DelayOracle {
	if lo >= hi {
		panic("netsim: delay range must satisfy lo < hi")
	}
	return &DelayOracle{
		rng: rand.New(rand.NewSource(int64(seed))), //nolint:gosec // deterministic simulation, not security-sensitive
		lo:  lo,
		hi:  hi,
	}
}

// Draw consumes exactly one value from the stream and returns a uniform
// integer in [lo, hi).
func (d *DelayOracle) Draw() int {
	return d.lo + int(d.rng.Uint64()%uint64(d.hi-d.lo))
}

// Seed reseeds the underlying stream, restarting the draw sequence from
// index zero. It satisfies Source.
func (d *DelayOracle) Seed(seed int64) { d.rng.Seed(seed) }

// Uint64 exposes the raw underlying stream value, satisfying Source for
// callers that want the unshaped draw rather than a ranged one.
func (d *DelayOracle) Uint64() uint64 { return d.rng.Uint64() }

var _ Source = (*DelayOracle)(nil)
