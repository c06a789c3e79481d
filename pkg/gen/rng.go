// Package gen produces the synthetic hierarchy the viewer renders. All
// output is a pure function of the generation spec: same spec, same nodes,
// bit for bit.
package gen

// RNG is a SplitMix64 pseudo-random stream. The stdlib generators make no
// cross-release sequence guarantees, and generation must reproduce byte
// identical hierarchies from a stored seed, so the viewer carries its own
// 12-line generator instead.
type RNG struct {
	state uint64
}

// NewRNG seeds a new stream. Seed 0 is a valid, distinct stream.
func NewRNG(seed uint64) *RNG {
	return &RNG{state: seed}
}

// Uint64 returns the next raw 64-bit value.
func (r *RNG) Uint64() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns the next value uniformly distributed in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}
