package corpus

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// prng is a linear congruential generator with fixed constants, so a
// generated corpus is identical across platforms and Go releases.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// next generates the next value in the sequence.
// Multiplier and increment are from Numerical Recipes.
func (p *prng) next() uint64 {
	p.state = p.state*6364136223846793005 + 1442695040888963407
	return p.state
}

// intn returns a value in [0, n).
func (p *prng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(p.next() % uint64(n))
}

// deriveSeed mixes a base seed with a stream name so each generated
// corpus gets an independent, reproducible sequence.
func deriveSeed(base uint64, name string) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], base)
	d := xxhash.New()
	d.Write(buf[:])
	d.Write([]byte(name))
	return d.Sum64()
}
