// Package rng provides an owned, explicitly seeded random source and an
// unbiased bounded integer sampler on top of it.
package rng

import (
	"math"
	"math/rand/v2"
)

// Source produces integers uniformly distributed over [0, Max()].
type Source interface {
	Max() int
	Draw() int
}

// PCG is the default Source: a PCG generator reduced to 31 bits so that
// Max() matches a C RAND_MAX.
type PCG struct {
	r *rand.Rand
}

// NewPCG returns a deterministic source for seed.
func NewPCG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (p *PCG) Max() int  { return math.MaxInt32 }
func (p *PCG) Draw() int { return int(p.r.Uint32() >> 1) }

// Sampler draws bounded integers without modulo bias.
type Sampler struct {
	src Source
}

// New wraps src.
func New(src Source) *Sampler {
	return &Sampler{src: src}
}

// NewSeeded is shorthand for New(NewPCG(seed)).
func NewSeeded(seed uint64) *Sampler {
	return New(NewPCG(seed))
}

// Intn returns an integer uniformly distributed over [0, n).
//
// n must be in [1, Max()+1]; callers validate it.
func (s *Sampler) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	top := s.src.Max()
	if n-1 == top {
		return s.src.Draw()
	}

	limit := (top / n) * n
	for {
		r := s.src.Draw()
		if r < limit {
			return r % n
		}
	}
}
