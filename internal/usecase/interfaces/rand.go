package interfaces

import "math/rand"

// Rand is the source of randomness used for subtype and outcome draws.
// *math/rand.Rand satisfies it, so tests can inject a seeded source for
// reproducible results.

type Rand interface {
	Float64() float64
	Intn(n int) int
}

// SystemRand returns a Rand backed by the process-wide math/rand source,
// which is safe for concurrent use.
func SystemRand() Rand { return systemRand{} }

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }
func (systemRand) Intn(n int) int   { return rand.Intn(n) }
