package generator

import (
	"math/rand"
	"time"

	"svw.info/termdoku/internal/ports"
)

// UniqueGenerator creates puzzles with a unique solution using a
// provided Solver as the uniqueness oracle.
type UniqueGenerator struct {
	Solver ports.Solver
	seed   int64
	rng    *rand.Rand
}

// New wires a generator around the given solver. A zero seed picks a
// wall-clock seed; any other value makes generation reproducible.
func New(s ports.Solver, seed int64) *UniqueGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &UniqueGenerator{Solver: s, seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// The Generate method lives in carve.go.
