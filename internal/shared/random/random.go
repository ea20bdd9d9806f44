// Package random provides the pseudo-random source behind every fabricated
// value. Tests inject a seeded source for repeatable output.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the subset of math/rand/v2 used by the simulators.
type Source interface {
	IntN(n int) int
	Int64N(n int64) int64
	Float64() float64
}

// Global returns a source backed by the process-wide generator.
func Global() Source {
	return globalSource{}
}

// Seeded returns a goroutine-safe deterministic source.
func Seeded(seed uint64) Source {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns a value in [lo, hi] inclusive.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

type globalSource struct{}

func (globalSource) IntN(n int) int       { return rand.IntN(n) }
func (globalSource) Int64N(n int64) int64 { return rand.Int64N(n) }
func (globalSource) Float64() float64     { return rand.Float64() }

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedSource) Int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Int64N(n)
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
