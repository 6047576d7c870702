// Package prng provides the deterministic number stream that drives target
// placement. The generator and the seed hash are fixed forever: replay codes
// shared between players only reproduce the same field if every draw matches.
package prng

import (
	"math/rand/v2"
	"time"
)

// LCG constants (Numerical Recipes).
const (
	multiplier = 1664525
	increment  = 1013904223
	modulus    = 1 << 32
)

// PRNG is a 32-bit linear congruential generator.
// It is not safe for concurrent use; each session owns exactly one.
type PRNG struct {
	state uint32
	draws int
}

// New creates a generator seeded with seed.
func New(seed uint32) *PRNG {
	p := &PRNG{}
	p.Seed(seed)
	return p
}

// Seed resets the state to seed without consuming a draw.
func (p *PRNG) Seed(seed uint32) {
	p.state = seed
	p.draws = 0
}

// Next advances the stream and returns a float in [0, 1).
func (p *PRNG) Next() float64 {
	p.state = p.state*multiplier + increment
	p.draws++
	return float64(p.state) / modulus
}

// Range returns a float in [min, max).
func (p *PRNG) Range(min, max float64) float64 {
	return min + p.Next()*(max-min)
}

// Draws returns how many values have been drawn since the last Seed.
func (p *PRNG) Draws() int {
	return p.draws
}

// HashSeed maps a code to a non-negative 32-bit seed using the classic
// 31-multiplier string hash over UTF-16 code units with int32 wraparound.
//
// An empty code has no deterministic seed; a random one is returned instead
// and ok is false.
func HashSeed(code string) (seed uint32, ok bool) {
	if code == "" {
		return randomSeed(), false
	}

	var hash int32
	for _, unit := range utf16Units(code) {
		hash = hash*31 + int32(unit)
	}

	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return uint32(h), true
}

// utf16Units expands s into UTF-16 code units so non-ASCII codes hash the
// same way browsers did when the first codes were generated.
func utf16Units(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

func randomSeed() uint32 {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	return r.Uint32()
}
