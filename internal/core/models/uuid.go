package models

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"strconv"
)

// UUID identifies a loaded asset for the lifetime of the process. It is
// persisted verbatim in the asset index, so restored assets keep their value.
type UUID uint64

// Uint64 returns the underlying integer.
func (u UUID) Uint64() uint64 { return uint64(u) }

func (u UUID) IsZero() bool { return u == 0 }

func (u UUID) String() string { return strconv.FormatUint(uint64(u), 10) }

// ParseUUID parses the decimal form produced by String.
func ParseUUID(s string) (UUID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return UUID(v), nil
}

// Generator draws identifiers uniformly from the full uint64 range.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded from crypto/rand.
func NewGenerator() *Generator {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return NewSeededGenerator(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:]))
}

// NewSeededGenerator returns a deterministic Generator. Two generators built
// from the same seeds yield the same sequence.
func NewSeededGenerator(seed1, seed2 uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Generate returns a fresh identifier. No collision check is performed.
func (g *Generator) Generate() UUID {
	return UUID(g.rng.Uint64())
}
