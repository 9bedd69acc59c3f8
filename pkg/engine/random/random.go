// Package random implements the deterministic linear congruential generator
// that drives floor generation. Nothing in the generator may use another
// source of randomness.
package random

const (
	lcgMultiplier      uint32 = 0x5D588B65
	primaryIncrement   uint32 = 1
	secondaryIncrement uint32 = 0x269EC3

	// NumSecondary is the number of secondary generator banks
	NumSecondary = 5
)

// DungeonRandom holds a primary LCG and five secondary LCGs. Once a secondary
// bank has been selected every further draw comes from it until Init is called.
type DungeonRandom struct {
	lastPrimary    uint32
	seqPrimary     int
	secondary      [NumSecondary]uint32
	useSecondary   bool
	secondaryIndex int
}

// New creates a generator seeded with seed
func New(seed uint32) *DungeonRandom {
	r := &DungeonRandom{}
	r.Init(seed)
	return r
}

// SeedFromPreseed derives a generator seed from a preseed with two primary LCG iterations.
// It also returns the second iteration, which becomes the next preseed.
func SeedFromPreseed(preseed uint32) (seed uint32, nextPreseed uint32) {
	first := preseed*lcgMultiplier + primaryIncrement
	second := first*lcgMultiplier + primaryIncrement
	return (second & 0xFF0000) | (first >> 16) | 1, second
}

// Init reseeds every bank and switches back to the primary generator
func (r *DungeonRandom) Init(seed uint32) {
	r.lastPrimary = seed | 1
	r.seqPrimary = 0
	for i := range r.secondary {
		r.secondary[i] = seed
	}
	r.useSecondary = false
	r.secondaryIndex = 0
}

// UseSecondary switches all further draws to the secondary bank at index.
// It panics if index is not in [0, NumSecondary).
func (r *DungeonRandom) UseSecondary(index int) {
	if index < 0 || index >= NumSecondary {
		panic("random: secondary index out of range")
	}
	r.useSecondary = true
	r.secondaryIndex = index
}

// UsePrimary switches draws back to the primary bank. Secondary banks keep their state.
func (r *DungeonRandom) UsePrimary() {
	r.useSecondary = false
}

// UsingSecondary reports whether draws come from a secondary bank
func (r *DungeonRandom) UsingSecondary() bool {
	return r.useSecondary
}

// Draws returns how many values the primary bank has produced since Init
func (r *DungeonRandom) Draws() int {
	return r.seqPrimary
}

// Next16 advances the active bank and returns its upper 16 bits
func (r *DungeonRandom) Next16() uint16 {
	if r.useSecondary {
		v := r.secondary[r.secondaryIndex]*lcgMultiplier + secondaryIncrement
		r.secondary[r.secondaryIndex] = v
		return uint16(v >> 16)
	}

	r.seqPrimary++
	r.lastPrimary = r.lastPrimary*lcgMultiplier + primaryIncrement
	return uint16(r.lastPrimary >> 16)
}

// RandInt returns a value in [0, n). A non-positive n still consumes a draw.
func (r *DungeonRandom) RandInt(n int) int {
	v := int64(r.Next16())
	return int((v * int64(n)) >> 16)
}

// RandRange returns a value in [min(x, y), max(x, y)). Equal bounds return x
// without consuming a draw.
func (r *DungeonRandom) RandRange(x, y int) int {
	if x == y {
		return x
	}

	v := int64(r.Next16())
	if x < y {
		return x + int((v*int64(y-x))>>16)
	}
	return y + int((v*int64(x-y))>>16)
}
