package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext16PrimarySequence(t *testing.T) {
	r := New(1)
	want := []uint16{23896, 57519, 12198}
	for i, w := range want {
		if got := r.Next16(); got != w {
			t.Errorf("draw %d: expected %d, got %d", i, w, got)
		}
	}
	assert.Equal(t, 3, r.Draws())
}

func TestInitForcesOddPrimarySeed(t *testing.T) {
	even := New(12344)
	odd := New(12345)
	for i := 0; i < 16; i++ {
		require.Equal(t, odd.Next16(), even.Next16(), "draw %d", i)
	}
}

func TestSecondaryBankIsIndependent(t *testing.T) {
	r := New(12345)
	assert.Equal(t, uint16(25305), r.Next16())

	r.UseSecondary(3)
	require.True(t, r.UsingSecondary())
	assert.Equal(t, []uint16{25344, 63501, 49485}, []uint16{r.Next16(), r.Next16(), r.Next16()})

	// Primary counter does not advance on secondary draws
	assert.Equal(t, 1, r.Draws())
}

func TestUseSecondaryPanicsOutOfRange(t *testing.T) {
	r := New(7)
	assert.Panics(t, func() { r.UseSecondary(NumSecondary) })
	assert.Panics(t, func() { r.UseSecondary(-1) })
}

func TestInitResetsSecondarySelection(t *testing.T) {
	r := New(12345)
	r.UseSecondary(0)
	r.Next16()
	r.Init(12345)
	assert.False(t, r.UsingSecondary())
	assert.Equal(t, uint16(25305), r.Next16())
}

func TestRandInt(t *testing.T) {
	r := New(12345)
	assert.Equal(t, 3, r.RandInt(10))
	assert.Equal(t, 8, r.RandInt(10))

	r = New(99)
	for i := 0; i < 1000; i++ {
		v := r.RandInt(7)
		if v < 0 || v >= 7 {
			t.Fatalf("RandInt(7) out of range: %d", v)
		}
	}
	assert.Equal(t, 0, r.RandInt(1))
	assert.Equal(t, 0, r.RandInt(0))
}

func TestRandRange(t *testing.T) {
	r := New(4242)
	before := r.Draws()
	assert.Equal(t, 5, r.RandRange(5, 5))
	assert.Equal(t, before, r.Draws(), "equal bounds must not draw")

	for i := 0; i < 1000; i++ {
		v := r.RandRange(10, 2)
		if v < 2 || v >= 10 {
			t.Fatalf("RandRange(10, 2) out of range: %d", v)
		}
		v = r.RandRange(-3, 4)
		if v < -3 || v >= 4 {
			t.Fatalf("RandRange(-3, 4) out of range: %d", v)
		}
	}
}

func TestRandRangeSymmetric(t *testing.T) {
	a := New(31337)
	b := New(31337)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.RandRange(3, 17), b.RandRange(17, 3))
	}
}

func TestSeedFromPreseed(t *testing.T) {
	seed, next := SeedFromPreseed(0x1234)
	assert.Equal(t, uint32(0x52FC9), seed)
	assert.Equal(t, uint32(0x26053D7A), next)
	assert.Equal(t, uint32(1), seed&1, "seed is always odd")
}

func TestUsePrimaryResumesPrimarySequence(t *testing.T) {
	ref := New(777)
	want := []uint16{ref.Next16(), ref.Next16()}

	r := New(777)
	first := r.Next16()
	r.UseSecondary(0)
	r.Next16()
	r.UsePrimary()

	assert.False(t, r.UsingSecondary())
	assert.Equal(t, want, []uint16{first, r.Next16()})
	assert.Equal(t, 2, r.Draws())
}
