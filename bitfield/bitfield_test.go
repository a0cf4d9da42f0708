package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestSet(t *testing.T) {
	b := New(2)
	require.Equal(t, uint32(64), b.Bits())

	b.Set(0, true)
	b.Set(33, true)
	assert.True(t, b.Test(0))
	assert.True(t, b.Test(33))
	assert.False(t, b.Test(1))
	assert.False(t, b.Test(32))

	b.Set(33, false)
	assert.False(t, b.Test(33))

	// Out of range reads as false, out of range writes panic.
	assert.False(t, b.Test(64))
	assert.Panics(t, func() { b.Set(64, true) })
}

func TestLowestZero(t *testing.T) {
	tests := []struct {
		name     string
		words    []uint32
		expected uint32
	}{
		{
			name:     "all clear",
			words:    []uint32{0, 0},
			expected: 0,
		},
		{
			name:     "first word full",
			words:    []uint32{0xffffffff, 0},
			expected: 32,
		},
		{
			name:     "hole in the middle of the first word",
			words:    []uint32{0xffffefff, 0},
			expected: 12,
		},
		{
			name:     "all set returns the sentinel",
			words:    []uint32{0xffffffff, 0xffffffff},
			expected: 64,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BitField(tt.words).LowestZero())
		})
	}
}

func TestHighestZero(t *testing.T) {
	tests := []struct {
		name     string
		words    []uint32
		expected uint32
	}{
		{
			name:     "all clear",
			words:    []uint32{0, 0},
			expected: 63,
		},
		{
			name:     "second word full",
			words:    []uint32{0, 0xffffffff},
			expected: 31,
		},
		{
			name:     "hole in the middle of the second word",
			words:    []uint32{0xffffffff, 0xffffefff},
			expected: 44,
		},
		{
			name:     "all set returns the sentinel",
			words:    []uint32{0xffffffff, 0xffffffff},
			expected: 64,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BitField(tt.words).HighestZero())
		})
	}
}

func TestMsb64(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected uint64
	}{
		{
			name:     "zero stays zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "0b0110 keeps bit 2",
			input:    0b0110,
			expected: 0b0100,
		},
		{
			name:     "power of two is its own mask",
			input:    1 << 20,
			expected: 1 << 20,
		},
		{
			name:     "top bit",
			input:    0xffffffffffffffff,
			expected: 1 << 63,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Msb64(tt.input))
		})
	}
}

func TestLogBase2(t *testing.T) {
	assert.Equal(t, uint32(0), LogBase2(1))
	assert.Equal(t, uint32(5), LogBase2(32))
	assert.Equal(t, uint32(33), LogBase2(1<<33))
	assert.Equal(t, uint32(63), LogBase2(1<<63))

	assert.Panics(t, func() { LogBase2(0) })
	assert.Panics(t, func() { LogBase2(6) })
}
