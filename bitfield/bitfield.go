// Package bitfield provides a bit-field backed by an array of 32-bit words,
// along with a couple of single-word bit helpers shared by the driver tooling.
package bitfield

import "math/bits"

// BitField is a logical array of len()*32 single-bit flags packed into 32-bit
// words. Bit i lives at word i/32, position i%32.
type BitField []uint32

// New returns a BitField of words*32 bits, all clear.
func New(words int) BitField {
	return make(BitField, words)
}

// Bits returns the number of bits the field holds.
func (b BitField) Bits() uint32 {
	return uint32(len(b)) * 32
}

// Test reports whether bit is set. Out of range bits read as false.
func (b BitField) Test(bit uint32) bool {
	if bit >= b.Bits() {
		return false
	}
	return b[bit/32]&(1<<(bit%32)) != 0
}

// Set sets bit to value. Panics when bit is out of range.
func (b BitField) Set(bit uint32, value bool) {
	if bit >= b.Bits() {
		panic("bitfield: bit index out of range")
	}
	if value {
		b[bit/32] |= 1 << (bit % 32)
	} else {
		b[bit/32] &^= 1 << (bit % 32)
	}
}

// LowestZero returns the index of the lowest unset bit, or Bits() when every
// bit is set.
func (b BitField) LowestZero() uint32 {
	for i, w := range b {
		if t := ^w; t != 0 {
			return uint32(i)*32 + uint32(bits.TrailingZeros32(t))
		}
	}
	return b.Bits()
}

// HighestZero returns the index of the highest unset bit, or Bits() when
// every bit is set.
func (b BitField) HighestZero() uint32 {
	for j := len(b) - 1; j >= 0; j-- {
		if t := ^b[j]; t != 0 {
			return uint32(j)*32 + uint32(bits.Len32(t)) - 1
		}
	}
	return b.Bits()
}

// Msb64 returns x with only its most significant set bit retained.
// Msb64(0) is 0.
func Msb64(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	return 1 << (bits.Len64(x) - 1)
}

// LogBase2 returns the base-2 exponent of v, which must be an exact power of
// two. Panics otherwise.
func LogBase2(v uint64) uint32 {
	if v == 0 || v&(v-1) != 0 {
		panic("bitfield: value is not a power of two")
	}
	return uint32(bits.TrailingZeros64(v))
}
