// Package codec converts IEEE 754 scalars to and from their canonical
// byte encodings under an explicit byte order.
package codec

import (
	"golang.org/x/exp/constraints"
)

// ByteOrder selects the externally observable byte layout. It is passed
// per call; the codec keeps no endianness state, so all functions are safe
// for concurrent use.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	}
	return "unknown"
}

// PutBits lays out the low width bits of pattern as width/8 bytes in the
// given order. width must be a supported format width; it is always a
// multiple of 8.
func PutBits[T constraints.Unsigned](pattern T, width int, order ByteOrder) []byte {
	n := width / 8
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		shift := 8 * i
		if order == BigEndian {
			shift = 8 * (n - 1 - i)
		}
		b[i] = byte(pattern >> shift)
	}
	return b
}

// Bits reconstructs a bit pattern from its byte layout, reporting false
// when len(b) is not exactly width/8. Bytes are consumed one at a time,
// so b needs no particular alignment.
func Bits[T constraints.Unsigned](b []byte, width int, order ByteOrder) (T, bool) {
	n := width / 8
	if len(b) != n {
		return 0, false
	}
	var pattern T
	for i := 0; i < n; i++ {
		shift := 8 * i
		if order == BigEndian {
			shift = 8 * (n - 1 - i)
		}
		pattern |= T(b[i]) << shift
	}
	return pattern, true
}
