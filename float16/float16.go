// Package float16 provides an IEEE 754 binary16 scalar type.
//
// Go has no native half-precision float, so a value is carried as its
// 16-bit encoding. Widening to float32 is exact for every bit pattern,
// subnormals and NaN payloads included; narrowing rounds to nearest with
// ties to even.
package float16

import (
	"fmt"
	"math"
)

// Float16 is a binary16 value, stored as its bit pattern.
type Float16 uint16

const (
	signMask        = 0x8000
	exponentMask    = 0x7C00
	significandMask = 0x03FF
	quietBit        = 0x0200
)

// FromBits returns the value with the given encoding.
func FromBits(b uint16) Float16 {
	return Float16(b)
}

// Bits returns the raw encoding.
func (f Float16) Bits() uint16 {
	return uint16(f)
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Float16 {
	if sign < 0 {
		return Float16(signMask | exponentMask)
	}
	return Float16(exponentMask)
}

// NaN returns the canonical quiet NaN.
func NaN() Float16 {
	return Float16(exponentMask | quietBit)
}

func (f Float16) IsNaN() bool {
	return f&exponentMask == exponentMask && f&significandMask != 0
}

// IsInf reports whether f is an infinity matching sign, with sign 0
// matching either infinity.
func (f Float16) IsInf(sign int) bool {
	if f&^signMask != exponentMask {
		return false
	}
	return sign == 0 || (sign > 0) == (f&signMask == 0)
}

func (f Float16) Signbit() bool {
	return f&signMask != 0
}

// Abs returns f with the sign bit cleared.
func (f Float16) Abs() Float16 {
	return f &^ signMask
}

// Float32 widens f. The conversion is exact: every binary16 value,
// including subnormals and every NaN payload, has a distinct float32
// counterpart.
func (f Float16) Float32() float32 {
	sign := uint32(f&signMask) << 16
	exp := int32(f>>10) & 0x1F
	mant := uint32(f & significandMask)

	switch exp {
	case 0x1F:
		// infinity or NaN, payload kept in the high significand bits
		return math.Float32frombits(sign | 0x7F80_0000 | mant<<13)
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// normalize the subnormal
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		exp++
		mant &= significandMask
	}
	return math.Float32frombits(sign | uint32(exp+127-15)<<23 | mant<<13)
}

// FromFloat32 narrows v to binary16, rounding to nearest with ties to
// even. Values beyond the binary16 range become infinities, tiny values
// round through the subnormals to a signed zero, and NaNs are quieted
// with the high payload bits kept.
func FromFloat32(v float32) Float16 {
	b := math.Float32bits(v)
	sign := uint16(b >> 16 & signMask)
	exp := int32(b>>23) & 0xFF
	mant := b & 0x7F_FFFF

	if exp == 0xFF {
		if mant == 0 {
			return Float16(sign | exponentMask)
		}
		return Float16(sign | exponentMask | quietBit | uint16(mant>>13)&significandMask)
	}

	e := exp - 127 + 15
	switch {
	case e >= 0x1F:
		return Float16(sign | exponentMask)
	case e > 0:
		m := uint16(mant >> 13)
		h := sign | uint16(e)<<10 | m
		// round to nearest even on the 13 discarded bits; a carry out of
		// the significand bumps the exponent, and past EMax lands exactly
		// on the infinity encoding
		rem := mant & 0x1FFF
		if rem > 0x1000 || (rem == 0x1000 && m&1 == 1) {
			h++
		}
		return Float16(h)
	case e >= -10:
		// subnormal range
		mant |= 0x80_0000
		shift := uint32(14 - e)
		m := uint16(mant >> shift)
		rem := mant & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && m&1 == 1) {
			m++
		}
		return Float16(sign | m)
	}
	return Float16(sign)
}

func (f Float16) String() string {
	return fmt.Sprintf("%g", f.Float32())
}
