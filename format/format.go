// Package format carries the static metadata of the IEEE 754-2019 binary
// interchange formats supported by this module.
package format

// Descriptor describes the bit layout of one binary interchange format.
// Instances are static and must never be mutated.
type Descriptor struct {
	// ByteSize is the width of an encoded scalar in bytes, BitSize/8.
	ByteSize int
	// BitSize is the total encoding width: SignBits + ExponentBits + SignificandBits.
	BitSize int
	// SignBits is always 1.
	SignBits int
	// ExponentBits is the width of the biased exponent field.
	ExponentBits int
	// SignificandBits is the width of the trailing significand field,
	// excluding the implicit leading bit.
	SignificandBits int
	// ExponentBias is subtracted from the stored exponent to obtain the
	// unbiased exponent.
	ExponentBias int
	// MaxExponent is the largest unbiased exponent of a finite value.
	MaxExponent int
	// Precision is the significand precision in bits, including the
	// implicit leading bit.
	Precision int
	// EMin and EMax bound the unbiased exponent range of normal values.
	EMin int
	EMax int
}

var (
	Binary16 = Descriptor{
		ByteSize:        2,
		BitSize:         16,
		SignBits:        1,
		ExponentBits:    5,
		SignificandBits: 10,
		ExponentBias:    15,
		MaxExponent:     15,
		Precision:       11,
		EMin:            -14,
		EMax:            15,
	}
	Binary32 = Descriptor{
		ByteSize:        4,
		BitSize:         32,
		SignBits:        1,
		ExponentBits:    8,
		SignificandBits: 23,
		ExponentBias:    127,
		MaxExponent:     127,
		Precision:       24,
		EMin:            -126,
		EMax:            127,
	}
	Binary64 = Descriptor{
		ByteSize:        8,
		BitSize:         64,
		SignBits:        1,
		ExponentBits:    11,
		SignificandBits: 52,
		ExponentBias:    1023,
		MaxExponent:     1023,
		Precision:       53,
		EMin:            -1022,
		EMax:            1023,
	}
	// Binary256 is metadata only. Go has no native 256-bit float, so no
	// scalar codec exists for it.
	Binary256 = Descriptor{
		ByteSize:        32,
		BitSize:         256,
		SignBits:        1,
		ExponentBits:    19,
		SignificandBits: 236,
		ExponentBias:    262143,
		MaxExponent:     262143,
		Precision:       237,
		EMin:            -262142,
		EMax:            262143,
	}
)

// FromBitSize returns the descriptor of the format with the given total
// encoding width, reporting false if the width names no supported format.
func FromBitSize(bits int) (Descriptor, bool) {
	switch bits {
	case 16:
		return Binary16, true
	case 32:
		return Binary32, true
	case 64:
		return Binary64, true
	case 256:
		return Binary256, true
	}
	return Descriptor{}, false
}
