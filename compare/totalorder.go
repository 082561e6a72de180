package compare

import (
	"math"

	"github.com/coenttb/go-ieee754/float16"
	"github.com/coenttb/go-ieee754/format"
	"golang.org/x/exp/constraints"
)

// totalOrderKey maps a bit pattern to a key whose unsigned ordering is
// the IEEE 754-2019 section 5.10 total order: negative patterns reverse
// (complement), non-negative patterns shift above them (set the sign
// bit). The resulting order is
//
//	-NaN < -inf < negatives < -0 < +0 < positives < +inf < +NaN
//
// with NaNs of one sign ordered by their significand field.
func totalOrderKey[T constraints.Unsigned](pattern, signMask T) T {
	if pattern&signMask != 0 {
		return ^pattern
	}
	return pattern | signMask
}

// TotalOrder reports whether a orders before b (or a and b carry the same
// bit pattern). Unlike the quiet predicates it is a strict total order:
// every pair, NaNs included, is comparable, and -0 orders before +0.
func TotalOrder(a, b float64) bool {
	ka := totalOrderKey(math.Float64bits(a), format.Binary64SignMask)
	kb := totalOrderKey(math.Float64bits(b), format.Binary64SignMask)
	return ka <= kb
}

// TotalOrderMag applies the total order to |a| and |b|.
func TotalOrderMag(a, b float64) bool {
	ka := totalOrderKey(math.Float64bits(a)&^format.Binary64SignMask, format.Binary64SignMask)
	kb := totalOrderKey(math.Float64bits(b)&^format.Binary64SignMask, format.Binary64SignMask)
	return ka <= kb
}

// TotalOrder32 is TotalOrder over binary32 values.
func TotalOrder32(a, b float32) bool {
	ka := totalOrderKey(math.Float32bits(a), format.Binary32SignMask)
	kb := totalOrderKey(math.Float32bits(b), format.Binary32SignMask)
	return ka <= kb
}

// TotalOrderMag32 is TotalOrderMag over binary32 values.
func TotalOrderMag32(a, b float32) bool {
	ka := totalOrderKey(math.Float32bits(a)&^format.Binary32SignMask, format.Binary32SignMask)
	kb := totalOrderKey(math.Float32bits(b)&^format.Binary32SignMask, format.Binary32SignMask)
	return ka <= kb
}

// TotalOrder16 is TotalOrder over binary16 values.
func TotalOrder16(a, b float16.Float16) bool {
	ka := totalOrderKey(a.Bits(), format.Binary16SignMask)
	kb := totalOrderKey(b.Bits(), format.Binary16SignMask)
	return ka <= kb
}

// TotalOrderMag16 is TotalOrderMag over binary16 values.
func TotalOrderMag16(a, b float16.Float16) bool {
	return TotalOrder16(a.Abs(), b.Abs())
}
