package codec

import (
	"math"

	"github.com/coenttb/go-ieee754/float16"
	"github.com/coenttb/go-ieee754/format"
)

// Scalar encoders are total: every value, NaN payloads and signed zeros
// included, has exactly one encoding per byte order. Decoders return
// false for any input whose length is not exactly the format's byte size.

func Float64Bytes(v float64, order ByteOrder) []byte {
	return PutBits(math.Float64bits(v), format.Binary64.BitSize, order)
}

func Float64FromBytes(b []byte, order ByteOrder) (float64, bool) {
	p, ok := Bits[uint64](b, format.Binary64.BitSize, order)
	if !ok {
		return 0, false
	}
	return math.Float64frombits(p), true
}

func Float32Bytes(v float32, order ByteOrder) []byte {
	return PutBits(math.Float32bits(v), format.Binary32.BitSize, order)
}

func Float32FromBytes(b []byte, order ByteOrder) (float32, bool) {
	p, ok := Bits[uint32](b, format.Binary32.BitSize, order)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(p), true
}

func Float16Bytes(v float16.Float16, order ByteOrder) []byte {
	return PutBits(v.Bits(), format.Binary16.BitSize, order)
}

func Float16FromBytes(b []byte, order ByteOrder) (float16.Float16, bool) {
	p, ok := Bits[uint16](b, format.Binary16.BitSize, order)
	if !ok {
		return 0, false
	}
	return float16.FromBits(p), true
}

// Slice encoders concatenate fixed-size scalar encodings with no padding
// or length prefix. Slice decoders return false when the input length is
// not a multiple of the scalar byte size; an empty input decodes to an
// empty, non-nil slice.

func Float64SliceBytes(vs []float64, order ByteOrder) []byte {
	out := make([]byte, 0, len(vs)*format.Binary64.ByteSize)
	for _, v := range vs {
		out = append(out, Float64Bytes(v, order)...)
	}
	return out
}

func Float64SliceFromBytes(b []byte, order ByteOrder) ([]float64, bool) {
	size := format.Binary64.ByteSize
	if len(b)%size != 0 {
		return nil, false
	}
	out := make([]float64, 0, len(b)/size)
	for i := 0; i < len(b); i += size {
		v, ok := Float64FromBytes(b[i:i+size], order)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

func Float32SliceBytes(vs []float32, order ByteOrder) []byte {
	out := make([]byte, 0, len(vs)*format.Binary32.ByteSize)
	for _, v := range vs {
		out = append(out, Float32Bytes(v, order)...)
	}
	return out
}

func Float32SliceFromBytes(b []byte, order ByteOrder) ([]float32, bool) {
	size := format.Binary32.ByteSize
	if len(b)%size != 0 {
		return nil, false
	}
	out := make([]float32, 0, len(b)/size)
	for i := 0; i < len(b); i += size {
		v, ok := Float32FromBytes(b[i:i+size], order)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

func Float16SliceBytes(vs []float16.Float16, order ByteOrder) []byte {
	out := make([]byte, 0, len(vs)*format.Binary16.ByteSize)
	for _, v := range vs {
		out = append(out, Float16Bytes(v, order)...)
	}
	return out
}

func Float16SliceFromBytes(b []byte, order ByteOrder) ([]float16.Float16, bool) {
	size := format.Binary16.ByteSize
	if len(b)%size != 0 {
		return nil, false
	}
	out := make([]float16.Float16, 0, len(b)/size)
	for i := 0; i < len(b); i += size {
		v, ok := Float16FromBytes(b[i:i+size], order)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
