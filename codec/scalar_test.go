package codec

import (
	"math"
	"testing"

	"github.com/coenttb/go-ieee754/float16"
	"github.com/coenttb/go-ieee754/format"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64GoldenBytes(t *testing.T) {
	b := Float64Bytes(3.14159, LittleEndian)
	assert.Equal(t, []byte{0x6E, 0x86, 0x1B, 0xF0, 0xF9, 0x21, 0x09, 0x40}, b)

	v, ok := Float64FromBytes(b, LittleEndian)
	require.True(t, ok)
	assert.Equal(t, 3.14159, v)

	big, ok := Float64FromBytes(reversed(b), BigEndian)
	require.True(t, ok)
	assert.Equal(t, 3.14159, big)
}

func TestFloat64BitExact(t *testing.T) {
	patterns := []uint64{
		format.Binary64SignMask,          // -0
		format.Binary64PositiveInfinity,
		format.Binary64NegativeInfinity,
		format.Binary64QuietNaN,
		format.Binary64QuietNaN | 0xDEAD, // NaN payload
		format.Binary64SmallestSubnormal,
		format.Binary64LargestFinite,
	}
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		for _, p := range patterns {
			v := math.Float64frombits(p)
			got, ok := Float64FromBytes(Float64Bytes(v, order), order)
			require.True(t, ok)
			// compare as bits: NaN != NaN under scalar equality
			assert.Equal(t, p, math.Float64bits(got), "pattern %#016x %v", p, order)
		}
	}
}

func TestScalarLengthPolicy(t *testing.T) {
	for _, n := range []int{0, 7, 9} {
		_, ok := Float64FromBytes(make([]byte, n), LittleEndian)
		assert.False(t, ok)
	}
	for _, n := range []int{0, 3, 5} {
		_, ok := Float32FromBytes(make([]byte, n), LittleEndian)
		assert.False(t, ok)
	}
	for _, n := range []int{0, 1, 3} {
		_, ok := Float16FromBytes(make([]byte, n), LittleEndian)
		assert.False(t, ok)
	}
}

func TestFloat64Slice(t *testing.T) {
	vs := []float64{0, math.Copysign(0, -1), 3.14159, math.Inf(-1), math.MaxFloat64}
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		b := Float64SliceBytes(vs, order)
		require.Len(t, b, len(vs)*format.Binary64.ByteSize)

		back, ok := Float64SliceFromBytes(b, order)
		require.True(t, ok)
		if diff := cmp.Diff(vs, back); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestSliceEmptyInput(t *testing.T) {
	// an empty buffer is a valid encoding of zero scalars, unlike the
	// scalar decoders which reject it
	back, ok := Float64SliceFromBytes([]byte{}, LittleEndian)
	require.True(t, ok)
	assert.NotNil(t, back)
	assert.Len(t, back, 0)

	back16, ok := Float16SliceFromBytes(nil, BigEndian)
	require.True(t, ok)
	assert.NotNil(t, back16)
	assert.Len(t, back16, 0)
}

func TestSliceRejectsPartialChunk(t *testing.T) {
	_, ok := Float64SliceFromBytes(make([]byte, 12), LittleEndian)
	assert.False(t, ok)
	_, ok = Float32SliceFromBytes(make([]byte, 6), LittleEndian)
	assert.False(t, ok)
	_, ok = Float16SliceFromBytes(make([]byte, 3), LittleEndian)
	assert.False(t, ok)
}

func TestFloat16Slice(t *testing.T) {
	vs := []float16.Float16{
		float16.FromFloat32(1),
		float16.Inf(-1),
		float16.NaN(),
		float16.FromBits(0x8000),
	}
	b := Float16SliceBytes(vs, BigEndian)
	back, ok := Float16SliceFromBytes(b, BigEndian)
	require.True(t, ok)
	assert.Equal(t, vs, back)
}

func TestFloat16RoundTripExhaustive(t *testing.T) {
	// every binary16 bit pattern, NaN payloads included, survives a
	// scalar encode/decode in both byte orders
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		for p := 0; p <= math.MaxUint16; p++ {
			h := float16.FromBits(uint16(p))
			back, ok := Float16FromBytes(Float16Bytes(h, order), order)
			require.True(t, ok)
			require.Equal(t, h.Bits(), back.Bits(), "pattern %#04x %v", p, order)
		}
	}
}

func TestFloat32Scalar(t *testing.T) {
	b := Float32Bytes(1.5, BigEndian)
	assert.Equal(t, []byte{0x3F, 0xC0, 0x00, 0x00}, b)
	v, ok := Float32FromBytes(b, BigEndian)
	require.True(t, ok)
	assert.Equal(t, float32(1.5), v)
}
