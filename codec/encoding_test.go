package codec

import (
	"bytes"
	"math"
	"testing"

	"github.com/coenttb/go-ieee754/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorRoundTrip(t *testing.T) {
	vs := []float64{3.14159, math.Inf(1), math.Copysign(0, -1)}
	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		var buf bytes.Buffer
		require.NoError(t, Float64Vector(vs, order).MarshalCBOR(&buf))

		var got Vector
		require.NoError(t, got.UnmarshalCBOR(&buf))
		assert.Equal(t, format.Binary64.BitSize, got.BitSize)
		assert.Equal(t, order, got.Order)

		back, ok := got.Float64s()
		require.True(t, ok)
		assert.Equal(t, vs, back)
	}
}

func TestVectorFormatMismatch(t *testing.T) {
	v := Float32Vector([]float32{1, 2}, LittleEndian)
	_, ok := v.Float64s()
	assert.False(t, ok)
	_, ok = v.Float16s()
	assert.False(t, ok)
	got, ok := v.Float32s()
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2}, got)
}

func TestVectorMarshalRejectsMalformed(t *testing.T) {
	var buf bytes.Buffer

	err := (&Vector{BitSize: 24, Order: LittleEndian}).MarshalCBOR(&buf)
	assert.Error(t, err)

	err = (&Vector{BitSize: 64, Order: 7}).MarshalCBOR(&buf)
	assert.Error(t, err)

	err = (&Vector{BitSize: 64, Order: BigEndian, Data: make([]byte, 12)}).MarshalCBOR(&buf)
	assert.Error(t, err)
}

func TestVectorUnmarshalRejectsMalformed(t *testing.T) {
	good := func() []byte {
		var buf bytes.Buffer
		require.NoError(t, Float64Vector([]float64{1}, LittleEndian).MarshalCBOR(&buf))
		return buf.Bytes()
	}()

	{
		// corrupt the format width: 64 encodes as 0x18 0x40, patch it to 63
		bad := append([]byte{}, good...)
		require.Equal(t, byte(0x18), bad[1])
		bad[2] = 63
		var v Vector
		assert.Error(t, v.UnmarshalCBOR(bytes.NewReader(bad)))
	}
	{
		// truncated payload
		var v Vector
		assert.Error(t, v.UnmarshalCBOR(bytes.NewReader(good[:len(good)-2])))
	}
	{
		// not an array at all
		var v Vector
		assert.Error(t, v.UnmarshalCBOR(bytes.NewReader([]byte{0x01})))
	}
}

func TestVectorNilRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (*Vector)(nil).MarshalCBOR(&buf))

	got := Vector{BitSize: 32, Order: BigEndian, Data: []byte{1, 2, 3, 4}}
	require.NoError(t, got.UnmarshalCBOR(&buf))
	assert.Equal(t, Vector{}, got)
}

func TestVectorEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Float64Vector(nil, LittleEndian).MarshalCBOR(&buf))

	var got Vector
	require.NoError(t, got.UnmarshalCBOR(&buf))
	back, ok := got.Float64s()
	require.True(t, ok)
	assert.Len(t, back, 0)
}
