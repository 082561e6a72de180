package codec

import (
	"io"

	"github.com/coenttb/go-ieee754/float16"
	"github.com/coenttb/go-ieee754/format"
	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// Vector is a self-describing batch of encoded scalars: the format width,
// the byte order the payload was laid out with, and the raw concatenated
// encodings. It exists for interchange; callers that agree on format and
// order out of band should use the slice codecs directly.
type Vector struct {
	BitSize int
	Order   ByteOrder
	Data    []byte
}

// Vector encodes as [bitSize, order, payload]
const maxVectorBytes = 1 << 20

var _ cbg.CBORMarshaler = (*Vector)(nil)
var _ cbg.CBORUnmarshaler = (*Vector)(nil)

func (v *Vector) MarshalCBOR(w io.Writer) error {
	if v == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	desc, ok := format.FromBitSize(v.BitSize)
	if !ok {
		return xerrors.Errorf("unsupported format width: %d bits", v.BitSize)
	}
	if v.Order != LittleEndian && v.Order != BigEndian {
		return xerrors.Errorf("unknown byte order: %d", v.Order)
	}
	if len(v.Data)%desc.ByteSize != 0 {
		return xerrors.Errorf("payload length %d is not a multiple of %d", len(v.Data), desc.ByteSize)
	}
	if len(v.Data) > maxVectorBytes {
		return xerrors.Errorf("payload longer than expected")
	}

	cw := cbg.NewCborWriter(w)
	if err := cw.WriteMajorTypeHeader(cbg.MajArray, 3); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(v.BitSize)); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, uint64(v.Order)); err != nil {
		return err
	}
	return cbg.WriteByteArray(cw, v.Data)
}

func (v *Vector) UnmarshalCBOR(r io.Reader) error {
	*v = Vector{}

	cr := cbg.NewCborReader(r)

	b, err := cr.ReadByte()
	if err != nil {
		return err
	}
	if b == cbg.CborNull[0] {
		return nil
	}
	if err := cr.UnreadByte(); err != nil {
		return err
	}

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajArray {
		return xerrors.Errorf("expected cbor array")
	}
	if extra != 3 {
		return xerrors.Errorf("expected 3 elements, got %d", extra)
	}

	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajUnsignedInt {
		return xerrors.Errorf("expected unsigned int for format width")
	}
	desc, ok := format.FromBitSize(int(extra))
	if !ok {
		return xerrors.Errorf("unsupported format width: %d bits", extra)
	}
	v.BitSize = desc.BitSize

	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajUnsignedInt {
		return xerrors.Errorf("expected unsigned int for byte order")
	}
	if extra > uint64(BigEndian) {
		return xerrors.Errorf("unknown byte order: %d", extra)
	}
	v.Order = ByteOrder(extra)

	data, err := cbg.ReadByteArray(cr, maxVectorBytes)
	if err != nil {
		return xerrors.Errorf("reading payload: %w", err)
	}
	if len(data)%desc.ByteSize != 0 {
		return xerrors.Errorf("payload length %d is not a multiple of %d", len(data), desc.ByteSize)
	}
	v.Data = data
	return nil
}

// Float64Vector packs vs into a binary64 Vector.
func Float64Vector(vs []float64, order ByteOrder) *Vector {
	return &Vector{
		BitSize: format.Binary64.BitSize,
		Order:   order,
		Data:    Float64SliceBytes(vs, order),
	}
}

// Float64s unpacks a binary64 Vector, reporting false for a vector of a
// different format or a malformed payload.
func (v *Vector) Float64s() ([]float64, bool) {
	if v.BitSize != format.Binary64.BitSize {
		return nil, false
	}
	return Float64SliceFromBytes(v.Data, v.Order)
}

// Float32Vector packs vs into a binary32 Vector.
func Float32Vector(vs []float32, order ByteOrder) *Vector {
	return &Vector{
		BitSize: format.Binary32.BitSize,
		Order:   order,
		Data:    Float32SliceBytes(vs, order),
	}
}

func (v *Vector) Float32s() ([]float32, bool) {
	if v.BitSize != format.Binary32.BitSize {
		return nil, false
	}
	return Float32SliceFromBytes(v.Data, v.Order)
}

// Float16Vector packs vs into a binary16 Vector.
func Float16Vector(vs []float16.Float16, order ByteOrder) *Vector {
	return &Vector{
		BitSize: format.Binary16.BitSize,
		Order:   order,
		Data:    Float16SliceBytes(vs, order),
	}
}

func (v *Vector) Float16s() ([]float16.Float16, bool) {
	if v.BitSize != format.Binary16.BitSize {
		return nil, false
	}
	return Float16SliceFromBytes(v.Data, v.Order)
}
