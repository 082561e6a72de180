package format

// Special bit patterns of the encodable formats. The binary256 format has
// no native scalar type and therefore no pattern constants here.

const (
	Binary16SignMask        uint16 = 0x8000
	Binary16ExponentMask    uint16 = 0x7C00
	Binary16SignificandMask uint16 = 0x03FF

	Binary16PositiveInfinity  uint16 = 0x7C00
	Binary16NegativeInfinity  uint16 = 0xFC00
	Binary16QuietNaN          uint16 = 0x7E00
	Binary16SmallestSubnormal uint16 = 0x0001
	Binary16SmallestNormal    uint16 = 0x0400
	Binary16LargestFinite     uint16 = 0x7BFF
)

const (
	Binary32SignMask        uint32 = 0x8000_0000
	Binary32ExponentMask    uint32 = 0x7F80_0000
	Binary32SignificandMask uint32 = 0x007F_FFFF

	Binary32PositiveInfinity  uint32 = 0x7F80_0000
	Binary32NegativeInfinity  uint32 = 0xFF80_0000
	Binary32QuietNaN          uint32 = 0x7FC0_0000
	Binary32SmallestSubnormal uint32 = 0x0000_0001
	Binary32SmallestNormal    uint32 = 0x0080_0000
	Binary32LargestFinite     uint32 = 0x7F7F_FFFF
)

const (
	Binary64SignMask        uint64 = 0x8000_0000_0000_0000
	Binary64ExponentMask    uint64 = 0x7FF0_0000_0000_0000
	Binary64SignificandMask uint64 = 0x000F_FFFF_FFFF_FFFF

	Binary64PositiveInfinity  uint64 = 0x7FF0_0000_0000_0000
	Binary64NegativeInfinity  uint64 = 0xFFF0_0000_0000_0000
	Binary64QuietNaN          uint64 = 0x7FF8_0000_0000_0000
	Binary64SmallestSubnormal uint64 = 0x0000_0000_0000_0001
	Binary64SmallestNormal    uint64 = 0x0010_0000_0000_0000
	Binary64LargestFinite     uint64 = 0x7FEF_FFFF_FFFF_FFFF
)
