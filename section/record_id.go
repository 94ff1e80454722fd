package section

import (
	"math"

	"github.com/arloliu/interop/endian"
)

// RecordID is the identifier block at the start of every wire record.
type RecordID struct {
	Lane        uint32
	Tile        uint32
	CycleOrRead uint32
}

// IDLayout describes the width of the identifier fields for one format version.
type IDLayout struct {
	// TileSize is ShortTileSize or LongTileSize.
	TileSize int
	// HasCycleOrRead is false for tile-level groups whose records carry no third field.
	HasCycleOrRead bool
}

var (
	// CycleID is the legacy lane/tile/cycle identifier with a 16-bit tile.
	CycleID = IDLayout{TileSize: ShortTileSize, HasCycleOrRead: true}
	// LongCycleID is the lane/tile/cycle identifier with a 32-bit tile.
	LongCycleID = IDLayout{TileSize: LongTileSize, HasCycleOrRead: true}
	// TileID is the legacy lane/tile identifier with a 16-bit tile.
	TileID = IDLayout{TileSize: ShortTileSize}
	// LongTileID is the lane/tile identifier with a 32-bit tile.
	LongTileID = IDLayout{TileSize: LongTileSize}
)

// Size returns the encoded size of the identifier in bytes.
func (l IDLayout) Size() int {
	size := LaneSize + l.TileSize
	if l.HasCycleOrRead {
		size += CycleOrReadSize
	}

	return size
}

// Decode reads the identifier from the start of b. The caller guarantees that
// b holds at least Size bytes.
func (l IDLayout) Decode(engine endian.EndianEngine, b []byte) RecordID {
	id := RecordID{Lane: uint32(engine.Uint16(b))}
	off := LaneSize
	if l.TileSize == LongTileSize {
		id.Tile = engine.Uint32(b[off:])
	} else {
		id.Tile = uint32(engine.Uint16(b[off:]))
	}
	off += l.TileSize
	if l.HasCycleOrRead {
		id.CycleOrRead = uint32(engine.Uint16(b[off:]))
	}

	return id
}

// Append appends the encoded identifier to dst. Values are truncated to their
// wire widths; call Fits first to reject them.
func (l IDLayout) Append(engine endian.EndianEngine, dst []byte, id RecordID) []byte {
	dst = engine.AppendUint16(dst, uint16(id.Lane)) //nolint:gosec // checked by Fits
	if l.TileSize == LongTileSize {
		dst = engine.AppendUint32(dst, id.Tile)
	} else {
		dst = engine.AppendUint16(dst, uint16(id.Tile)) //nolint:gosec // checked by Fits
	}
	if l.HasCycleOrRead {
		dst = engine.AppendUint16(dst, uint16(id.CycleOrRead)) //nolint:gosec // checked by Fits
	}

	return dst
}

// Fits reports whether every field of id can be represented by the layout.
func (l IDLayout) Fits(id RecordID) bool {
	if id.Lane > math.MaxUint16 || id.CycleOrRead > math.MaxUint16 {
		return false
	}
	if l.TileSize == ShortTileSize && id.Tile > math.MaxUint16 {
		return false
	}

	return l.HasCycleOrRead || id.CycleOrRead == 0
}
