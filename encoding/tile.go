package encoding

import (
	"fmt"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// Tile handles TileMetricsOut.bin, version 2.
//
// Each wire record holds one coded value for a tile. The values of a tile are
// merged into a single TileMetric whose entries keep wire order.
var Tile = newCodec(format.GroupTile, tileV2())

const tileV2RecordSize = 10

func mergeTile(existing *metric.TileMetric, incoming metric.TileMetric) {
	existing.Entries = append(existing.Entries, incoming.Entries...)
}

func tileV2() *VersionCodec[metric.TileMetric] {
	layout := section.Layout{
		Group:         format.GroupTile,
		Version:       2,
		HasRecordSize: true,
		RecordSize:    constSize(tileV2RecordSize),
	}
	idl := section.TileID

	decode := func(engine endian.EndianEngine, data []byte, _ section.Header) (metric.TileMetric, int, error) {
		if len(data) < tileV2RecordSize {
			return metric.TileMetric{}, 0, fmt.Errorf("%w: Tile v2 record needs %d bytes, %d remain",
				errs.ErrIncompleteFile, tileV2RecordSize, len(data))
		}
		id := idl.Decode(engine, data)
		off := idl.Size()
		code := engine.Uint16(data[off:])
		if !metric.IsValidTileCode(code) {
			return metric.TileMetric{}, 0, fmt.Errorf("%w: unexpected tile code %d", errs.ErrBadFormat, code)
		}

		return metric.TileMetric{
			TileID:  tileID(id),
			Entries: []metric.TileEntry{{Code: code, Value: endian.Float32(engine, data[off+2:])}},
		}, tileV2RecordSize, nil
	}

	return multiVersion(layout, idl, decode, &multiRecord[metric.TileMetric]{
		merge: mergeTile,
		part: func(stored, _ metric.TileMetric) int {
			return len(stored.Entries) - 1
		},
		parts: func(m metric.TileMetric) int {
			return len(m.Entries)
		},
		appendPart: func(engine endian.EndianEngine, dst []byte, m metric.TileMetric, part int) ([]byte, error) {
			id := recordID(m)
			if !idl.Fits(id) {
				return dst, fmt.Errorf("%w: Tile v2 cannot encode record id %s", errs.ErrInvalidArgument, m.Key())
			}
			e := m.Entries[part]
			if !metric.IsValidTileCode(e.Code) {
				return dst, fmt.Errorf("%w: unexpected tile code %d", errs.ErrInvalidArgument, e.Code)
			}
			dst = idl.Append(engine, dst, id)
			dst = engine.AppendUint16(dst, e.Code)

			return endian.AppendFloat32(engine, dst, e.Value), nil
		},
		partSize: func(metric.TileMetric, int) int {
			return tileV2RecordSize
		},
	})
}
