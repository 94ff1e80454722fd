package encoding

import (
	"fmt"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// ExtendedTile handles ExtendedTileMetricsOut.bin, versions 1 to 3.
//
// Version 1 stores a coded value where code 0 is the occupied cluster count.
// Version 2 drops the code and widens the tile number. Version 3 adds the
// upper left corner of the tile.
var ExtendedTile = newCodec(format.GroupExtendedTile, extendedTileV1(), extendedTileV2(), extendedTileV3())

const extendedTileCodeOccupied uint16 = 0

func extendedTileLayout(version uint8, size int) section.Layout {
	return section.Layout{
		Group:         format.GroupExtendedTile,
		Version:       version,
		HasRecordSize: true,
		RecordSize:    constSize(size),
	}
}

func extendedTileV1() *VersionCodec[metric.ExtendedTileMetric] {
	return fixedVersion(extendedTileLayout(1, 10), section.TileID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.ExtendedTileMetric, error) {
			if code := engine.Uint16(b); code != extendedTileCodeOccupied {
				return metric.ExtendedTileMetric{}, fmt.Errorf("%w: unexpected extended tile code %d", errs.ErrBadFormat, code)
			}

			return metric.ExtendedTileMetric{
				TileID:               tileID(id),
				ClusterCountOccupied: endian.Float32(engine, b[2:]),
			}, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.ExtendedTileMetric, _ section.Header) []byte {
			dst = engine.AppendUint16(dst, extendedTileCodeOccupied)
			return endian.AppendFloat32(engine, dst, m.ClusterCountOccupied)
		})
}

func extendedTileV2() *VersionCodec[metric.ExtendedTileMetric] {
	return fixedVersion(extendedTileLayout(2, 10), section.LongTileID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.ExtendedTileMetric, error) {
			return metric.ExtendedTileMetric{
				TileID:               tileID(id),
				ClusterCountOccupied: endian.Float32(engine, b),
			}, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.ExtendedTileMetric, _ section.Header) []byte {
			return endian.AppendFloat32(engine, dst, m.ClusterCountOccupied)
		})
}

func extendedTileV3() *VersionCodec[metric.ExtendedTileMetric] {
	return fixedVersion(extendedTileLayout(3, 18), section.LongTileID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.ExtendedTileMetric, error) {
			return metric.ExtendedTileMetric{
				TileID:               tileID(id),
				ClusterCountOccupied: endian.Float32(engine, b),
				UpperLeft: metric.Point2D{
					X: endian.Float32(engine, b[4:]),
					Y: endian.Float32(engine, b[8:]),
				},
			}, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.ExtendedTileMetric, _ section.Header) []byte {
			dst = endian.AppendFloat32(engine, dst, m.ClusterCountOccupied)
			dst = endian.AppendFloat32(engine, dst, m.UpperLeft.X)
			return endian.AppendFloat32(engine, dst, m.UpperLeft.Y)
		})
}
