package encoding

import (
	"math"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// QCollapsed handles QMetrics2030Out.bin, versions 2 to 6.
//
// Records carry Q20, Q30 and total counts, optionally followed by the median
// score. The header record size tells which form the file uses. Versions 5
// and 6 add the optional bin table to the header.
var QCollapsed = newCodec(format.GroupQCollapsed,
	qCollapsedVersion(2), qCollapsedVersion(3), qCollapsedVersion(4), qCollapsedVersion(5), qCollapsedVersion(6))

const (
	qCollapsedShortSize = 6 + 3*4
	qCollapsedFullSize  = qCollapsedShortSize + 4
)

func qCollapsedVersion(version uint8) *VersionCodec[metric.QCollapsedMetric] {
	layout := section.Layout{
		Group:          format.GroupQCollapsed,
		Version:        version,
		HasRecordSize:  true,
		HasBins:        version >= 5,
		RecordSize:     constSize(qCollapsedFullSize),
		AltRecordSizes: []int{qCollapsedShortSize},
	}

	return fixedVersion(layout, section.CycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.QCollapsedMetric, error) {
			m := metric.QCollapsedMetric{
				CycleID:     cycleID(id),
				Q20:         engine.Uint32(b),
				Q30:         engine.Uint32(b[4:]),
				Total:       engine.Uint32(b[8:]),
				MedianScore: float32(math.NaN()),
			}
			if len(b) >= 16 {
				m.MedianScore = endian.Float32(engine, b[12:])
			}

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.QCollapsedMetric, h section.Header) []byte {
			dst = engine.AppendUint32(dst, m.Q20)
			dst = engine.AppendUint32(dst, m.Q30)
			dst = engine.AppendUint32(dst, m.Total)
			if h.RecordSize == qCollapsedFullSize {
				dst = endian.AppendFloat32(engine, dst, m.MedianScore)
			}

			return dst
		})
}
