package encoding

import (
	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// Q handles QMetricsOut.bin, versions 4 to 6.
//
// Version 5 adds an optional bin table to the header while records keep the
// full 50-entry histogram. Version 6 stores one count per declared bin.
var Q = newCodec(format.GroupQ, qV4(format.GroupQ), qV5(format.GroupQ), qV6(format.GroupQ))

// QByLane handles QMetricsByLaneOut.bin, which shares the q-metric layout.
var QByLane = newCodec(format.GroupQByLane, qV4(format.GroupQByLane), qV5(format.GroupQByLane), qV6(format.GroupQByLane))

const qFullRecordSize = 6 + 4*metric.MaxQScore

// qHistogramLength returns the number of counts stored per record.
func qHistogramLength(version uint8, h section.Header) int {
	if version >= 6 && len(h.Bins) > 0 {
		return len(h.Bins)
	}

	return metric.MaxQScore
}

func qLayout(group format.MetricGroup, version uint8) section.Layout {
	return section.Layout{
		Group:         group,
		Version:       version,
		HasRecordSize: true,
		HasBins:       version >= 5,
		RecordSize: func(h section.Header) int {
			return section.CycleID.Size() + 4*qHistogramLength(version, h)
		},
	}
}

func qVersion(group format.MetricGroup, version uint8) *VersionCodec[metric.QMetric] {
	return fixedVersion(qLayout(group, version), section.CycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, h section.Header) (metric.QMetric, error) {
			m := metric.QMetric{
				CycleID:   cycleID(id),
				Histogram: make([]uint32, qHistogramLength(version, h)),
			}
			for i := range m.Histogram {
				m.Histogram[i] = engine.Uint32(b[4*i:])
			}

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.QMetric, _ section.Header) []byte {
			for _, c := range m.Histogram {
				dst = engine.AppendUint32(dst, c)
			}

			return dst
		})
}

func qV4(group format.MetricGroup) *VersionCodec[metric.QMetric] { return qVersion(group, 4) }
func qV5(group format.MetricGroup) *VersionCodec[metric.QMetric] { return qVersion(group, 5) }
func qV6(group format.MetricGroup) *VersionCodec[metric.QMetric] { return qVersion(group, 6) }
