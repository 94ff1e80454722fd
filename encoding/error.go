package encoding

import (
	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// Error handles ErrorMetricsOut.bin, version 3.
var Error = newCodec(format.GroupError, errorV3())

func errorV3() *VersionCodec[metric.ErrorMetric] {
	layout := section.Layout{
		Group:         format.GroupError,
		Version:       3,
		HasRecordSize: true,
		RecordSize:    constSize(30),
	}

	return fixedVersion(layout, section.CycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.ErrorMetric, error) {
			m := metric.ErrorMetric{CycleID: cycleID(id), ErrorRate: endian.Float32(engine, b)}
			for i := range m.MismatchCounts {
				m.MismatchCounts[i] = engine.Uint32(b[4+4*i:])
			}

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.ErrorMetric, _ section.Header) []byte {
			dst = endian.AppendFloat32(engine, dst, m.ErrorRate)
			for _, c := range m.MismatchCounts {
				dst = engine.AppendUint32(dst, c)
			}

			return dst
		})
}
