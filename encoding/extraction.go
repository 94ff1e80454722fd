package encoding

import (
	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// Extraction handles ExtractionMetricsOut.bin, version 2.
var Extraction = newCodec(format.GroupExtraction, extractionV2())

func extractionV2() *VersionCodec[metric.ExtractionMetric] {
	layout := section.Layout{
		Group:         format.GroupExtraction,
		Version:       2,
		HasRecordSize: true,
		RecordSize:    constSize(38),
	}

	return fixedVersion(layout, section.CycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.ExtractionMetric, error) {
			m := metric.ExtractionMetric{CycleID: cycleID(id)}
			off := 0
			for i := range m.FWHM {
				m.FWHM[i] = endian.Float32(engine, b[off:])
				off += 4
			}
			off += readUint16s(engine, b[off:], m.MaxIntensity[:])
			m.DateTimeRaw = engine.Uint64(b[off:])

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.ExtractionMetric, _ section.Header) []byte {
			for _, f := range m.FWHM {
				dst = endian.AppendFloat32(engine, dst, f)
			}
			dst = appendUint16s(engine, dst, m.MaxIntensity[:])

			return engine.AppendUint64(dst, m.DateTimeRaw)
		})
}
