package encoding

import (
	"math"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// CorrectedInt handles CorrectedIntMetricsOut.bin, versions 2 to 4.
//
// Version 2 carries every field. Version 3 drops the average cycle intensity,
// the corrected intensity over all clusters and the signal to noise ratio.
// Version 4 keeps only the called counts and widens the tile number to 32 bits.
var CorrectedInt = newCodec(format.GroupCorrectedInt,
	correctedIntV2(), correctedIntV3(), correctedIntV4())

func correctedIntLayout(version uint8, size int) section.Layout {
	return section.Layout{
		Group:         format.GroupCorrectedInt,
		Version:       version,
		HasRecordSize: true,
		RecordSize:    constSize(size),
	}
}

// newCorrectedInt returns a record with the defaults of fields a version omits.
func newCorrectedInt(id section.RecordID) metric.CorrectedIntMetric {
	m := metric.CorrectedIntMetric{
		CycleID:       cycleID(id),
		SignalToNoise: float32(math.NaN()),
	}
	for i := range metric.NumBases {
		m.CorrectedIntAll[i] = metric.MissingIntensity
		m.CorrectedIntCalled[i] = metric.MissingIntensity
	}

	return m
}

func readCalledCounts(engine endian.EndianEngine, b []byte, m *metric.CorrectedIntMetric) int {
	for i := range m.CalledCounts {
		m.CalledCounts[i] = engine.Uint32(b[4*i:])
	}

	return 4 * len(m.CalledCounts)
}

func appendCalledCounts(engine endian.EndianEngine, dst []byte, m metric.CorrectedIntMetric) []byte {
	for _, c := range m.CalledCounts {
		dst = engine.AppendUint32(dst, c)
	}

	return dst
}

func readUint16s(engine endian.EndianEngine, b []byte, dst []uint16) int {
	for i := range dst {
		dst[i] = engine.Uint16(b[2*i:])
	}

	return 2 * len(dst)
}

func appendUint16s(engine endian.EndianEngine, dst []byte, values []uint16) []byte {
	for _, v := range values {
		dst = engine.AppendUint16(dst, v)
	}

	return dst
}

func correctedIntV2() *VersionCodec[metric.CorrectedIntMetric] {
	return fixedVersion(correctedIntLayout(2, 48), section.CycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.CorrectedIntMetric, error) {
			m := newCorrectedInt(id)
			m.AverageCycleIntensity = engine.Uint16(b)
			off := 2
			off += readUint16s(engine, b[off:], m.CorrectedIntAll[:])
			off += readUint16s(engine, b[off:], m.CorrectedIntCalled[:])
			off += readCalledCounts(engine, b[off:], &m)
			m.SignalToNoise = endian.Float32(engine, b[off:])

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.CorrectedIntMetric, _ section.Header) []byte {
			dst = engine.AppendUint16(dst, m.AverageCycleIntensity)
			dst = appendUint16s(engine, dst, m.CorrectedIntAll[:])
			dst = appendUint16s(engine, dst, m.CorrectedIntCalled[:])
			dst = appendCalledCounts(engine, dst, m)

			return endian.AppendFloat32(engine, dst, m.SignalToNoise)
		})
}

func correctedIntV3() *VersionCodec[metric.CorrectedIntMetric] {
	return fixedVersion(correctedIntLayout(3, 34), section.CycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.CorrectedIntMetric, error) {
			m := newCorrectedInt(id)
			off := readUint16s(engine, b, m.CorrectedIntCalled[:])
			readCalledCounts(engine, b[off:], &m)

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.CorrectedIntMetric, _ section.Header) []byte {
			dst = appendUint16s(engine, dst, m.CorrectedIntCalled[:])
			return appendCalledCounts(engine, dst, m)
		})
}

func correctedIntV4() *VersionCodec[metric.CorrectedIntMetric] {
	return fixedVersion(correctedIntLayout(4, 28), section.LongCycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.CorrectedIntMetric, error) {
			m := newCorrectedInt(id)
			readCalledCounts(engine, b, &m)

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.CorrectedIntMetric, _ section.Header) []byte {
			return appendCalledCounts(engine, dst, m)
		})
}
