package encoding

import (
	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// EmpiricalPhasing handles EmpiricalPhasingMetricsOut.bin, versions 1 and 2.
// Version 2 widens the tile number to 32 bits.
var EmpiricalPhasing = newCodec(format.GroupEmpiricalPhasing,
	phasingVersion(1, section.CycleID), phasingVersion(2, section.LongCycleID))

func phasingVersion(version uint8, idl section.IDLayout) *VersionCodec[metric.PhasingMetric] {
	layout := section.Layout{
		Group:         format.GroupEmpiricalPhasing,
		Version:       version,
		HasRecordSize: true,
		RecordSize:    constSize(idl.Size() + 8),
	}

	return fixedVersion(layout, idl,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, _ section.Header) (metric.PhasingMetric, error) {
			return metric.PhasingMetric{
				CycleID:    cycleID(id),
				Phasing:    endian.Float32(engine, b),
				Prephasing: endian.Float32(engine, b[4:]),
			}, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.PhasingMetric, _ section.Header) []byte {
			dst = endian.AppendFloat32(engine, dst, m.Phasing)
			return endian.AppendFloat32(engine, dst, m.Prephasing)
		})
}
