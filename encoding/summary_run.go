package encoding

import (
	"fmt"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// SummaryRun handles SummaryRunMetricsOut.bin, version 1.
//
// The header stores the record size as a 32-bit word. Each record is a 16-bit
// run identifier followed by four binary64 cluster counts.
var SummaryRun = newCodec(format.GroupSummaryRun, summaryRunV1())

const (
	summaryRunIDSize     = 2
	summaryRunRecordSize = summaryRunIDSize + 4*8
)

func summaryRunV1() *VersionCodec[metric.SummaryRunMetric] {
	layout := section.Layout{
		Group:          format.GroupSummaryRun,
		Version:        1,
		HasRecordSize:  true,
		WideRecordSize: true,
		RecordSize:     constSize(summaryRunRecordSize),
	}

	return &VersionCodec[metric.SummaryRunMetric]{
		layout: layout,
		engine: endian.GetLittleEndianEngine(),
		decode: func(engine endian.EndianEngine, data []byte, _ section.Header) (metric.SummaryRunMetric, int, error) {
			if len(data) < summaryRunRecordSize {
				return metric.SummaryRunMetric{}, 0, fmt.Errorf("%w: SummaryRun v1 record needs %d bytes, %d remain",
					errs.ErrIncompleteFile, summaryRunRecordSize, len(data))
			}
			b := data[summaryRunIDSize:]

			return metric.SummaryRunMetric{
				RunID:                      engine.Uint16(data),
				OccupancyProxyClusterCount: endian.Float64(engine, b),
				RawClusterCount:            endian.Float64(engine, b[8:]),
				OccupiedClusterCount:       endian.Float64(engine, b[16:]),
				PFClusterCount:             endian.Float64(engine, b[24:]),
			}, summaryRunRecordSize, nil
		},
		encode: func(engine endian.EndianEngine, dst []byte, m metric.SummaryRunMetric, _ section.Header) ([]byte, error) {
			dst = engine.AppendUint16(dst, m.RunID)
			dst = endian.AppendFloat64(engine, dst, m.OccupancyProxyClusterCount)
			dst = endian.AppendFloat64(engine, dst, m.RawClusterCount)
			dst = endian.AppendFloat64(engine, dst, m.OccupiedClusterCount)

			return endian.AppendFloat64(engine, dst, m.PFClusterCount), nil
		},
		size: func(metric.SummaryRunMetric, section.Header) int {
			return summaryRunRecordSize
		},
	}
}
