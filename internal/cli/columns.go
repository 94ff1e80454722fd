package cli

import (
	"fmt"
	"strconv"

	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// table lays out the records of one metric group as text columns.
//
// A record may span several rows: one per tile entry, index assignment or
// image channel.
type table struct {
	header func(h section.Header) []string
	rows   func(rec metric.Record) [][]string
}

var (
	cycleColumns = []string{"Lane", "Tile", "Cycle"}
	tileColumns  = []string{"Lane", "Tile"}
)

func fixedHeader(parts ...[]string) func(section.Header) []string {
	var cols []string
	for _, p := range parts {
		cols = append(cols, p...)
	}

	return func(section.Header) []string { return cols }
}

func numbered(prefix string, n int) []string {
	cols := make([]string, n)
	for i := range cols {
		cols[i] = prefix + strconv.Itoa(i+1)
	}

	return cols
}

// typedRows adapts a row function of one record type to metric.Record.
func typedRows[T metric.Record](fn func(T) [][]string) func(metric.Record) [][]string {
	return func(rec metric.Record) [][]string {
		r, ok := rec.(T)
		if !ok {
			return [][]string{{fmt.Sprintf("%v", rec)}}
		}

		return fn(r)
	}
}

func u[T ~uint16 | ~uint32 | ~uint64](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func f32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func f64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func cycleCells(id metric.CycleID) []string {
	return []string{u(id.Lane), u(id.Tile), u(id.Cycle)}
}

func tileCells(id metric.TileID) []string {
	return []string{u(id.Lane), u(id.Tile)}
}

func qHeader(h section.Header) []string {
	if h.BinCount() == 0 {
		return append(append([]string(nil), cycleColumns...), numbered("Q", metric.MaxQScore)...)
	}

	cols := append([]string(nil), cycleColumns...)
	for _, b := range h.Bins {
		cols = append(cols, "Q"+strconv.Itoa(int(b.Value)))
	}

	return cols
}

func qRows(m metric.QMetric) [][]string {
	row := cycleCells(m.CycleID)
	for _, c := range m.Histogram {
		row = append(row, u(c))
	}

	return [][]string{row}
}

var tables = map[format.MetricGroup]table{
	format.GroupCorrectedInt: {
		header: fixedHeader(cycleColumns, []string{"AverageCycleIntensity"},
			[]string{"AllA", "AllC", "AllG", "AllT", "CalledA", "CalledC", "CalledG", "CalledT"},
			[]string{"NoCalls", "CountA", "CountC", "CountG", "CountT", "SignalToNoise"}),
		rows: typedRows(func(m metric.CorrectedIntMetric) [][]string {
			row := append(cycleCells(m.CycleID), u(m.AverageCycleIntensity))
			for _, v := range m.CorrectedIntAll {
				row = append(row, u(v))
			}
			for _, v := range m.CorrectedIntCalled {
				row = append(row, u(v))
			}
			for _, v := range m.CalledCounts {
				row = append(row, u(v))
			}

			return [][]string{append(row, f32(m.SignalToNoise))}
		}),
	},
	format.GroupError: {
		header: fixedHeader(cycleColumns, []string{"ErrorRate"}, numbered("Mismatch", metric.MaxMismatch+1)),
		rows: typedRows(func(m metric.ErrorMetric) [][]string {
			row := append(cycleCells(m.CycleID), f32(m.ErrorRate))
			for _, c := range m.MismatchCounts {
				row = append(row, u(c))
			}

			return [][]string{row}
		}),
	},
	format.GroupExtraction: {
		header: fixedHeader(cycleColumns, numbered("FWHM", metric.NumChannels),
			numbered("MaxIntensity", metric.NumChannels), []string{"DateTime"}),
		rows: typedRows(func(m metric.ExtractionMetric) [][]string {
			row := cycleCells(m.CycleID)
			for _, v := range m.FWHM {
				row = append(row, f32(v))
			}
			for _, v := range m.MaxIntensity {
				row = append(row, u(v))
			}

			return [][]string{append(row, u(m.DateTimeRaw))}
		}),
	},
	format.GroupImage: {
		header: fixedHeader(cycleColumns, []string{"Channel", "MinContrast", "MaxContrast"}),
		rows: typedRows(func(m metric.ImageMetric) [][]string {
			rows := make([][]string, 0, m.ChannelCount())
			for ch := range m.ChannelCount() {
				rows = append(rows, append(cycleCells(m.CycleID), strconv.Itoa(ch), u(m.MinContrast[ch]), u(m.MaxContrast[ch])))
			}

			return rows
		}),
	},
	format.GroupIndex: {
		header: fixedHeader([]string{"Lane", "Tile", "Read", "IndexSequence", "ClusterCount", "SampleID", "ProjectName"}),
		rows: typedRows(func(m metric.IndexMetric) [][]string {
			rows := make([][]string, 0, len(m.Indices))
			for _, info := range m.Indices {
				rows = append(rows, []string{
					u(m.Lane), u(m.Tile), u(m.Read),
					info.IndexSequence, u(info.ClusterCount), info.SampleID, info.ProjectName,
				})
			}

			return rows
		}),
	},
	format.GroupQ:       {header: qHeader, rows: typedRows(qRows)},
	format.GroupQByLane: {header: qHeader, rows: typedRows(qRows)},
	format.GroupQCollapsed: {
		header: fixedHeader(cycleColumns, []string{"Q20", "Q30", "Total", "MedianScore"}),
		rows: typedRows(func(m metric.QCollapsedMetric) [][]string {
			return [][]string{append(cycleCells(m.CycleID), u(m.Q20), u(m.Q30), u(m.Total), f32(m.MedianScore))}
		}),
	},
	format.GroupTile: {
		header: fixedHeader(tileColumns, []string{"Code", "Value"}),
		rows: typedRows(func(m metric.TileMetric) [][]string {
			rows := make([][]string, 0, len(m.Entries))
			for _, e := range m.Entries {
				rows = append(rows, append(tileCells(m.TileID), u(e.Code), f32(e.Value)))
			}

			return rows
		}),
	},
	format.GroupEmpiricalPhasing: {
		header: fixedHeader(cycleColumns, []string{"Phasing", "Prephasing"}),
		rows: typedRows(func(m metric.PhasingMetric) [][]string {
			return [][]string{append(cycleCells(m.CycleID), f32(m.Phasing), f32(m.Prephasing))}
		}),
	},
	format.GroupExtendedTile: {
		header: fixedHeader(tileColumns, []string{"ClusterCountOccupied", "UpperLeftX", "UpperLeftY"}),
		rows: typedRows(func(m metric.ExtendedTileMetric) [][]string {
			return [][]string{append(tileCells(m.TileID), f32(m.ClusterCountOccupied), f32(m.UpperLeft.X), f32(m.UpperLeft.Y))}
		}),
	},
	format.GroupSummaryRun: {
		header: fixedHeader([]string{"RawClusterCount", "OccupiedClusterCount", "PFClusterCount", "OccupancyProxyClusterCount"}),
		rows: typedRows(func(m metric.SummaryRunMetric) [][]string {
			return [][]string{{f64(m.RawClusterCount), f64(m.OccupiedClusterCount), f64(m.PFClusterCount), f64(m.OccupancyProxyClusterCount)}}
		}),
	},
}
