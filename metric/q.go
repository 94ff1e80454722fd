package metric

import (
	"math"

	"github.com/arloliu/interop/section"
)

// MaxQScore is the histogram length of unbinned q-metric records.
const MaxQScore = 50

// QMetric holds the quality score histogram for one cycle of a tile, or of a
// lane for the QByLane group.
//
// Histogram is stored as it appears on the wire. Unbinned records have
// MaxQScore entries where entry i counts clusters of quality i+1. Binned
// version 6 records have one entry per header bin.
type QMetric struct {
	CycleID
	Histogram []uint32
}

// Total returns the number of clusters in the histogram.
func (m QMetric) Total() uint64 {
	var total uint64
	for _, c := range m.Histogram {
		total += uint64(c)
	}

	return total
}

// CountAtOrAbove returns the number of clusters with quality q or higher.
//
// bins is the header bin table. It is used when the histogram is binned,
// meaning its length equals the bin count.
func (m QMetric) CountAtOrAbove(q uint8, bins []section.QScoreBin) uint64 {
	var count uint64
	for i, c := range m.Histogram {
		if m.scoreAt(i, bins) >= q {
			count += uint64(c)
		}
	}

	return count
}

// PercentOverQ returns the percentage of clusters with quality q or higher, or
// NaN for an empty histogram.
func (m QMetric) PercentOverQ(q uint8, bins []section.QScoreBin) float32 {
	total := m.Total()
	if total == 0 {
		return float32(math.NaN())
	}

	return float32(float64(m.CountAtOrAbove(q, bins)) / float64(total) * 100)
}

// Median returns the median quality score, or zero for an empty histogram.
func (m QMetric) Median(bins []section.QScoreBin) uint8 {
	total := m.Total()
	if total == 0 {
		return 0
	}

	half := (total + 1) / 2
	var cumulative uint64
	for i, c := range m.Histogram {
		cumulative += uint64(c)
		if cumulative >= half {
			return m.scoreAt(i, bins)
		}
	}

	return m.scoreAt(len(m.Histogram)-1, bins)
}

func (m QMetric) scoreAt(i int, bins []section.QScoreBin) uint8 {
	if len(bins) > 0 && len(bins) == len(m.Histogram) {
		return bins[i].Value
	}

	return uint8(i + 1) //nolint:gosec // histogram length is bounded by MaxQScore
}

// QCollapsedMetric holds collapsed Q20 and Q30 counts for one cycle of a tile.
type QCollapsedMetric struct {
	CycleID
	Q20   uint32
	Q30   uint32
	Total uint32
	// MedianScore is NaN when the file version does not carry it.
	MedianScore float32
}

// PercentOverQ20 returns the percentage of clusters at or above Q20.
func (m QCollapsedMetric) PercentOverQ20() float32 {
	return percent(m.Q20, m.Total)
}

// PercentOverQ30 returns the percentage of clusters at or above Q30.
func (m QCollapsedMetric) PercentOverQ30() float32 {
	return percent(m.Q30, m.Total)
}

func percent(part, total uint32) float32 {
	if total == 0 {
		return float32(math.NaN())
	}

	return float32(float64(part) / float64(total) * 100)
}
