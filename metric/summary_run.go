package metric

import "math"

// SummaryRunMetric holds the cluster counts of a whole run.
//
// A run-level file carries a single record. Counts the instrument did not
// report are NaN.
type SummaryRunMetric struct {
	// RunID is the identifier word opening the wire record. Instrument
	// software writes zero.
	RunID                      uint16
	OccupancyProxyClusterCount float64
	RawClusterCount            float64
	OccupiedClusterCount       float64
	PFClusterCount             float64
}

// NewSummaryRunMetric returns a record with every count missing.
func NewSummaryRunMetric() SummaryRunMetric {
	nan := math.NaN()
	return SummaryRunMetric{
		OccupancyProxyClusterCount: nan,
		RawClusterCount:            nan,
		OccupiedClusterCount:       nan,
		PFClusterCount:             nan,
	}
}

// Key implements Record. Run-level records have no lane or tile.
func (m SummaryRunMetric) Key() Key {
	return Key{ID: uint32(m.RunID)}
}

// PercentPF returns the share of raw clusters passing filter, in percent.
func (m SummaryRunMetric) PercentPF() float64 {
	return percentOf(m.PFClusterCount, m.RawClusterCount)
}

// PercentOccupied returns the share of raw clusters that are occupied, in percent.
func (m SummaryRunMetric) PercentOccupied() float64 {
	return percentOf(m.OccupiedClusterCount, m.RawClusterCount)
}

// PercentOccupancyProxy returns the occupancy proxy count relative to the
// clusters passing filter, in percent.
func (m SummaryRunMetric) PercentOccupancyProxy() float64 {
	return percentOf(m.OccupancyProxyClusterCount, m.PFClusterCount)
}

func percentOf(part, whole float64) float64 {
	if math.IsNaN(part) || math.IsNaN(whole) {
		return math.NaN()
	}

	return part / whole * 100
}
