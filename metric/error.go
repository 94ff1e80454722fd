package metric

// MaxMismatch is the largest mismatch count tracked per cluster.
const MaxMismatch = 4

// ErrorMetric holds the alignment error rate for one cycle of a tile.
type ErrorMetric struct {
	CycleID
	ErrorRate float32
	// MismatchCounts[n] is the number of clusters with n mismatches.
	MismatchCounts [MaxMismatch + 1]uint32
}
