package metric

import "math"

// DNABase is the index of a called base in per-base arrays.
type DNABase int

const (
	BaseA DNABase = 0
	BaseC DNABase = 1
	BaseG DNABase = 2
	BaseT DNABase = 3

	NumBases = 4 // number of called bases
)

// MissingIntensity marks an intensity field the file version does not carry.
const MissingIntensity = math.MaxUint16

var baseNames = [NumBases]string{"A", "C", "G", "T"}

func (b DNABase) String() string {
	if b < 0 || b >= NumBases {
		return "N"
	}

	return baseNames[b]
}

// CorrectedIntMetric holds corrected intensity and base call counts for one cycle of a tile.
//
// Fields missing from a file version keep documented defaults:
// AverageCycleIntensity is zero, intensity arrays hold MissingIntensity and
// SignalToNoise is NaN.
type CorrectedIntMetric struct {
	CycleID
	AverageCycleIntensity uint16
	// CorrectedIntAll is the corrected intensity over all clusters, per base.
	CorrectedIntAll [NumBases]uint16
	// CorrectedIntCalled is the corrected intensity over clusters called as the base.
	CorrectedIntCalled [NumBases]uint16
	// CalledCounts holds the no-call count followed by the A, C, G and T counts.
	CalledCounts  [NumBases + 1]uint32
	SignalToNoise float32
}

// NoCalls returns the number of clusters without a base call.
func (m CorrectedIntMetric) NoCalls() uint32 {
	return m.CalledCounts[0]
}

// CalledCount returns the number of clusters called as base b.
func (m CorrectedIntMetric) CalledCount(b DNABase) uint32 {
	if b < 0 || b >= NumBases {
		return m.CalledCounts[0]
	}

	return m.CalledCounts[b+1]
}

// TotalCalls sums the called counts, optionally including no-calls.
func (m CorrectedIntMetric) TotalCalls(withNoCalls bool) uint64 {
	var total uint64
	start := 1
	if withNoCalls {
		start = 0
	}
	for _, c := range m.CalledCounts[start:] {
		total += uint64(c)
	}

	return total
}

// PercentBase returns the percentage of called clusters that are base b, or NaN
// when nothing was called.
func (m CorrectedIntMetric) PercentBase(b DNABase) float32 {
	total := m.TotalCalls(false)
	if total == 0 {
		return float32(math.NaN())
	}

	return float32(float64(m.CalledCount(b)) / float64(total) * 100)
}

// HasSignalToNoise reports whether the record carries a signal to noise ratio.
func (m CorrectedIntMetric) HasSignalToNoise() bool {
	return !math.IsNaN(float64(m.SignalToNoise))
}
