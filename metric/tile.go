package metric

import (
	"cmp"
	"math"
	"slices"
)

// Tile metric codes. Read-level codes are offset by the zero-based read number.
const (
	CodeClusterDensity   uint16 = 100
	CodeClusterDensityPF uint16 = 101
	CodeClusterCount     uint16 = 102
	CodeClusterCountPF   uint16 = 103
	CodePhasing          uint16 = 200 // 200 + 2*read
	CodePrephasing       uint16 = 201 // 201 + 2*read
	CodePercentAligned   uint16 = 300 // 300 + read
	CodeControlLane      uint16 = 400
)

// TileEntry is one coded value of a tile metric.
type TileEntry struct {
	Code  uint16
	Value float32
}

// TileMetric holds the coded values reported for one tile.
//
// Entries keep wire order so that a record re-encodes to the same bytes.
type TileMetric struct {
	TileID
	Entries []TileEntry
}

// ReadMetric holds the read-level values of a tile metric.
type ReadMetric struct {
	Read           uint32
	PercentAligned float32
	Phasing        float32
	Prephasing     float32
}

// IsValidTileCode reports whether code is a known tile metric code.
func IsValidTileCode(code uint16) bool {
	switch {
	case code >= CodeClusterDensity && code <= CodeClusterCountPF:
		return true
	case code >= CodePhasing && code < CodePhasing+100:
		return true
	case code >= CodePercentAligned && code < CodePercentAligned+100:
		return true
	default:
		return code == CodeControlLane
	}
}

// Value returns the value stored for code, or NaN when absent.
func (m TileMetric) Value(code uint16) float32 {
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].Code == code {
			return m.Entries[i].Value
		}
	}

	return float32(math.NaN())
}

// Set stores value for code, replacing an existing entry.
func (m *TileMetric) Set(code uint16, value float32) {
	for i := range m.Entries {
		if m.Entries[i].Code == code {
			m.Entries[i].Value = value
			return
		}
	}
	m.Entries = append(m.Entries, TileEntry{Code: code, Value: value})
}

// ClusterDensity returns the cluster density in clusters per mm².
func (m TileMetric) ClusterDensity() float32 { return m.Value(CodeClusterDensity) }

// ClusterDensityPF returns the density of clusters passing filter.
func (m TileMetric) ClusterDensityPF() float32 { return m.Value(CodeClusterDensityPF) }

// ClusterCount returns the number of clusters.
func (m TileMetric) ClusterCount() float32 { return m.Value(CodeClusterCount) }

// ClusterCountPF returns the number of clusters passing filter.
func (m TileMetric) ClusterCountPF() float32 { return m.Value(CodeClusterCountPF) }

// IsControlLane reports whether the tile carries the control lane marker.
func (m TileMetric) IsControlLane() bool {
	return slices.ContainsFunc(m.Entries, func(e TileEntry) bool { return e.Code == CodeControlLane })
}

// Reads returns the read-level values, ordered by read number.
func (m TileMetric) Reads() []ReadMetric {
	byRead := make(map[uint32]*ReadMetric)
	get := func(read uint32) *ReadMetric {
		if rm, ok := byRead[read]; ok {
			return rm
		}
		nan := float32(math.NaN())
		rm := &ReadMetric{Read: read, PercentAligned: nan, Phasing: nan, Prephasing: nan}
		byRead[read] = rm

		return rm
	}

	for _, e := range m.Entries {
		switch {
		case e.Code >= CodePhasing && e.Code < CodePhasing+100:
			offset := uint32(e.Code - CodePhasing)
			rm := get(offset/2 + 1)
			if offset%2 == 0 {
				rm.Phasing = e.Value
			} else {
				rm.Prephasing = e.Value
			}
		case e.Code >= CodePercentAligned && e.Code < CodePercentAligned+100:
			get(uint32(e.Code-CodePercentAligned) + 1).PercentAligned = e.Value
		}
	}

	reads := make([]ReadMetric, 0, len(byRead))
	for _, rm := range byRead {
		reads = append(reads, *rm)
	}
	slices.SortFunc(reads, func(a, b ReadMetric) int { return cmp.Compare(a.Read, b.Read) })

	return reads
}

// PercentPhasing returns the phasing of a one-based read as a percentage.
func (m TileMetric) PercentPhasing(read uint32) float32 {
	return m.Value(CodePhasing+uint16(2*(read-1))) * 100 //nolint:gosec
}

// PercentPrephasing returns the prephasing of a one-based read as a percentage.
func (m TileMetric) PercentPrephasing(read uint32) float32 {
	return m.Value(CodePrephasing+uint16(2*(read-1))) * 100 //nolint:gosec
}

// PercentAligned returns the aligned percentage of a one-based read.
func (m TileMetric) PercentAligned(read uint32) float32 {
	return m.Value(CodePercentAligned + uint16(read-1)) //nolint:gosec
}
