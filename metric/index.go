package metric

// IndexInfo is the cluster count assigned to one sample index.
type IndexInfo struct {
	IndexSequence string
	ClusterCount  uint64
	SampleID      string
	ProjectName   string
}

// IndexMetric holds the sample index assignments of one read of a tile.
type IndexMetric struct {
	ReadID
	Indices []IndexInfo
}

// TotalClusters sums the cluster counts over every index.
func (m IndexMetric) TotalClusters() uint64 {
	var total uint64
	for _, info := range m.Indices {
		total += info.ClusterCount
	}

	return total
}

// Find returns the assignment for an index sequence.
func (m IndexMetric) Find(sequence string) (IndexInfo, bool) {
	for _, info := range m.Indices {
		if info.IndexSequence == sequence {
			return info, true
		}
	}

	return IndexInfo{}, false
}
