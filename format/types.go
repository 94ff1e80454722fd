package format

type (
	MetricGroup     uint8
	CompressionType uint8
)

// Metric groups. The numeric values are stable and may be persisted.
const (
	GroupCorrectedInt     MetricGroup = 0  // GroupCorrectedInt represents corrected intensity metrics.
	GroupError            MetricGroup = 1  // GroupError represents base-call error metrics.
	GroupExtraction       MetricGroup = 2  // GroupExtraction represents focus and intensity extraction metrics.
	GroupImage            MetricGroup = 3  // GroupImage represents image contrast metrics.
	GroupIndex            MetricGroup = 4  // GroupIndex represents sample index assignment metrics.
	GroupQ                MetricGroup = 5  // GroupQ represents quality score histograms.
	GroupTile             MetricGroup = 6  // GroupTile represents tile cluster metrics.
	GroupQByLane          MetricGroup = 7  // GroupQByLane represents quality score histograms aggregated per lane.
	GroupQCollapsed       MetricGroup = 8  // GroupQCollapsed represents collapsed Q20/Q30 counts.
	GroupEmpiricalPhasing MetricGroup = 9  // GroupEmpiricalPhasing represents empirical phasing metrics.
	GroupExtendedTile     MetricGroup = 10 // GroupExtendedTile represents extended tile metrics.
	GroupSummaryRun       MetricGroup = 11 // GroupSummaryRun represents run-level cluster counts.

	groupCount = 12
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents gzip compression.
)

var groupNames = [groupCount]string{
	GroupCorrectedInt:     "CorrectedInt",
	GroupError:            "Error",
	GroupExtraction:       "Extraction",
	GroupImage:            "Image",
	GroupIndex:            "Index",
	GroupQ:                "Q",
	GroupTile:             "Tile",
	GroupQByLane:          "QByLane",
	GroupQCollapsed:       "QCollapsed",
	GroupEmpiricalPhasing: "EmpiricalPhasing",
	GroupExtendedTile:     "ExtendedTile",
	GroupSummaryRun:       "SummaryRun",
}

// AllGroups returns every metric group in identifier order.
func AllGroups() []MetricGroup {
	groups := make([]MetricGroup, groupCount)
	for i := range groups {
		groups[i] = MetricGroup(i)
	}

	return groups
}

// IsValid reports whether g names a known metric group.
func (g MetricGroup) IsValid() bool {
	return g < groupCount
}

func (g MetricGroup) String() string {
	if !g.IsValid() {
		return "Unknown"
	}

	return groupNames[g]
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}
