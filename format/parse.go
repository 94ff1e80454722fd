package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/interop/errs"
)

// ParseMetricGroup maps a group name to its identifier.
//
// Matching is case-insensitive and accepts the file prefix form used by
// instrument software, so both "QCollapsed" and "q2030" resolve.
func ParseMetricGroup(name string) (MetricGroup, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty metric group name", errs.ErrInvalidArgument)
	}

	for i, groupName := range groupNames {
		if strings.EqualFold(groupName, trimmed) {
			return MetricGroup(i), nil
		}
	}

	if alias, ok := groupAliases[strings.ToLower(trimmed)]; ok {
		return alias, nil
	}

	return 0, fmt.Errorf("%w: unknown metric group %q", errs.ErrInvalidArgument, name)
}

var groupAliases = map[string]MetricGroup{
	"correctedintensity": GroupCorrectedInt,
	"q2030":              GroupQCollapsed,
	"phasing":            GroupEmpiricalPhasing,
}

// ParseCompressionType maps a compression name to its identifier.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidArgument, name)
	}
}
