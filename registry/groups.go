package registry

import (
	"github.com/arloliu/interop/format"
)

// Instrument selects instrument specific group requirements.
type Instrument uint8

const (
	UnknownInstrument Instrument = iota // UnknownInstrument applies no instrument specific rules.
	MiSeq                               // MiSeq instrument.
	HiSeq                               // HiSeq instrument.
	NextSeq                             // NextSeq instrument.
	NovaSeq                             // NovaSeq instrument, which stores phasing outside the tile file.
)

// SummaryGroups returns the groups a run summary reads.
//
// NovaSeq runs add EmpiricalPhasing, since their tile files carry no phasing
// estimates.
func SummaryGroups(instrument Instrument) []format.MetricGroup {
	groups := []format.MetricGroup{
		format.GroupQ,
		format.GroupTile,
		format.GroupError,
		format.GroupExtraction,
		format.GroupCorrectedInt,
	}
	if instrument == NovaSeq {
		groups = append(groups, format.GroupEmpiricalPhasing)
	}

	return groups
}

// IndexGroups returns the groups an index summary reads.
func IndexGroups() []format.MetricGroup {
	return []format.MetricGroup{format.GroupIndex, format.GroupTile}
}

// ImagingTableGroups returns the groups that supply imaging table columns.
func ImagingTableGroups() []format.MetricGroup {
	return []format.MetricGroup{
		format.GroupCorrectedInt,
		format.GroupError,
		format.GroupExtraction,
		format.GroupImage,
		format.GroupQ,
		format.GroupTile,
		format.GroupEmpiricalPhasing,
		format.GroupExtendedTile,
	}
}

// GroupsToLoad expands groups with the groups they depend on.
//
// Q pulls in QCollapsed and QByLane, ExtendedTile pulls in Tile for cluster
// counts, and on NovaSeq Tile pulls in EmpiricalPhasing. Invalid groups are
// dropped. The result is ordered by group identifier without duplicates.
func GroupsToLoad(instrument Instrument, groups ...format.MetricGroup) []format.MetricGroup {
	var want [len(entries)]bool
	for _, g := range groups {
		if !g.IsValid() {
			continue
		}
		want[g] = true

		switch g {
		case format.GroupQ:
			want[format.GroupQCollapsed] = true
			want[format.GroupQByLane] = true
		case format.GroupExtendedTile:
			want[format.GroupTile] = true
			if instrument == NovaSeq {
				want[format.GroupEmpiricalPhasing] = true
			}
		case format.GroupTile:
			if instrument == NovaSeq {
				want[format.GroupEmpiricalPhasing] = true
			}
		}
	}

	out := make([]format.MetricGroup, 0, len(want))
	for i, ok := range want {
		if ok {
			out = append(out, format.MetricGroup(i))
		}
	}

	return out
}
