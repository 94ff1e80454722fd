package registry

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/arloliu/interop/encoding"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
)

// InterOpDir is the run folder subdirectory holding the metric files.
const InterOpDir = "InterOp"

// Entry describes one metric group.
type Entry struct {
	Group format.MetricGroup

	// Prefix and Suffix surround "Metrics" in the file name.
	Prefix string
	Suffix string

	Codec encoding.AnyCodec
}

// FileName returns the file name of the group.
//
// Instrument software writes "<Prefix>Metrics<Suffix>Out.bin". Older software
// omits the "Out" part, which useOut=false selects.
func (e Entry) FileName(useOut bool) string {
	name := e.Prefix + "Metrics" + e.Suffix
	if useOut {
		name += "Out"
	}

	return name + ".bin"
}

// NewSet creates an empty set of the group at its latest version.
func (e Entry) NewSet() (metric.AnySet, error) {
	return e.Codec.NewAnySet(e.Codec.Latest())
}

var entries = [...]Entry{
	format.GroupCorrectedInt:     {Group: format.GroupCorrectedInt, Prefix: "CorrectedInt", Codec: encoding.CorrectedInt},
	format.GroupError:            {Group: format.GroupError, Prefix: "Error", Codec: encoding.Error},
	format.GroupExtraction:       {Group: format.GroupExtraction, Prefix: "Extraction", Codec: encoding.Extraction},
	format.GroupImage:            {Group: format.GroupImage, Prefix: "Image", Codec: encoding.Image},
	format.GroupIndex:            {Group: format.GroupIndex, Prefix: "Index", Codec: encoding.Index},
	format.GroupQ:                {Group: format.GroupQ, Prefix: "Q", Codec: encoding.Q},
	format.GroupTile:             {Group: format.GroupTile, Prefix: "Tile", Codec: encoding.Tile},
	format.GroupQByLane:          {Group: format.GroupQByLane, Prefix: "Q", Suffix: "ByLane", Codec: encoding.QByLane},
	format.GroupQCollapsed:       {Group: format.GroupQCollapsed, Prefix: "Q", Suffix: "2030", Codec: encoding.QCollapsed},
	format.GroupEmpiricalPhasing: {Group: format.GroupEmpiricalPhasing, Prefix: "EmpiricalPhasing", Codec: encoding.EmpiricalPhasing},
	format.GroupExtendedTile:     {Group: format.GroupExtendedTile, Prefix: "ExtendedTile", Codec: encoding.ExtendedTile},
	format.GroupSummaryRun:       {Group: format.GroupSummaryRun, Prefix: "SummaryRun", Codec: encoding.SummaryRun},
}

// Lookup returns the entry of a group.
//
// Returns:
//   - Entry: Group entry
//   - error: ErrInvalidMetricType for an unknown identifier
func Lookup(group format.MetricGroup) (Entry, error) {
	if !group.IsValid() {
		return Entry{}, fmt.Errorf("%w: metric group %d", errs.ErrInvalidMetricType, uint8(group))
	}

	return entries[group], nil
}

// LookupName returns the entry of a group given by name.
//
// Returns:
//   - Entry: Group entry
//   - error: ErrInvalidArgument for an unrecognized name
func LookupName(name string) (Entry, error) {
	group, err := format.ParseMetricGroup(name)
	if err != nil {
		return Entry{}, err
	}

	return entries[group], nil
}

// Entries returns every entry in group identifier order.
func Entries() []Entry {
	return slices.Clone(entries[:])
}

// FileName returns the file name of a group.
func FileName(group format.MetricGroup, useOut bool) (string, error) {
	e, err := Lookup(group)
	if err != nil {
		return "", err
	}

	return e.FileName(useOut), nil
}

// FilePath returns the path of a group's file inside a run folder.
func FilePath(runFolder string, group format.MetricGroup) (string, error) {
	name, err := FileName(group, true)
	if err != nil {
		return "", err
	}

	return filepath.Join(runFolder, InterOpDir, name), nil
}

// Decode decodes an uncompressed file of the given group.
func Decode(group format.MetricGroup, data []byte) (metric.AnySet, error) {
	e, err := Lookup(group)
	if err != nil {
		return nil, err
	}

	return e.Codec.DecodeAny(data)
}
