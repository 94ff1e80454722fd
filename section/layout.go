package section

import (
	"math"

	"github.com/arloliu/interop/format"
)

// Layout describes the preamble of one (group, version) pair and the record size
// it implies.
type Layout struct {
	// Group is the metric group the layout belongs to.
	Group format.MetricGroup
	// Version is the format version written in the first byte.
	Version uint8
	// HasRecordSize is true when a record size byte follows the version.
	HasRecordSize bool
	// WideRecordSize is true when the record size is a 32-bit word instead of a byte.
	WideRecordSize bool
	// HasBins is true when the header carries an optional q-score bin table.
	HasBins bool
	// HasChannelCount is true when the header carries an image channel count.
	HasChannelCount bool
	// RecordSize computes the size of one wire record for a decoded header.
	// It is nil for layouts whose records have variable length.
	RecordSize func(h Header) int
	// AltRecordSizes lists further record sizes accepted on read.
	AltRecordSizes []int
}

// LayoutResolver returns the layout registered for a version, or false if the
// version is not supported.
type LayoutResolver func(version uint8) (Layout, bool)

// ExpectedRecordSize returns the record size implied by h, or zero for variable
// length records.
func (l Layout) ExpectedRecordSize(h Header) int {
	if l.RecordSize == nil {
		return 0
	}

	return l.RecordSize(h)
}

func (l Layout) acceptsRecordSize(h Header) bool {
	expected := l.ExpectedRecordSize(h)
	if expected == 0 || int(h.RecordSize) == expected {
		return true
	}

	for _, alt := range l.AltRecordSizes {
		if int(h.RecordSize) == alt {
			return true
		}
	}

	return false
}

// MaxRecordSize returns the largest record size the header can declare.
func (l Layout) MaxRecordSize() int {
	if l.WideRecordSize {
		return math.MaxUint32
	}

	return math.MaxUint8
}

// recordSizeWidth returns the number of header bytes holding the record size.
func (l Layout) recordSizeWidth() int {
	if l.WideRecordSize {
		return WideRecordSize
	}

	return RecordSizeSize
}

func (l Layout) shape() headerShape {
	return headerShape{
		recordSize:   l.HasRecordSize,
		wideSize:     l.WideRecordSize,
		bins:         l.HasBins,
		channelCount: l.HasChannelCount,
	}
}

// Normalize returns h with the preamble shape of l.
//
// A record size accepted by the layout is kept, any other value is replaced
// by the size the layout expects.
func (l Layout) Normalize(h Header) Header {
	out := NewHeader(l, h.Bins, h.ChannelCount)
	if !l.HasRecordSize || h.RecordSize == 0 {
		return out
	}

	candidate := out
	candidate.RecordSize = h.RecordSize
	if l.acceptsRecordSize(candidate) {
		out.RecordSize = h.RecordSize
	}

	return out
}
