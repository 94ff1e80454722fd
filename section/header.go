package section

import (
	"fmt"
	"math"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
)

// QScoreBin is one quality score bucket declared in a q-metric header.
//
// Raw scores in [Lower, Upper] are reported as Value.
type QScoreBin struct {
	Lower uint8
	Upper uint8
	Value uint8
}

type headerShape struct {
	recordSize   bool
	wideSize     bool
	bins         bool
	channelCount bool
}

// Header is the decoded preamble of a metric file.
type Header struct {
	// Group identifies the metric group of the file.
	Group format.MetricGroup
	// Version is the format version of every record in the file.
	Version uint8
	// RecordSize is the byte length of one wire record. It is zero for layouts
	// without a record size byte.
	RecordSize uint32
	// HasBins mirrors the bin flag of q-metric headers.
	HasBins bool
	// Bins holds the q-score bin table, in file order.
	Bins []QScoreBin
	// ChannelCount is the number of image channels declared by the header.
	ChannelCount uint8

	shape headerShape
}

// NewHeader creates a header for the given layout and computes its record size.
//
// Parameters:
//   - layout: Layout of the target group and version
//   - bins: Q-score bin table, ignored when the layout carries no bins
//   - channelCount: Image channel count, ignored when the layout carries none
//
// Returns:
//   - Header: Header ready to be encoded
func NewHeader(layout Layout, bins []QScoreBin, channelCount uint8) Header {
	h := Header{
		Group:   layout.Group,
		Version: layout.Version,
		shape:   layout.shape(),
	}
	if layout.HasBins && len(bins) > 0 {
		h.HasBins = true
		h.Bins = append([]QScoreBin(nil), bins...)
	}
	if layout.HasChannelCount {
		h.ChannelCount = channelCount
	}
	if layout.HasRecordSize {
		h.RecordSize = uint32(layout.ExpectedRecordSize(h)) //nolint:gosec // bounded by MaxRecordSize
	}

	return h
}

// ParseHeader decodes the preamble of a metric file.
//
// Parameters:
//   - group: Metric group the data is expected to hold
//   - data: File contents starting at the first byte
//   - resolve: Resolver returning the layout for the version byte
//
// Returns:
//   - Header: Decoded header
//   - int: Number of bytes consumed
//   - error: ErrIncompleteFile, ErrUnsupportedVersion or ErrBadFormat
func ParseHeader(group format.MetricGroup, data []byte, resolve LayoutResolver) (Header, int, error) {
	if len(data) < VersionSize {
		return Header{}, 0, fmt.Errorf("%w: %s header is empty", errs.ErrIncompleteFile, group)
	}

	h := Header{Group: group, Version: data[0]}
	layout, ok := resolve(h.Version)
	if !ok {
		return Header{}, 0, fmt.Errorf("%w: %s version %d", errs.ErrUnsupportedVersion, group, h.Version)
	}
	h.shape = layout.shape()

	off := VersionSize
	if layout.HasRecordSize {
		width := layout.recordSizeWidth()
		if len(data) < off+width {
			return Header{}, 0, fmt.Errorf("%w: %s header missing record size", errs.ErrIncompleteFile, group)
		}
		if layout.WideRecordSize {
			h.RecordSize = endian.GetLittleEndianEngine().Uint32(data[off:])
		} else {
			h.RecordSize = uint32(data[off])
		}
		off += width
	}

	if layout.HasBins {
		n, err := h.parseBins(data[off:])
		if err != nil {
			return Header{}, 0, err
		}
		off += n
	}

	if layout.HasChannelCount {
		if len(data) < off+ChannelCountSize {
			return Header{}, 0, fmt.Errorf("%w: %s header missing channel count", errs.ErrIncompleteFile, group)
		}
		h.ChannelCount = data[off]
		off += ChannelCountSize
	}

	if layout.HasRecordSize && !layout.acceptsRecordSize(h) {
		return Header{}, 0, fmt.Errorf("%w: %s v%d record size %d, expected %d",
			errs.ErrBadFormat, group, h.Version, h.RecordSize, layout.ExpectedRecordSize(h))
	}

	return h, off, nil
}

func (h *Header) parseBins(data []byte) (int, error) {
	if len(data) < BinFlagSize {
		return 0, fmt.Errorf("%w: %s header missing bin flag", errs.ErrIncompleteFile, h.Group)
	}
	h.HasBins = data[0] != 0
	if !h.HasBins {
		return BinFlagSize, nil
	}

	if len(data) < BinFlagSize+BinCountSize {
		return 0, fmt.Errorf("%w: %s header missing bin count", errs.ErrIncompleteFile, h.Group)
	}
	count := int(data[1])
	off := BinFlagSize + BinCountSize
	if len(data) < off+3*count {
		return 0, fmt.Errorf("%w: %s header declares %d bins", errs.ErrIncompleteFile, h.Group, count)
	}

	lower := data[off : off+count]
	upper := data[off+count : off+2*count]
	value := data[off+2*count : off+3*count]
	h.Bins = make([]QScoreBin, count)
	for i := range h.Bins {
		h.Bins[i] = QScoreBin{Lower: lower[i], Upper: upper[i], Value: value[i]}
	}

	return off + 3*count, nil
}

// Validate checks that the header fields fit their wire widths.
func (h Header) Validate() error {
	if len(h.Bins) > MaxBinCount {
		return fmt.Errorf("%w: %d bins exceed %d", errs.ErrInvalidArgument, len(h.Bins), MaxBinCount)
	}
	if h.shape.recordSize && !h.shape.wideSize && h.RecordSize > math.MaxUint8 {
		return fmt.Errorf("%w: record size %d does not fit the header byte", errs.ErrInvalidArgument, h.RecordSize)
	}

	return nil
}

// Size returns the encoded size of the header in bytes.
func (h Header) Size() int {
	size := VersionSize
	if h.shape.recordSize {
		size += RecordSizeSize
		if h.shape.wideSize {
			size += WideRecordSize - RecordSizeSize
		}
	}
	if h.shape.bins {
		size += BinFlagSize
		if h.binned() {
			size += BinCountSize + 3*len(h.Bins)
		}
	}
	if h.shape.channelCount {
		size += ChannelCountSize
	}

	return size
}

// Bytes serializes the header into a new byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, h.Size()))
}

// AppendTo appends the encoded header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	dst = append(dst, h.Version)
	switch {
	case h.shape.wideSize:
		dst = endian.GetLittleEndianEngine().AppendUint32(dst, h.RecordSize)
	case h.shape.recordSize:
		dst = append(dst, uint8(h.RecordSize)) //nolint:gosec // bounded by MaxRecordSize
	}
	if h.shape.bins {
		if !h.binned() {
			return h.appendChannelCount(append(dst, 0))
		}
		dst = append(dst, 1, uint8(len(h.Bins))) //nolint:gosec // bounded by Validate
		for _, b := range h.Bins {
			dst = append(dst, b.Lower)
		}
		for _, b := range h.Bins {
			dst = append(dst, b.Upper)
		}
		for _, b := range h.Bins {
			dst = append(dst, b.Value)
		}
	}

	return h.appendChannelCount(dst)
}

func (h Header) appendChannelCount(dst []byte) []byte {
	if h.shape.channelCount {
		dst = append(dst, h.ChannelCount)
	}

	return dst
}

func (h Header) binned() bool {
	return h.HasBins || len(h.Bins) > 0
}

// BinCount returns the number of q-score bins declared by the header.
func (h Header) BinCount() int {
	return len(h.Bins)
}

// BinAt returns the bin at position i.
//
// Returns:
//   - QScoreBin: The bin
//   - error: ErrIndexOutOfRange if i is not a valid bin position
func (h Header) BinAt(i int) (QScoreBin, error) {
	if i < 0 || i >= len(h.Bins) {
		return QScoreBin{}, fmt.Errorf("%w: bin %d of %d", errs.ErrIndexOutOfRange, i, len(h.Bins))
	}

	return h.Bins[i], nil
}
