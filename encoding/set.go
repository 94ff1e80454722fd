package encoding

import (
	"fmt"

	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// DecodeSet decodes a complete metric file held in data.
//
// Records are consumed until the data ends. A file holding only a header
// yields an empty set.
//
// Parameters:
//   - data: Uncompressed file contents
//
// Returns:
//   - *metric.Set[T]: Decoded records, marked as loaded
//   - error: ErrIncompleteFile if data ends inside the header or a record,
//     ErrUnsupportedVersion or ErrBadFormat otherwise
func (c *Codec[T]) DecodeSet(data []byte) (*metric.Set[T], error) {
	h, off, err := c.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	v, err := c.Version(h.Version)
	if err != nil {
		return nil, err
	}

	set := metric.NewSet[T](h)
	var wire wireRecorder
	for off < len(data) {
		rec, n, err := v.Decode(data[off:], h)
		if err != nil {
			return nil, fmt.Errorf("decode %s record at offset %d: %w", c.group, off, err)
		}
		v.add(set, rec, &wire)
		off += n
	}
	if v.MergesRecords() {
		set.SetWireOrder(wire.runs)
	}
	set.MarkLoaded()

	return set, nil
}

// header returns the normalized header used to encode set.
func (c *Codec[T]) header(set *metric.Set[T]) (section.Header, *VersionCodec[T], error) {
	if set == nil {
		return section.Header{}, nil, fmt.Errorf("%w: nil %s set", errs.ErrInvalidArgument, c.group)
	}

	h := set.Header()
	if h.Group != c.group {
		return section.Header{}, nil, fmt.Errorf("%w: %s set passed to %s codec", errs.ErrInvalidMetricType, h.Group, c.group)
	}

	v, err := c.Version(h.Version)
	if err != nil {
		return section.Header{}, nil, err
	}

	h = v.layout.Normalize(h)
	if err := h.Validate(); err != nil {
		return section.Header{}, nil, err
	}

	return h, v, nil
}

// EncodedSize returns the exact number of bytes AppendSet writes for set.
func (c *Codec[T]) EncodedSize(set *metric.Set[T]) (int, error) {
	h, v, err := c.header(set)
	if err != nil {
		return 0, err
	}

	size := h.Size()
	if runs := v.wireOrder(set); runs != nil {
		for _, r := range runs {
			rec, _ := set.At(r.Pos)
			for part := r.Part; part < r.Part+r.Count; part++ {
				size += v.multi.partSize(rec, part)
			}
		}

		return size, nil
	}
	for _, rec := range set.All() {
		size += v.EncodedSize(rec, h)
	}

	return size, nil
}

// AppendSet appends the encoded header and records of set to dst, using the
// format version of the set header.
//
// Sets decoded from multi-record files keep the wire order of the file, so
// records whose parts were interleaved with other records are written back
// interleaved. Sets built or changed in memory are written record by record.
//
// On error dst is returned with its original length.
func (c *Codec[T]) AppendSet(dst []byte, set *metric.Set[T]) ([]byte, error) {
	h, v, err := c.header(set)
	if err != nil {
		return dst, err
	}

	start := len(dst)
	dst = h.AppendTo(dst)
	if runs := v.wireOrder(set); runs != nil {
		for _, r := range runs {
			rec, _ := set.At(r.Pos)
			for part := r.Part; part < r.Part+r.Count; part++ {
				if dst, err = v.multi.appendPart(v.engine, dst, rec, part); err != nil {
					return dst[:start], err
				}
			}
		}

		return dst, nil
	}
	for _, rec := range set.All() {
		if dst, err = v.Encode(dst, rec, h); err != nil {
			return dst[:start], err
		}
	}

	return dst, nil
}

// Convert copies the records of set into a new set using another format version.
//
// The bin table and channel count of the source header are carried over when
// the target version has them.
func (c *Codec[T]) Convert(set *metric.Set[T], version uint8) (*metric.Set[T], error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil %s set", errs.ErrInvalidArgument, c.group)
	}

	src := set.Header()
	h, err := c.NewHeader(version, src.Bins, src.ChannelCount)
	if err != nil {
		return nil, err
	}

	out := metric.NewSet[T](h)
	out.Rebuild(set.Records())
	if set.Loaded() {
		out.MarkLoaded()
	}

	return out, nil
}

// AnyCodec is the type-erased view of a Codec, used by code that handles
// every metric group uniformly.
type AnyCodec interface {
	Group() format.MetricGroup
	Versions() []uint8
	Latest() uint8
	Supports(version uint8) bool
	NewAnySet(version uint8) (metric.AnySet, error)
	DecodeAny(data []byte) (metric.AnySet, error)
	AppendAny(dst []byte, set metric.AnySet) ([]byte, error)
	EncodedSizeAny(set metric.AnySet) (int, error)
	ConvertAny(set metric.AnySet, version uint8) (metric.AnySet, error)
}

var _ AnyCodec = (*Codec[metric.ErrorMetric])(nil)

func (c *Codec[T]) typed(set metric.AnySet) (*metric.Set[T], error) {
	s, ok := set.(*metric.Set[T])
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: %T passed to %s codec", errs.ErrInvalidMetricType, set, c.group)
	}

	return s, nil
}

// NewAnySet creates an empty set with a default header for version.
func (c *Codec[T]) NewAnySet(version uint8) (metric.AnySet, error) {
	h, err := c.NewHeader(version, nil, 0)
	if err != nil {
		return nil, err
	}

	return c.NewSet(h), nil
}

// DecodeAny is DecodeSet returning the type-erased set.
func (c *Codec[T]) DecodeAny(data []byte) (metric.AnySet, error) {
	set, err := c.DecodeSet(data)
	if err != nil {
		return nil, err
	}

	return set, nil
}

// AppendAny is AppendSet for a type-erased set.
func (c *Codec[T]) AppendAny(dst []byte, set metric.AnySet) ([]byte, error) {
	s, err := c.typed(set)
	if err != nil {
		return dst, err
	}

	return c.AppendSet(dst, s)
}

// EncodedSizeAny is EncodedSize for a type-erased set.
func (c *Codec[T]) EncodedSizeAny(set metric.AnySet) (int, error) {
	s, err := c.typed(set)
	if err != nil {
		return 0, err
	}

	return c.EncodedSize(s)
}

// ConvertAny is Convert for a type-erased set.
func (c *Codec[T]) ConvertAny(set metric.AnySet, version uint8) (metric.AnySet, error) {
	s, err := c.typed(set)
	if err != nil {
		return nil, err
	}

	out, err := c.Convert(s, version)
	if err != nil {
		return nil, err
	}

	return out, nil
}
