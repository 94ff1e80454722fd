package encoding

import (
	"fmt"
	"slices"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

type (
	decodeFunc[T any] func(engine endian.EndianEngine, data []byte, h section.Header) (T, int, error)
	encodeFunc[T any] func(engine endian.EndianEngine, dst []byte, rec T, h section.Header) ([]byte, error)
	sizeFunc[T any]   func(rec T, h section.Header) int
)

// VersionCodec converts the records of one metric group at one format version.
//
// A VersionCodec is immutable and safe for concurrent use.
type VersionCodec[T metric.Record] struct {
	layout section.Layout
	id     section.IDLayout
	engine endian.EndianEngine
	decode decodeFunc[T]
	encode encodeFunc[T]
	size   sizeFunc[T]
	// multi is nil when every wire record is a complete record.
	multi *multiRecord[T]
}

// multiRecord describes a layout that spreads one record over several wire
// records, one per part.
type multiRecord[T any] struct {
	// merge folds a decoded wire record into the record stored under its key.
	merge func(existing *T, incoming T)
	// part returns the part that incoming filled in the stored record.
	part func(stored, incoming T) int
	// parts returns the number of parts of rec.
	parts func(rec T) int
	// appendPart appends the wire record carrying one part of rec.
	appendPart func(engine endian.EndianEngine, dst []byte, rec T, part int) ([]byte, error)
	// partSize returns the encoded size of one part of rec.
	partSize func(rec T, part int) int
}

// multiVersion builds a codec for a multi-record layout. Without a recorded
// wire order a record encodes its parts in ascending order.
func multiVersion[T metric.Record](layout section.Layout, idl section.IDLayout, decode decodeFunc[T], m *multiRecord[T]) *VersionCodec[T] {
	return &VersionCodec[T]{
		layout: layout,
		id:     idl,
		engine: endian.GetLittleEndianEngine(),
		decode: decode,
		encode: func(engine endian.EndianEngine, dst []byte, rec T, _ section.Header) ([]byte, error) {
			n := m.parts(rec)
			if n == 0 {
				return dst, fmt.Errorf("%w: %s v%d record %s has nothing to encode",
					errs.ErrInvalidArgument, layout.Group, layout.Version, rec.Key())
			}
			start := len(dst)
			var err error
			for part := range n {
				if dst, err = m.appendPart(engine, dst, rec, part); err != nil {
					return dst[:start], err
				}
			}

			return dst, nil
		},
		size: func(rec T, _ section.Header) int {
			size := 0
			for part := range m.parts(rec) {
				size += m.partSize(rec, part)
			}

			return size
		},
		multi: m,
	}
}

// Layout returns the header layout of the version.
func (v *VersionCodec[T]) Layout() section.Layout {
	return v.layout
}

// IDLayout returns the record identifier layout of the version.
func (v *VersionCodec[T]) IDLayout() section.IDLayout {
	return v.id
}

// Decode decodes one wire record from the start of data.
//
// Parameters:
//   - data: Remaining file contents, starting at a record boundary
//   - h: Header of the file
//
// Returns:
//   - T: Decoded record
//   - int: Number of bytes consumed
//   - error: ErrIncompleteFile if data ends inside the record, ErrBadFormat for invalid content
func (v *VersionCodec[T]) Decode(data []byte, h section.Header) (T, int, error) {
	return v.decode(v.engine, data, h)
}

// Encode appends the wire form of rec to dst.
//
// Records of multi-record groups expand to several wire records.
//
// Returns:
//   - []byte: dst with the record appended
//   - error: ErrInvalidArgument if a field does not fit the version layout
func (v *VersionCodec[T]) Encode(dst []byte, rec T, h section.Header) ([]byte, error) {
	return v.encode(v.engine, dst, rec, h)
}

// EncodedSize returns the number of bytes Encode appends for rec.
func (v *VersionCodec[T]) EncodedSize(rec T, h section.Header) int {
	return v.size(rec, h)
}

// MergesRecords reports whether one record spans several wire records.
func (v *VersionCodec[T]) MergesRecords() bool {
	return v.multi != nil
}

// add stores a decoded wire record in set. Wire records of multi-record
// layouts are merged into the record already stored under the same key and
// their position is noted in wire.
func (v *VersionCodec[T]) add(set *metric.Set[T], rec T, wire *wireRecorder) {
	if v.multi == nil {
		set.Insert(rec)
		return
	}

	pos := set.Merge(rec, v.multi.merge)
	stored, _ := set.At(pos)
	wire.add(pos, v.multi.part(stored, rec))
}

// wireOrder returns the recorded wire order of set when it still describes
// the records of set, or nil.
func (v *VersionCodec[T]) wireOrder(set *metric.Set[T]) []metric.WireRun {
	runs := set.WireOrder()
	if v.multi == nil || len(runs) == 0 {
		return nil
	}

	covered := make([]bool, set.Len())
	for _, r := range runs {
		rec, err := set.At(r.Pos)
		if err != nil || r.Part < 0 || r.Count < 1 || r.Part+r.Count > v.multi.parts(rec) {
			return nil
		}
		covered[r.Pos] = true
	}
	if slices.Contains(covered, false) {
		return nil
	}

	return runs
}

// wireRecorder collects the wire order of a multi-record file while it is decoded.
type wireRecorder struct {
	runs []metric.WireRun
}

func (w *wireRecorder) add(pos, part int) {
	if n := len(w.runs); n > 0 {
		last := &w.runs[n-1]
		if last.Pos == pos && last.Part+last.Count == part {
			last.Count++
			return
		}
	}
	w.runs = append(w.runs, metric.WireRun{Pos: pos, Part: part, Count: 1})
}

// Codec groups the version codecs of one metric group.
type Codec[T metric.Record] struct {
	group    format.MetricGroup
	versions map[uint8]*VersionCodec[T]
	order    []uint8
}

func newCodec[T metric.Record](group format.MetricGroup, versions ...*VersionCodec[T]) *Codec[T] {
	c := &Codec[T]{
		group:    group,
		versions: make(map[uint8]*VersionCodec[T], len(versions)),
	}
	for _, v := range versions {
		c.versions[v.layout.Version] = v
		c.order = append(c.order, v.layout.Version)
	}
	slices.Sort(c.order)

	return c
}

// Group returns the metric group handled by the codec.
func (c *Codec[T]) Group() format.MetricGroup {
	return c.group
}

// Versions returns the supported format versions in ascending order.
func (c *Codec[T]) Versions() []uint8 {
	return slices.Clone(c.order)
}

// Latest returns the newest supported format version.
func (c *Codec[T]) Latest() uint8 {
	return c.order[len(c.order)-1]
}

// Supports reports whether version has a registered codec.
func (c *Codec[T]) Supports(version uint8) bool {
	_, ok := c.versions[version]
	return ok
}

// Version returns the codec registered for a format version.
func (c *Codec[T]) Version(version uint8) (*VersionCodec[T], error) {
	v, ok := c.versions[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s version %d", errs.ErrUnsupportedVersion, c.group, version)
	}

	return v, nil
}

// Resolve implements section.LayoutResolver.
func (c *Codec[T]) Resolve(version uint8) (section.Layout, bool) {
	v, ok := c.versions[version]
	if !ok {
		return section.Layout{}, false
	}

	return v.layout, true
}

// ParseHeader decodes the header of a file of this group.
func (c *Codec[T]) ParseHeader(data []byte) (section.Header, int, error) {
	return section.ParseHeader(c.group, data, c.Resolve)
}

// NewHeader creates a header for writing records at the given version.
//
// Parameters:
//   - version: Target format version
//   - bins: Q-score bin table, for groups that carry one
//   - channelCount: Image channel count, for groups that carry one
//
// Returns:
//   - section.Header: Header with its record size computed
//   - error: ErrUnsupportedVersion or ErrInvalidArgument
func (c *Codec[T]) NewHeader(version uint8, bins []section.QScoreBin, channelCount uint8) (section.Header, error) {
	v, err := c.Version(version)
	if err != nil {
		return section.Header{}, err
	}
	if len(bins) > section.MaxBinCount {
		return section.Header{}, fmt.Errorf("%w: %d bins exceed %d", errs.ErrInvalidArgument, len(bins), section.MaxBinCount)
	}

	h := section.NewHeader(v.layout, bins, channelCount)
	if size := v.layout.ExpectedRecordSize(h); size > v.layout.MaxRecordSize() {
		return section.Header{}, fmt.Errorf("%w: record size %d does not fit the header", errs.ErrInvalidArgument, size)
	}

	return h, nil
}

// NewSet creates an empty set for the given header.
func (c *Codec[T]) NewSet(h section.Header) *metric.Set[T] {
	return metric.NewSet[T](h)
}

type (
	payloadDecoder[T any] func(engine endian.EndianEngine, id section.RecordID, payload []byte, h section.Header) (T, error)
	payloadEncoder[T any] func(engine endian.EndianEngine, dst []byte, rec T, h section.Header) []byte
)

// fixedVersion builds a codec for layouts whose records all have the size
// declared in the header.
func fixedVersion[T metric.Record](layout section.Layout, idl section.IDLayout, dec payloadDecoder[T], enc payloadEncoder[T]) *VersionCodec[T] {
	return &VersionCodec[T]{
		layout: layout,
		id:     idl,
		engine: endian.GetLittleEndianEngine(),
		decode: func(engine endian.EndianEngine, data []byte, h section.Header) (T, int, error) {
			var zero T
			n := int(h.RecordSize)
			if len(data) < n {
				return zero, 0, fmt.Errorf("%w: %s v%d record needs %d bytes, %d remain",
					errs.ErrIncompleteFile, layout.Group, layout.Version, n, len(data))
			}
			id := idl.Decode(engine, data)
			rec, err := dec(engine, id, data[idl.Size():n], h)
			if err != nil {
				return zero, 0, err
			}

			return rec, n, nil
		},
		encode: func(engine endian.EndianEngine, dst []byte, rec T, h section.Header) ([]byte, error) {
			id := recordID(rec)
			if !idl.Fits(id) {
				return dst, fmt.Errorf("%w: %s v%d cannot encode record id %s",
					errs.ErrInvalidArgument, layout.Group, layout.Version, rec.Key())
			}
			start := len(dst)
			dst = idl.Append(engine, dst, id)
			dst = enc(engine, dst, rec, h)
			if got := len(dst) - start; got != int(h.RecordSize) {
				return dst[:start], fmt.Errorf("%w: %s record %s encodes to %d bytes, header declares %d",
					errs.ErrInvalidArgument, layout.Group, rec.Key(), got, h.RecordSize)
			}

			return dst, nil
		},
		size: func(_ T, h section.Header) int {
			return int(h.RecordSize)
		},
	}
}

func recordID(rec metric.Record) section.RecordID {
	key := rec.Key()
	return section.RecordID{Lane: key.Lane, Tile: key.Tile, CycleOrRead: key.ID}
}

func cycleID(id section.RecordID) metric.CycleID {
	return metric.CycleID{Lane: id.Lane, Tile: id.Tile, Cycle: id.CycleOrRead}
}

func tileID(id section.RecordID) metric.TileID {
	return metric.TileID{Lane: id.Lane, Tile: id.Tile}
}

func constSize(n int) func(section.Header) int {
	return func(section.Header) int { return n }
}
