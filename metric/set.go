package metric

import (
	"fmt"
	"iter"

	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/section"
)

// Set is an ordered collection of records with a key index for point lookup.
//
// The zero value is an empty, queryable set without a header.
type Set[T Record] struct {
	header  section.Header
	records []T
	index   map[Key]int
	wire    []WireRun
	loaded  bool
}

// WireRun is a run of consecutive wire records of a multi-record group that
// belong to the record at Pos and carry its parts Part to Part+Count-1.
//
// A part is an entry of a tile record, an assignment of an index record or a
// channel of an image record.
type WireRun struct {
	Pos   int
	Part  int
	Count int
}

// AnySet is the type-erased view of a Set used by code that handles every
// metric group uniformly.
type AnySet interface {
	Group() format.MetricGroup
	Header() section.Header
	Version() uint8
	Len() int
	Loaded() bool
	RecordAt(i int) (Record, error)
}

var _ AnySet = (*Set[ErrorMetric])(nil)

// NewSet creates an empty set for the given header.
func NewSet[T Record](header section.Header) *Set[T] {
	return &Set[T]{
		header: header,
		index:  make(map[Key]int),
	}
}

// Insert appends rec, or replaces the record stored under the same key.
//
// Replacement keeps the original sequence position, so Len does not change.
func (s *Set[T]) Insert(rec T) {
	s.wire = nil
	key := rec.Key()
	if i, ok := s.index[key]; ok {
		s.records[i] = rec
		return
	}
	s.append(key, rec)
}

// Merge combines rec into the record stored under the same key using fn, or
// appends it when the key is new. It returns the position of the stored record.
//
// It is used for metric groups that spread one record over several wire records.
// Merging clears the wire order, which the decoder records afterwards.
func (s *Set[T]) Merge(rec T, fn func(existing *T, incoming T)) int {
	s.wire = nil
	key := rec.Key()
	if i, ok := s.index[key]; ok {
		fn(&s.records[i], rec)
		return i
	}
	s.append(key, rec)

	return len(s.records) - 1
}

// SetWireOrder records the order in which the parts of the records were read.
//
// Encoders replay it so interleaved files re-encode byte for byte. Any later
// change through Insert, Merge, Rebuild or Clear drops it.
func (s *Set[T]) SetWireOrder(runs []WireRun) {
	s.wire = runs
}

// WireOrder returns the recorded wire order, or nil when the set was built or
// modified in memory.
func (s *Set[T]) WireOrder() []WireRun {
	return s.wire
}

func (s *Set[T]) append(key Key, rec T) {
	if s.index == nil {
		s.index = make(map[Key]int)
	}
	s.index[key] = len(s.records)
	s.records = append(s.records, rec)
}

// At returns the record at position i.
//
// Returns:
//   - T: The record
//   - error: ErrIndexOutOfRange if i is not a valid position
func (s *Set[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.records) {
		var zero T
		return zero, fmt.Errorf("%w: record %d of %d", errs.ErrIndexOutOfRange, i, len(s.records))
	}

	return s.records[i], nil
}

// RecordAt implements AnySet.
func (s *Set[T]) RecordAt(i int) (Record, error) {
	rec, err := s.At(i)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Get returns the record stored for (lane, tile, cycleOrRead).
//
// A missing key is a normal outcome and reports false.
func (s *Set[T]) Get(lane, tile, cycleOrRead uint32) (T, bool) {
	return s.GetKey(NewKey(lane, tile, cycleOrRead))
}

// GetKey returns the record stored under key.
func (s *Set[T]) GetKey(key Key) (T, bool) {
	i, ok := s.index[key]
	if !ok {
		var zero T
		return zero, false
	}

	return s.records[i], true
}

// Has reports whether a record is stored under key.
func (s *Set[T]) Has(key Key) bool {
	_, ok := s.index[key]
	return ok
}

// Len returns the number of records.
func (s *Set[T]) Len() int {
	return len(s.records)
}

// Header returns the file header of the set.
func (s *Set[T]) Header() section.Header {
	return s.header
}

// SetHeader replaces the header, for example before writing a set at another version.
func (s *Set[T]) SetHeader(h section.Header) {
	s.header = h
}

// Group returns the metric group recorded in the header.
func (s *Set[T]) Group() format.MetricGroup {
	return s.header.Group
}

// Version returns the format version recorded in the header.
func (s *Set[T]) Version() uint8 {
	return s.header.Version
}

// BinCount returns the number of q-score bins declared by the header.
func (s *Set[T]) BinCount() int {
	return s.header.BinCount()
}

// BinAt returns the q-score bin at position i.
func (s *Set[T]) BinAt(i int) (section.QScoreBin, error) {
	return s.header.BinAt(i)
}

// ChannelCount returns the image channel count declared by the header.
func (s *Set[T]) ChannelCount() int {
	return int(s.header.ChannelCount)
}

// Loaded reports whether the set was populated by a successful read.
func (s *Set[T]) Loaded() bool {
	return s.loaded
}

// MarkLoaded flags the set as populated by a successful read.
func (s *Set[T]) MarkLoaded() {
	s.loaded = true
}

// Clear removes every record and resets the loaded flag. The header is kept.
func (s *Set[T]) Clear() {
	s.records = s.records[:0]
	clear(s.index)
	s.wire = nil
	s.loaded = false
}

// Rebuild replaces the content of the set with records and rebuilds the index.
//
// Later records replace earlier ones with the same key, as with Insert.
func (s *Set[T]) Rebuild(records []T) {
	s.records = make([]T, 0, len(records))
	s.index = make(map[Key]int, len(records))
	s.wire = nil
	for _, rec := range records {
		s.Insert(rec)
	}
}

// Records returns a copy of the records in sequence order.
func (s *Set[T]) Records() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)

	return out
}

// Keys returns the record keys in sequence order.
func (s *Set[T]) Keys() []Key {
	keys := make([]Key, len(s.records))
	for i, rec := range s.records {
		keys[i] = rec.Key()
	}

	return keys
}

// All returns an iterator over positions and records in sequence order.
//
// Example:
//
//	for i, rec := range set.All() {
//	    fmt.Println(i, rec.ErrorRate)
//	}
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, rec := range s.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Lanes returns the distinct lane numbers in first-seen order.
func (s *Set[T]) Lanes() []uint32 {
	seen := make(map[uint32]struct{})
	var lanes []uint32
	for _, rec := range s.records {
		lane := rec.Key().Lane
		if _, ok := seen[lane]; ok {
			continue
		}
		seen[lane] = struct{}{}
		lanes = append(lanes, lane)
	}

	return lanes
}

// MaxID returns the largest cycle or read number in the set, or zero when empty.
func (s *Set[T]) MaxID() uint32 {
	var maxID uint32
	for _, rec := range s.records {
		maxID = max(maxID, rec.Key().ID)
	}

	return maxID
}
