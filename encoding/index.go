package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/section"
)

// Index handles IndexMetricsOut.bin, version 1.
//
// The header has no record size byte. Every wire record holds one index
// assignment as length-prefixed strings, and consecutive assignments of the
// same read are merged into one IndexMetric.
var Index = newCodec(format.GroupIndex, indexV1())

func mergeIndex(existing *metric.IndexMetric, incoming metric.IndexMetric) {
	existing.Indices = append(existing.Indices, incoming.Indices...)
}

func indexInfoSize(info metric.IndexInfo) int {
	return VarStringSize(info.IndexSequence) + 4 + VarStringSize(info.SampleID) + VarStringSize(info.ProjectName)
}

func indexV1() *VersionCodec[metric.IndexMetric] {
	idl := section.CycleID

	decode := func(engine endian.EndianEngine, data []byte, _ section.Header) (metric.IndexMetric, int, error) {
		if len(data) < idl.Size() {
			return metric.IndexMetric{}, 0, fmt.Errorf("%w: Index v1 record id truncated", errs.ErrIncompleteFile)
		}
		id := idl.Decode(engine, data)
		off := idl.Size()

		var info metric.IndexInfo
		seq, n, err := ReadVarString(engine, data[off:])
		if err != nil {
			return metric.IndexMetric{}, 0, err
		}
		info.IndexSequence = seq
		off += n

		if len(data) < off+4 {
			return metric.IndexMetric{}, 0, fmt.Errorf("%w: Index v1 cluster count truncated", errs.ErrIncompleteFile)
		}
		info.ClusterCount = uint64(engine.Uint32(data[off:]))
		off += 4

		for _, field := range []*string{&info.SampleID, &info.ProjectName} {
			s, n, err := ReadVarString(engine, data[off:])
			if err != nil {
				return metric.IndexMetric{}, 0, err
			}
			*field = s
			off += n
		}

		return metric.IndexMetric{
			ReadID:  metric.ReadID{Lane: id.Lane, Tile: id.Tile, Read: id.CycleOrRead},
			Indices: []metric.IndexInfo{info},
		}, off, nil
	}

	return multiVersion(section.Layout{Group: format.GroupIndex, Version: 1}, idl, decode, &multiRecord[metric.IndexMetric]{
		merge: mergeIndex,
		part: func(stored, _ metric.IndexMetric) int {
			return len(stored.Indices) - 1
		},
		parts: func(m metric.IndexMetric) int {
			return len(m.Indices)
		},
		appendPart: func(engine endian.EndianEngine, dst []byte, m metric.IndexMetric, part int) ([]byte, error) {
			id := recordID(m)
			if !idl.Fits(id) {
				return dst, fmt.Errorf("%w: Index v1 cannot encode record id %s", errs.ErrInvalidArgument, m.Key())
			}
			info := m.Indices[part]
			if info.ClusterCount > math.MaxUint32 {
				return dst, fmt.Errorf("%w: Index v1 cluster count %d exceeds 32 bits", errs.ErrInvalidArgument, info.ClusterCount)
			}

			start := len(dst)
			dst = idl.Append(engine, dst, id)
			var err error
			if dst, err = AppendVarString(engine, dst, info.IndexSequence); err != nil {
				return dst[:start], err
			}
			dst = engine.AppendUint32(dst, uint32(info.ClusterCount))
			if dst, err = AppendVarString(engine, dst, info.SampleID); err != nil {
				return dst[:start], err
			}
			if dst, err = AppendVarString(engine, dst, info.ProjectName); err != nil {
				return dst[:start], err
			}

			return dst, nil
		},
		partSize: func(m metric.IndexMetric, part int) int {
			return idl.Size() + indexInfoSize(m.Indices[part])
		},
	})
}
