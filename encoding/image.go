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

// Image handles ImageMetricsOut.bin, versions 1 and 2.
//
// Version 1 writes one wire record per channel, which are merged into a single
// ImageMetric. Version 2 writes every channel in one record and declares the
// channel count in the header.
var Image = newCodec(format.GroupImage, imageV1(), imageV2())

const imageV1RecordSize = 12

// mergeImageChannel copies the single channel carried by a version 1 wire record.
func mergeImageChannel(existing *metric.ImageMetric, incoming metric.ImageMetric) {
	ch := incoming.ChannelCount() - 1
	if ch < 0 {
		return
	}
	existing.SetChannel(ch, incoming.MinContrast[ch], incoming.MaxContrast[ch])
}

func imageV1() *VersionCodec[metric.ImageMetric] {
	layout := section.Layout{
		Group:         format.GroupImage,
		Version:       1,
		HasRecordSize: true,
		RecordSize:    constSize(imageV1RecordSize),
	}
	idl := section.CycleID

	decode := func(engine endian.EndianEngine, data []byte, _ section.Header) (metric.ImageMetric, int, error) {
		if len(data) < imageV1RecordSize {
			return metric.ImageMetric{}, 0, fmt.Errorf("%w: Image v1 record needs %d bytes, %d remain",
				errs.ErrIncompleteFile, imageV1RecordSize, len(data))
		}
		m := metric.ImageMetric{CycleID: cycleID(idl.Decode(engine, data))}
		off := idl.Size()
		ch := int(engine.Uint16(data[off:]))
		m.SetChannel(ch, engine.Uint16(data[off+2:]), engine.Uint16(data[off+4:]))

		return m, imageV1RecordSize, nil
	}

	// A part is a channel number. Channels missing from a file are only
	// written back when the set was built in memory.
	return multiVersion(layout, idl, decode, &multiRecord[metric.ImageMetric]{
		merge: mergeImageChannel,
		part: func(_, incoming metric.ImageMetric) int {
			return incoming.ChannelCount() - 1
		},
		parts: func(m metric.ImageMetric) int {
			return m.ChannelCount()
		},
		appendPart: func(engine endian.EndianEngine, dst []byte, m metric.ImageMetric, ch int) ([]byte, error) {
			id := recordID(m)
			if !idl.Fits(id) || len(m.MinContrast) != len(m.MaxContrast) || ch > math.MaxUint16 {
				return dst, fmt.Errorf("%w: Image v1 cannot encode record %s", errs.ErrInvalidArgument, m.Key())
			}
			dst = idl.Append(engine, dst, id)
			dst = engine.AppendUint16(dst, uint16(ch)) //nolint:gosec // checked above
			dst = engine.AppendUint16(dst, m.MinContrast[ch])

			return engine.AppendUint16(dst, m.MaxContrast[ch]), nil
		},
		partSize: func(metric.ImageMetric, int) int {
			return imageV1RecordSize
		},
	})
}

func imageV2() *VersionCodec[metric.ImageMetric] {
	layout := section.Layout{
		Group:           format.GroupImage,
		Version:         2,
		HasRecordSize:   true,
		HasChannelCount: true,
		RecordSize: func(h section.Header) int {
			return section.CycleID.Size() + 4*int(h.ChannelCount)
		},
	}

	return fixedVersion(layout, section.CycleID,
		func(engine endian.EndianEngine, id section.RecordID, b []byte, h section.Header) (metric.ImageMetric, error) {
			n := int(h.ChannelCount)
			m := metric.ImageMetric{
				CycleID:     cycleID(id),
				MinContrast: make([]uint16, n),
				MaxContrast: make([]uint16, n),
			}
			off := readUint16s(engine, b, m.MinContrast)
			readUint16s(engine, b[off:], m.MaxContrast)

			return m, nil
		},
		func(engine endian.EndianEngine, dst []byte, m metric.ImageMetric, _ section.Header) []byte {
			dst = appendUint16s(engine, dst, m.MinContrast)
			return appendUint16s(engine, dst, m.MaxContrast)
		})
}
