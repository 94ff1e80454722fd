package interop

import (
	"context"

	"github.com/arloliu/interop/compress"
	"github.com/arloliu/interop/encoding"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/source"
)

// ReadFromBuffer decodes a complete metric file held in memory.
//
// Data compressed with zstd, s2, lz4 or gzip is inflated first unless
// WithDecompression(false) is given.
//
// Parameters:
//   - codec: Codec of the metric group, e.g. encoding.Tile
//   - data: File contents
//   - opts: Read options
//
// Returns:
//   - *metric.Set[T]: Decoded records, marked as loaded
//   - error: ErrIncompleteFile, ErrBadFormat, ErrUnsupportedVersion or
//     ErrBufferOverflow when data exceeds WithMaxFileSize
func ReadFromBuffer[T metric.Record](codec *encoding.Codec[T], data []byte, opts ...Option) (*metric.Set[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return readBuffer(context.Background(), cfg, codec, data, cfg.logger.WithMetricGroup(codec.Group()))
}

// Read decodes the metric file at path.
//
// A missing file yields ErrFileNotFound. The file is opened and closed within
// the call and never retried.
func Read[T metric.Record](codec *encoding.Codec[T], path string, opts ...Option) (*metric.Set[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	log := cfg.logger.WithMetricGroup(codec.Group()).WithPath(path)
	data, err := source.ReadFile(path, cfg.maxFileSize)
	if err != nil {
		log.LogRead(context.Background(), 0, format.CompressionNone, 0, err)
		return nil, err
	}

	return readBuffer(context.Background(), cfg, codec, data, log)
}

// ReadFrom decodes the named metric file from src.
//
//	set, err := interop.ReadFrom(ctx, store, encoding.Q, "InterOp/QMetricsOut.bin")
func ReadFrom[T metric.Record](ctx context.Context, src source.Source, codec *encoding.Codec[T], name string, opts ...Option) (*metric.Set[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	log := cfg.logger.WithMetricGroup(codec.Group()).WithPath(name)
	data, err := src.Open(ctx, name)
	if err != nil {
		log.LogRead(ctx, 0, format.CompressionNone, 0, err)
		return nil, err
	}

	return readBuffer(ctx, cfg, codec, data, log)
}

func readBuffer[T metric.Record](ctx context.Context, cfg *config, codec *encoding.Codec[T], data []byte, log *Logger) (*metric.Set[T], error) {
	raw, ct, err := inflate(cfg, data)
	if err != nil {
		log.LogRead(ctx, len(data), ct, 0, err)
		return nil, err
	}

	set, err := codec.DecodeSet(raw)
	if err != nil {
		log.LogRead(ctx, len(data), ct, 0, err)
		return nil, err
	}
	log.LogRead(ctx, len(data), ct, set.Len(), nil)

	return set, nil
}

// inflate applies the size limit and the optional decompression to a stored
// file.
func inflate(cfg *config, data []byte) ([]byte, format.CompressionType, error) {
	if err := cfg.checkSize(len(data)); err != nil {
		return nil, format.CompressionNone, err
	}
	if !cfg.decompress {
		return data, format.CompressionNone, nil
	}

	raw, ct, err := compress.Decompress(data)
	if err != nil {
		return nil, ct, err
	}
	if err := cfg.checkSize(len(raw)); err != nil {
		return nil, ct, err
	}

	return raw, ct, nil
}
