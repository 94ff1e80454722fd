package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
)

// Compressor compresses a complete metric file.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a metric file compressed by the matching Compressor.
//
// Thread Safety: implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original data.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or invalid
	//   - Returns error if data was compressed with another algorithm
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes the effect of compressing one file.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
	format.CompressionGzip: NewGzipCompressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns:
//   - Codec: Shared codec instance, safe for concurrent use
//   - error: ErrInvalidArgument for an unknown compression type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrInvalidArgument, compressionType)
}

// Frame magics of the supported formats. Metric files start with a small
// version byte, so none of them collides with an uncompressed file.
var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	s2Magic   = []byte("\xff\x06\x00\x00S2sTwO")
)

// Detect identifies the compression of data from its leading magic bytes.
// Data without a known magic is reported as CompressionNone.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, gzipMagic):
		return format.CompressionGzip
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// Decompress detects the compression of data and restores the original bytes.
//
// Returns:
//   - []byte: Decompressed data, or data itself when it is not compressed
//   - format.CompressionType: Detected compression
//   - error: Decompression failure, wrapping ErrBadFormat
func Decompress(data []byte) ([]byte, format.CompressionType, error) {
	ct := Detect(data)
	if ct == format.CompressionNone {
		return data, ct, nil
	}

	out, err := builtinCodecs[ct].Decompress(data)
	if err != nil {
		return nil, ct, fmt.Errorf("%w: %s: %w", errs.ErrBadFormat, ct, err)
	}

	return out, ct, nil
}

// Compress compresses data with the given algorithm and reports the result.
func Compress(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, CompressionStats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}, nil
}
