package interop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arloliu/interop/compress"
	"github.com/arloliu/interop/encoding"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/internal/pool"
	"github.com/arloliu/interop/metric"
)

// CalculateBufferSize returns the number of bytes WriteToBuffer needs for set.
func CalculateBufferSize[T metric.Record](codec *encoding.Codec[T], set *metric.Set[T]) (int, error) {
	return codec.EncodedSize(set)
}

// WriteToBuffer encodes set into a new buffer of the given capacity.
//
// Returns:
//   - []byte: Encoded file, header first and records in set order
//   - error: ErrBufferOverflow when capacity is below CalculateBufferSize
func WriteToBuffer[T metric.Record](codec *encoding.Codec[T], set *metric.Set[T], capacity int) ([]byte, error) {
	size, err := codec.EncodedSize(set)
	if err != nil {
		return nil, err
	}
	if capacity < size {
		return nil, fmt.Errorf("%w: %s needs %d bytes, capacity %d", errs.ErrBufferOverflow, codec.Group(), size, capacity)
	}

	return codec.AppendSet(make([]byte, 0, capacity), set)
}

// WriteTo encodes set into dst and returns the number of bytes written.
//
// dst is left unmodified when it is shorter than CalculateBufferSize or when
// encoding fails.
func WriteTo[T metric.Record](codec *encoding.Codec[T], set *metric.Set[T], dst []byte) (int, error) {
	size, err := codec.EncodedSize(set)
	if err != nil {
		return 0, err
	}
	if len(dst) < size {
		return 0, fmt.Errorf("%w: %s needs %d bytes, destination has %d", errs.ErrBufferOverflow, codec.Group(), size, len(dst))
	}

	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	bb.B, err = codec.AppendSet(bb.B[:0], set)
	if err != nil {
		return 0, err
	}

	return copy(dst, bb.B), nil
}

// WriteCompressed encodes set and compresses the result.
func WriteCompressed[T metric.Record](codec *encoding.Codec[T], set *metric.Set[T], compressionType format.CompressionType) ([]byte, compress.CompressionStats, error) {
	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	var err error
	bb.B, err = codec.AppendSet(bb.B[:0], set)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	out, stats, err := compress.Compress(compressionType, bb.B)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}
	if compressionType == format.CompressionNone {
		// The no-op codec shares its input, which goes back to the pool.
		out = append([]byte(nil), out...)
	}

	return out, stats, nil
}

// Write encodes set to the file at path.
//
// The file is written to a temporary name in the same directory and renamed
// into place, so a concurrent reader never sees a partial file. A missing
// directory yields ErrFileNotFound.
func Write[T metric.Record](codec *encoding.Codec[T], set *metric.Set[T], path string, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	log := cfg.logger.WithMetricGroup(codec.Group()).WithPath(path)

	bb := pool.GetFileBuffer()
	defer pool.PutFileBuffer(bb)

	bb.B, err = codec.AppendSet(bb.B[:0], set)
	if err != nil {
		log.LogWrite(ctx, setLen(set), 0, cfg.compression, err)
		return err
	}

	var src io.WriterTo = bb
	size := bb.Len()
	if cfg.compression != format.CompressionNone {
		data, _, err := compress.Compress(cfg.compression, bb.B)
		if err != nil {
			log.LogWrite(ctx, set.Len(), 0, cfg.compression, err)
			return err
		}
		src, size = bytes.NewReader(data), len(data)
	}

	if err := writeFileAtomic(path, src); err != nil {
		log.LogWrite(ctx, set.Len(), 0, cfg.compression, err)
		return err
	}
	log.LogWrite(ctx, set.Len(), size, cfg.compression, nil)

	return nil
}

func setLen[T metric.Record](set *metric.Set[T]) int {
	if set == nil {
		return 0
	}

	return set.Len()
}

func writeFileAtomic(path string, src io.WriterTo) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", errs.ErrFileNotFound, dir)
		}

		return err
	}
	tmpName := tmp.Name()

	if _, err := src.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}
