// Package source abstracts where metric files are read from.
//
// A Source returns the complete contents of a named file. Names are slash
// separated and relative to the source root, so the same run folder layout
// works on a local disk and in an object store:
//
//	src := source.NewLocal("/data/runs/230101_M00001")
//	data, err := src.Open(ctx, "InterOp/TileMetricsOut.bin")
//
// Implementations return an error wrapping errs.ErrFileNotFound for a missing
// file and must be safe for concurrent use.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/arloliu/interop/errs"
)

// Source reads whole metric files by name.
type Source interface {
	// Open returns the contents of the named file.
	Open(ctx context.Context, name string) ([]byte, error)
}

// CleanName validates a slash separated name and joins it under prefix.
//
// Absolute names and names that escape the root with ".." are rejected with
// ErrInvalidArgument.
func CleanName(prefix, name string) (string, error) {
	if name == "" || path.IsAbs(name) || strings.Contains(name, "\\") {
		return "", fmt.Errorf("%w: invalid file name %q", errs.ErrInvalidArgument, name)
	}

	cleaned := path.Clean(name)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: file name %q escapes the source root", errs.ErrInvalidArgument, name)
	}

	return path.Join(prefix, cleaned), nil
}

// Local reads files below a directory.
type Local struct {
	root string
}

var _ Source = (*Local)(nil)

// NewLocal creates a Local rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{root: dir}
}

// Root returns the directory the source reads from.
func (l *Local) Root() string {
	return l.root
}

// Open implements Source.
func (l *Local) Open(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := CleanName("", name)
	if err != nil {
		return nil, err
	}

	return ReadFile(filepath.Join(l.root, filepath.FromSlash(rel)), 0)
}

// ReadFile reads a local file.
//
// Parameters:
//   - path: File path
//   - limit: Maximum accepted size in bytes, zero for no limit
//
// Returns:
//   - []byte: File contents
//   - error: ErrFileNotFound for a missing file, ErrInvalidArgument for a
//     directory, ErrBufferOverflow when the file exceeds limit
func ReadFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
		}

		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", errs.ErrInvalidArgument, path)
	}
	if limit > 0 && info.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", errs.ErrBufferOverflow, path, info.Size(), limit)
	}

	// The instrument may still be appending, so read to EOF rather than
	// trusting the size from Stat.
	var buf bytes.Buffer
	buf.Grow(int(info.Size()))
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
