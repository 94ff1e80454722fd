// Package errs defines the sentinel errors returned by the interop packages.
//
// Callers match them with errors.Is. Every error produced by the codec, the
// metric set and the file I/O layer wraps exactly one of these sentinels.
package errs

import "errors"

var (
	// ErrFileNotFound is returned when the metric file or its directory does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrIncompleteFile is returned when a stream ends inside a header or a record.
	// The instrument is usually still writing the file, so callers may retry.
	ErrIncompleteFile = errors.New("incomplete file")

	// ErrBadFormat is returned when the data does not match the expected layout.
	ErrBadFormat = errors.New("bad format")

	// ErrUnsupportedVersion is returned when no codec is registered for a file version.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrInvalidMetricType is returned for an unknown metric group identifier.
	ErrInvalidMetricType = errors.New("invalid metric type")

	// ErrBufferOverflow is returned when a destination buffer is too small,
	// or when a size field read from a file exceeds the available data.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrIndexOutOfRange is returned by positional access past the end of a metric set.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for malformed caller input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// IsRetryable reports whether err signals a file that is still being written.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrIncompleteFile)
}
