package interop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/arloliu/interop/encoding"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/internal/hash"
	"github.com/arloliu/interop/metric"
	"github.com/arloliu/interop/source"
)

// Watcher re-reads a metric file that the instrument is still writing.
//
// Each Poll reads the file and compares its digest with the last decoded
// contents, so an unchanged file is never decoded twice. A file caught in the
// middle of a record yields ErrIncompleteFile and leaves the previous set in
// place.
//
// Thread Safety: a Watcher is safe for concurrent use.
type Watcher[T metric.Record] struct {
	codec *encoding.Codec[T]
	path  string
	cfg   *config
	log   *Logger

	mu     sync.Mutex
	digest uint64
	seen   bool
	set    *metric.Set[T]
}

// NewWatcher creates a Watcher for the file at path. No I/O happens until the
// first Poll.
func NewWatcher[T metric.Record](codec *encoding.Codec[T], path string, opts ...Option) (*Watcher[T], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Watcher[T]{
		codec: codec,
		path:  path,
		cfg:   cfg,
		log:   cfg.logger.WithMetricGroup(codec.Group()).WithPath(path),
	}, nil
}

// Path returns the watched file path.
func (w *Watcher[T]) Path() string {
	return w.path
}

// Current returns the last successfully decoded set, or nil before the first
// successful Poll.
func (w *Watcher[T]) Current() *metric.Set[T] {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.set
}

// Poll reads the file once.
//
// Returns:
//   - *metric.Set[T]: Latest decoded set, which is the previous one when the
//     file is unchanged or unreadable
//   - bool: true when the file changed and was decoded
//   - error: Read or decode failure; errs.IsRetryable reports whether the
//     file was incomplete
func (w *Watcher[T]) Poll() (*metric.Set[T], bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	data, err := source.ReadFile(w.path, w.cfg.maxFileSize)
	if err != nil {
		return w.set, false, err
	}

	digest := hash.Digest(data)
	if w.seen && digest == w.digest {
		return w.set, false, nil
	}

	set, err := readBuffer(context.Background(), w.cfg, w.codec, data, w.log)
	if err != nil {
		return w.set, false, err
	}

	w.digest, w.seen, w.set = digest, true, set

	return set, true, nil
}

// Wait polls every interval until the file changes and decodes cleanly.
//
// Missing and incomplete files are retried. Any other error, or the end of
// ctx, stops the wait. A non-positive interval yields ErrInvalidArgument.
func (w *Watcher[T]) Wait(ctx context.Context, interval time.Duration) (*metric.Set[T], error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: poll interval %s", errs.ErrInvalidArgument, interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		set, changed, err := w.Poll()
		switch {
		case err == nil && changed:
			return set, nil
		case err != nil && !errs.IsRetryable(err) && !errors.Is(err, errs.ErrFileNotFound):
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
