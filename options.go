package interop

import (
	"fmt"

	"github.com/arloliu/interop/compress"
	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/format"
	"github.com/arloliu/interop/internal/options"
)

// Option configures reads, writes and watchers.
//
// Options that do not apply to an operation are ignored by it. Readers ignore
// WithCompression and writers ignore WithDecompression and WithMaxFileSize.
type Option = options.Option[*config]

type config struct {
	logger      *Logger
	decompress  bool
	maxFileSize int64
	compression format.CompressionType
	concurrency int
}

func defaultConfig() *config {
	return &config{
		logger:      NoopLogger(),
		decompress:  true,
		compression: format.CompressionNone,
		concurrency: 4,
	}
}

func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger *Logger) Option {
	return options.New(func(c *config) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidArgument)
		}
		c.logger = logger

		return nil
	})
}

// WithDecompression controls whether compressed input is detected by its
// magic bytes and inflated before decoding. It is enabled by default.
func WithDecompression(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.decompress = enabled
	})
}

// WithMaxFileSize rejects inputs larger than n bytes with ErrBufferOverflow.
// The limit applies to the stored and to the decompressed size. Zero, the
// default, disables the check.
func WithMaxFileSize(n int64) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: negative max file size %d", errs.ErrInvalidArgument, n)
		}
		c.maxFileSize = n

		return nil
	})
}

// WithCompression compresses written files with the given algorithm.
// The default writes plain files as instrument software expects.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.GetCodec(compressionType); err != nil {
			return err
		}
		c.compression = compressionType

		return nil
	})
}

// WithConcurrency bounds the number of files LoadRun decodes at once.
func WithConcurrency(n int) Option {
	return options.New(func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: concurrency %d", errs.ErrInvalidArgument, n)
		}
		c.concurrency = n

		return nil
	})
}

func (c *config) checkSize(size int) error {
	if c.maxFileSize > 0 && int64(size) > c.maxFileSize {
		return fmt.Errorf("%w: %d bytes exceed the %d byte limit", errs.ErrBufferOverflow, size, c.maxFileSize)
	}

	return nil
}
