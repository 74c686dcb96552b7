package source

import (
	"fmt"

	"github.com/go-kit/log"

	"github.com/arloliu/tokread/errs"
	"github.com/arloliu/tokread/format"
	"github.com/arloliu/tokread/internal/options"
	"github.com/arloliu/tokread/internal/pool"
)

// Config holds the settings used by Load.
type Config struct {
	compression     format.CompressionType
	maxSize         int64
	initialCapacity int
	logger          log.Logger
}

func newConfig() *Config {
	return &Config{
		compression:     format.CompressionAuto,
		initialCapacity: pool.InputBufferDefaultSize,
		logger:          log.NewNopLogger(),
	}
}

// Option represents a functional option for configuring Load.
type Option = options.Option[*Config]

// WithCompression sets how the raw input is decoded before tokenization.
// The default, format.CompressionAuto, detects the codec from the payload.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		switch c {
		case format.CompressionAuto, format.CompressionNone, format.CompressionZstd,
			format.CompressionS2, format.CompressionLZ4:
			cfg.compression = c
			return nil
		default:
			return fmt.Errorf("%w: compression %s", errs.ErrInvalidOption, c)
		}
	})
}

// WithMaxSize limits the size of the input in bytes, checked both before and
// after decompression. Zero means unlimited.
func WithMaxSize(n int64) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: max size %d", errs.ErrInvalidOption, n)
		}
		cfg.maxSize = n

		return nil
	})
}

// WithInitialCapacity sets how many bytes are reserved before the first read.
func WithInitialCapacity(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: initial capacity %d", errs.ErrInvalidOption, n)
		}
		cfg.initialCapacity = n

		return nil
	})
}

// WithLogger sets the logger used for debug output. A nil logger disables logging.
func WithLogger(l log.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if l == nil {
			l = log.NewNopLogger()
		}
		cfg.logger = l
	})
}
