// Package source acquires the whole token buffer from an io.Reader.
//
// Load reads everything up front, decompresses it when needed and returns
// one immutable string. Tokens taken from that string by a reader are
// substrings, so the buffer lives exactly as long as the last token that
// still refers to it.
package source

import (
	"fmt"
	"io"

	"github.com/go-kit/log/level"

	"github.com/arloliu/tokread/compress"
	"github.com/arloliu/tokread/errs"
	"github.com/arloliu/tokread/format"
	"github.com/arloliu/tokread/internal/options"
	"github.com/arloliu/tokread/internal/pool"
)

// Load reads r to EOF and returns its decoded content.
//
// Errors are returned, never panicked: a failing reader yields an error
// wrapping errs.ErrSourceRead, oversized input errs.ErrInputTooLarge, and
// corrupt compressed input errs.ErrInvalidCompression.
func Load(r io.Reader, opts ...Option) (string, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return "", err
	}

	bb := pool.GetInputBuffer()
	defer pool.PutInputBuffer(bb)
	bb.Grow(cfg.initialCapacity)

	src := r
	if cfg.maxSize > 0 {
		src = io.LimitReader(r, cfg.maxSize+1)
	}
	if _, err := bb.ReadFrom(src); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrSourceRead, err)
	}
	if err := cfg.checkSize(bb.Len()); err != nil {
		return "", err
	}

	kind := cfg.compression
	if kind == format.CompressionAuto {
		kind = format.Detect(bb.Bytes())
	}

	codec, err := compress.GetCodec(kind)
	if err != nil {
		return "", err
	}
	data, err := codec.DecompressLimit(bb.Bytes(), cfg.maxSize)
	if err != nil {
		return "", err
	}
	if err := cfg.checkSize(len(data)); err != nil {
		return "", err
	}

	// The copy detaches the text from the pooled buffer.
	text := string(data)

	level.Debug(cfg.logger).Log(
		"msg", "input loaded",
		"compression", kind,
		"raw_bytes", bb.Len(),
		"bytes", len(text),
	)

	return text, nil
}

func (c *Config) checkSize(n int) error {
	if c.maxSize > 0 && int64(n) > c.maxSize {
		return fmt.Errorf("%w: more than %d bytes", errs.ErrInputTooLarge, c.maxSize)
	}

	return nil
}
