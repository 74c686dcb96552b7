//go:build cgo && gozstd

package compress

import (
	"bytes"

	"github.com/valyala/gozstd"

	"github.com/arloliu/tokread/format"
)

const gozstdLevel = 7

// Compress encodes data as a single Zstandard frame using libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes Zstandard frames using libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, corrupt(format.CompressionZstd, err)
	}

	return out, nil
}

// DecompressLimit streams the frames through libzstd and stops after limit+1 bytes.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int64) ([]byte, error) {
	if limit <= 0 {
		return c.Decompress(data)
	}
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	return readLimited(format.CompressionZstd, zr, limit)
}
