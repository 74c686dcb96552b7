package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/tokread/format"
)

// lz4WriterPool pools frame writers; each keeps its block buffers between uses.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// LZ4Compressor reads and writes LZ4 frames.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data as an LZ4 frame.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(w)

	w.Reset(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decodes an LZ4 frame.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, corrupt(format.CompressionLZ4, err)
	}

	return out, nil
}

// DecompressLimit streams the payload and stops after limit+1 bytes.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int64) ([]byte, error) {
	if limit <= 0 {
		return c.Decompress(data)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return readLimited(format.CompressionLZ4, lz4.NewReader(bytes.NewReader(data)), limit)
}
