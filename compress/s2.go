package compress

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/tokread/format"
)

var s2WriterPool = sync.Pool{
	New: func() any {
		return s2.NewWriter(nil, s2.WriterConcurrency(1), s2.WriterBetterCompression())
	},
}

// S2Compressor reads and writes S2 streams.
//
// Decompress also accepts Snappy framed streams, so input produced by
// other snappy tooling can be fed to the reader directly.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as an S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w, _ := s2WriterPool.Get().(*s2.Writer)
	defer s2WriterPool.Put(w)

	w.Reset(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decodes an S2 or Snappy stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(s2.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, corrupt(format.CompressionS2, err)
	}

	return out, nil
}

// DecompressLimit streams the payload and stops after limit+1 bytes.
func (c S2Compressor) DecompressLimit(data []byte, limit int64) ([]byte, error) {
	if limit <= 0 {
		return c.Decompress(data)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return readLimited(format.CompressionS2, s2.NewReader(bytes.NewReader(data)), limit)
}
