package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/tokread/errs"
	"github.com/arloliu/tokread/format"
)

// Compressor compresses a whole input payload.
//
// The returned slice is owned by the caller; the input slice is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error wrapping errs.ErrInvalidCompression if data is corrupt
// or was produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	// DecompressLimit stops after limit+1 decoded bytes, so a result longer
	// than limit means the payload expands past it. A limit of zero or less
	// decodes everything.
	DecompressLimit(data []byte, limit int64) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// CompressionAuto is not a codec; resolve it with format.Detect first.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: no codec for %s", errs.ErrInvalidCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %s", errs.ErrInvalidCompression, compressionType)
}

func corrupt(kind format.CompressionType, err error) error {
	return fmt.Errorf("%w: %s payload: %w", errs.ErrInvalidCompression, kind, err)
}

// readLimited drains r, reading at most limit+1 bytes.
func readLimited(kind format.CompressionType, r io.Reader, limit int64) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, corrupt(kind, err)
	}

	return out, nil
}
