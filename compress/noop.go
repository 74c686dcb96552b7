package compress

// NoOpCompressor passes plain text input through unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns at most limit+1 bytes of data, sharing its memory.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int64) ([]byte, error) {
	if limit > 0 && int64(len(data)) > limit {
		return data[:limit+1], nil
	}

	return data, nil
}
