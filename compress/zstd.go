package compress

// ZstdCompressor reads and writes Zstandard frames.
//
// Zstd gives the best ratio on repetitive numeric text and is the default
// codec of the pack subcommand. The implementation lives in zstd_pure.go
// or, with the gozstd build tag, zstd_cgo.go.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
