package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given text. It is used both for
// single tokens and for whole input buffers.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
