package checksum

import (
	"github.com/cespare/xxhash/v2"

	"github.com/gernest/vec/internal/magic"
)

// Hash returns uint64 xxhash checksum of data. This is the only hash function used.
func Hash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Of digests a slice of fixed-size, pointer-free elements by hashing its raw
// bytes. Two sequences digest equal iff their memory is identical, which is
// what the bench tool uses to confirm competing implementations agree.
func Of[T any](s []T) uint64 {
	return Hash(magic.ReinterpretSlice[byte](s))
}
