package oamap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a non-negative integer. It must be deterministic
// for the lifetime of a table.
type HashFunc func(key string) uint64

// MakeDefaultHashFunc returns a maphash based hash function with a fresh seed.
func MakeDefaultHashFunc() HashFunc {
	seed := maphash.MakeSeed()

	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}

// SumHash is the sum of the key's bytes. Anagrams collide, which makes it
// handy for exercising probe chains.
func SumHash(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(key[i])
	}

	return h
}

// WeightedSumHash sums each byte multiplied by its 1-based position.
func WeightedSumHash(key string) uint64 {
	var h uint64
	for i := 0; i < len(key); i++ {
		h += uint64(i+1) * uint64(key[i])
	}

	return h
}

// XXHash hashes the key with xxHash64.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
