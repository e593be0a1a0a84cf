package utils

import "hash/fnv"

// FingerprintString hashes s with fnv-1a. Every statement-node
// fingerprint bottoms out here.
func FingerprintString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Mix64 folds two fingerprints into one stable key. Order matters.
func Mix64(a, b uint64) uint64 {
	h := fnv.New64a()
	h.Write(U64ToBytes(a))
	h.Write(U64ToBytes(b))
	return h.Sum64()
}

// U64ToBytes spreads u big-endian, for feeding one fingerprint into a
// running hash.
func U64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}
