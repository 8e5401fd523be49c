// Package hash provides the value hashing used by the Hash blend modes.
//
// Scalars and strings are hashed with CRC32-Castagnoli (hardware accelerated
// by hash/crc32 on x86 SSE4.2 and ARM CRC). Hashes are combined with a
// Jenkins style mix:
//
//	h := hash.Combine(hash.Float64(a), hash.Float64(b))
//
// Results are stable across processes and platforms, so hashed attributes
// can be compared between runs.
package hash
