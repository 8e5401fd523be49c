package hash

import (
	"encoding/binary"
	"hash/crc32"
	"math"
)

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Float64 hashes the bit pattern of f. Negative zero hashes like zero.
func Float64(f float64) uint32 {
	if f == 0 {
		f = 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	return CRC32C(buf[:])
}

// Int64 hashes v.
func Int64(v int64) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return CRC32C(buf[:])
}

// String hashes the bytes of s.
func String(s string) uint32 {
	return crc32.Update(0, crc32cTable, []byte(s))
}

// Combine mixes two hashes into one. It is not commutative.
func Combine(a, c uint32) uint32 {
	b := uint32(0x9e3779b9)

	a -= c
	a ^= c >> 13
	b -= c
	b -= a
	b ^= a << 8
	c -= a
	c -= b
	c ^= b >> 13
	a -= b
	a -= c
	a ^= c >> 12
	b -= c
	b -= a
	b ^= a << 16
	c -= a
	c -= b
	c ^= b >> 5
	a -= b
	a -= c
	a ^= c >> 3
	b -= c
	b -= a
	b ^= a << 10
	c -= a
	c -= b
	c ^= b >> 15

	return c
}

// Floats hashes a sequence of floats in order.
func Floats(fs ...float64) uint32 {
	var h uint32
	for i, f := range fs {
		if i == 0 {
			h = Float64(f)
			continue
		}
		h = Combine(h, Float64(f))
	}
	return h
}
