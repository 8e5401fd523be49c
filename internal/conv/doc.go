// Package conv provides saturating numeric conversions.
//
// Converting an out-of-range float to an integer type is implementation
// defined in Go. Every float to integer coercion in the engine goes through
// this package so that huge values clamp to the integer range and NaN maps
// to zero on every platform.
//
// IntToUint32 is the checked variant used where an index must fit a
// 32-bit bitmap.
package conv
