// Package convert implements the conversion matrix between value kinds.
//
// The matrix is a dense table of 14×14 conversion functions built once
// during package initialisation. Looking a pair up is a double index, never
// a branch cascade, and the table is read-only afterwards so any number of
// goroutines may convert concurrently.
//
// Conversions are total. Lossy pairs follow fixed rules (a transform read as
// a scalar yields its translation X, a rotation read as a boolean reports
// whether it differs from identity) and pairs without a meaningful rule
// write the destination's default value.
//
// Callers converting a whole buffer resolve the function once:
//
//	fn := convert.Lookup(value.KindVector, value.KindDouble)
//	for i := range src {
//	    fn(unsafe.Pointer(&src[i]), unsafe.Pointer(&dst[i]))
//	}
package convert
