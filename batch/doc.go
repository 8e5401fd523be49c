// Package batch blends whole buffers of one kind at a time.
//
// Buffers are kind-homogeneous runs of values (see Buffer and Of). Blend
// combines two buffers element by element; Accumulate folds a source buffer
// into target slots through an index. Both accept an optional roaring
// selection mask and can spread disjoint ranges over several goroutines.
//
// Double and vector buffers blended with a uniform weight and no selection
// run on contiguous float64 kernels.
//
//	op := pool.Default().Get(value.KindDouble, blend.Lerp, false)
//	err := batch.Blend(ctx, op, batch.Of(out), batch.Of(a), batch.Of(b), []float64{0.25})
package batch
