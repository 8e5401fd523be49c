// Package valgebra is a type-generic value algebra: a fixed set of value
// kinds, a total conversion matrix between them, blend operators over every
// kind, and sub-selections that read and write parts of composite values.
//
// # Quick Start
//
//	e := valgebra.New()
//
//	// Blend two Go values.
//	mid := valgebra.Apply(e, blend.Lerp, value.Vec3{X: 0}, value.Vec3{X: 10}, 0.25)
//
//	// Blend whole buffers.
//	err := e.Blend(ctx, blend.Average, batch.Of(out), batch.Of(a), batch.Of(b), nil)
//
//	// Read a sub-value.
//	x := valgebra.Get[float64](subsel.MustParse("Position", "X"), xf)
//
// # Layers
//
// The engine layers never return errors: conversions degrade to defaults,
// unsupported blend modes degrade to CopySource and unknown sub-selections
// pass values through. Everything that can fail (kind and mode names,
// attribute paths, recipes, buffer shapes) is resolved up front by ParseKind,
// ParseMode, Engine.Resolve, the recipe package and the batch package.
//
//   - value: kinds, Go value types, traits, text format and hashing
//   - convert: the 14×14 conversion matrix
//   - blend: modes and operators
//   - subsel: sub-selection tokens and Get/Set
//   - pool: the process-wide operator cache
//   - batch: whole-buffer blending and accumulation
//   - selector: attribute-path resolution
//   - recipe: YAML blend recipes
//
// # Kernel selection
//
// Batched blends of Double and vector buffers run on float64 slice kernels.
// Set VALGEBRA_KERNEL=generic or VALGEBRA_KERNEL=unrolled to override the
// CPU-based choice.
package valgebra
