// Package blend implements the blend algebra over value kinds.
//
// An Operator is bound to a kind, a Mode and a reset flag. It combines two
// opaque values with Blend, or folds a sequence of weighted values into a
// target with BeginAccumulation, Accumulate and EndAccumulation.
//
// Every mode is assembled once per kind from a small set of typed
// primitives. Trait gating happens at construction: a mode the kind cannot
// support (Lerp on text, arithmetic on text, ordering on kinds without one)
// degrades to CopySource, so the hot path never branches on capability.
//
// Accumulation policy depends on the mode:
//
//   - Min, Max, the Unsigned/Absolute/Component variants and the hash modes
//     seed the target with the first value verbatim.
//   - Average, Add, Subtract, Weight, WeightedAdd and WeightedSubtract count
//     the target's original value as one sample unless the operator resets.
//
// Divide and Mod read a double proxy of the second operand through the
// conversion matrix. Division or modulo by zero returns the first operand.
package blend
