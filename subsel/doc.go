// Package subsel addresses components of composite values.
//
// A Selection is parsed from a short token sequence drawn from three
// vocabularies: transform parts (Position, Rotation, Scale), scalar fields
// (X, Y, Z, W, Length, SquaredLength, Volume, Sum and their aliases) and
// rotation axes (Forward, Backward, Right, Left, Up, Down). Tokens compose,
// so "Rotation Up" addresses the up axis of a transform's rotation and
// "Position X" the first component of its translation.
//
// Get extracts the addressed sub-value and converts it to the caller's
// kind. Set writes only the addressed sub-value and leaves the rest of the
// composite untouched. Both bridge kinds through the conversion matrix.
package subsel
