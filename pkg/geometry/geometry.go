// Package geometry provides the geometric primitives shared by the
// picking, region, weights and fitment packages: affine transforms,
// rays, axis-aligned bounds and planar polygons.
package geometry

import "errors"

var (
	// ErrInvalidParameter reports an argument outside its valid range.
	ErrInvalidParameter = errors.New("geometry: invalid parameter")

	// ErrDegenerateGeometry reports input with no usable extent, such as
	// a singular transform or a zero-size bounding box axis.
	ErrDegenerateGeometry = errors.New("geometry: degenerate geometry")
)
