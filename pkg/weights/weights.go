// Package weights synthesizes the per-vertex weight field that drives
// realistic foot-angle deformation around an ankle pivot.
package weights

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orthopen/orthocore/pkg/geometry"
)

// Field holds one deformation weight per mesh vertex, each in [0, 1].
type Field []float64

// Generate computes the weight field for vertices around pivot, all in
// the same local space. Vertices below the pivot move as a solid block
// (weight 1); at and above it, weight falls off linearly from 1 to 0
// across deformZoneHeight so the deformation blends into the fixed
// part of the leg. Weights preserve vertex order.
func Generate(vertices []mgl64.Vec3, pivot mgl64.Vec3, deformZoneHeight float64) (Field, error) {
	if !(deformZoneHeight > 0) {
		return nil, fmt.Errorf("%w: deformation zone height must be positive, got %v", geometry.ErrInvalidParameter, deformZoneHeight)
	}

	field := make(Field, len(vertices))
	for i, v := range vertices {
		dz := v.Z() - pivot.Z()
		if dz >= 0 {
			field[i] = mgl64.Clamp(1-dz/deformZoneHeight, 0, 1)
		} else {
			field[i] = 1
		}
	}
	return field, nil
}

// PivotPlacement returns the hinge origin for the deformation
// armature: the marked ankle point pushed half the leg thickness along
// +Y, into the middle of the joint. Local space in, local space out.
func PivotPlacement(pivot mgl64.Vec3, legThickness float64) mgl64.Vec3 {
	return mgl64.Vec3{pivot.X(), pivot.Y() + legThickness/2, pivot.Z()}
}
