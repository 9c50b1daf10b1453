package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is an affine local-to-world map: rotation, non-uniform
// scale and translation packed into a column-major 4x4 matrix.
type Transform struct {
	Mat mgl64.Mat4
}

// NewTransform wraps an affine matrix.
func NewTransform(m mgl64.Mat4) Transform {
	return Transform{Mat: m}
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Mat: mgl64.Ident4()}
}

// TRS composes translation, rotation and scale in the conventional
// T*R*S order.
func TRS(translate mgl64.Vec3, rotate mgl64.Mat4, scale mgl64.Vec3) Transform {
	m := mgl64.Translate3D(translate.X(), translate.Y(), translate.Z())
	m = m.Mul4(rotate)
	m = m.Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
	return Transform{Mat: m}
}

// Point maps p through the transform as a position (w = 1).
func (t Transform) Point(p mgl64.Vec3) mgl64.Vec3 {
	return t.Mat.Mul4x1(p.Vec4(1)).Vec3()
}

// Inverse returns the world-to-local transform. It fails with
// ErrDegenerateGeometry when the matrix is singular.
func (t Transform) Inverse() (Transform, error) {
	d := t.Mat.Det()
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return Transform{}, fmt.Errorf("%w: transform is not invertible", ErrDegenerateGeometry)
	}
	return Transform{Mat: t.Mat.Inv()}, nil
}
