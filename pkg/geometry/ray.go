package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// triEpsilon bounds the determinant below which a ray is treated as
// parallel to a triangle, and the parametric distance below which a
// hit is treated as starting on the origin.
const triEpsilon = 1e-12

// Ray is a half-line with origin and direction. The direction need not
// be normalized; parametric distances are only comparable on the same
// ray.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transformed maps the ray through a transform by mapping the origin
// and a second point on the ray, so that non-uniform scale bends the
// direction correctly.
func (r Ray) Transformed(t Transform) Ray {
	origin := t.Point(r.Origin)
	tip := t.Point(r.Origin.Add(r.Direction))
	return Ray{Origin: origin, Direction: tip.Sub(origin)}
}

// IntersectTriangle tests the ray against triangle abc with the
// Moeller-Trumbore algorithm. The test is two-sided. It returns the
// parametric distance to the nearest front intersection and whether
// one exists; degenerate triangles never intersect.
func (r Ray) IntersectTriangle(a, b, c mgl64.Vec3) (float64, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if det > -triEpsilon && det < triEpsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t <= triEpsilon {
		return 0, false
	}
	return t, true
}

// IntersectBox tests the ray against an axis-aligned box with the slab
// method. It returns the entry distance, or the exit distance when the
// origin is inside the box, and whether the ray hits at all.
func (r Ray) IntersectBox(box BoundingBox) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if r.Direction[i] != 0 {
			t1 := (box.Min[i] - r.Origin[i]) / r.Direction[i]
			t2 := (box.Max[i] - r.Origin[i]) / r.Direction[i]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if r.Origin[i] < box.Min[i] || r.Origin[i] > box.Max[i] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
