package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// boundaryEpsilon is the absolute distance within which a point counts
// as lying on a polygon edge.
const boundaryEpsilon = 1e-9

// Polygon is a closed planar outline. The edge from the last point
// back to the first is implicit.
type Polygon struct {
	Points []mgl64.Vec2
}

// NewPolygon builds a polygon from at least three points. The slice is
// referenced, not copied.
func NewPolygon(points []mgl64.Vec2) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidParameter, len(points))
	}
	return Polygon{Points: points}, nil
}

// Contains reports whether pt lies inside the polygon or on its
// boundary. Interior membership uses the crossing-number rule with a
// half-open +X horizontal ray, so points on an edge within
// boundaryEpsilon always classify inside regardless of crossing
// parity. Duplicate consecutive points form zero-length edges that
// contribute nothing.
func (p Polygon) Contains(pt mgl64.Vec2) bool {
	n := len(p.Points)
	inside := false
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if onSegment(pt, a, b) {
			return true
		}
		// Half-open rule: each edge owns its lower endpoint, so a ray
		// through a vertex crosses exactly one of the two edges there.
		if (a.Y() > pt.Y()) != (b.Y() > pt.Y()) {
			x := a.X() + (pt.Y()-a.Y())/(b.Y()-a.Y())*(b.X()-a.X())
			if pt.X() < x {
				inside = !inside
			}
		}
	}
	return inside
}

// onSegment reports whether pt lies on segment ab within
// boundaryEpsilon. A zero-length segment matches only its own point.
func onSegment(pt, a, b mgl64.Vec2) bool {
	ab := b.Sub(a)
	ap := pt.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < boundaryEpsilon*boundaryEpsilon {
		return ap.Dot(ap) < boundaryEpsilon*boundaryEpsilon
	}
	cross := ab.X()*ap.Y() - ab.Y()*ap.X()
	if math.Abs(cross) > boundaryEpsilon*math.Sqrt(lenSq) {
		return false
	}
	t := ap.Dot(ab) / lenSq
	return t >= -boundaryEpsilon && t <= 1+boundaryEpsilon
}
