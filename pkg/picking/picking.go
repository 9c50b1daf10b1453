// Package picking selects the candidate surface point nearest a
// world-space ray.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orthopen/orthocore/pkg/geometry"
	"github.com/orthopen/orthocore/pkg/mesh"
)

// distanceEpsilon breaks ties between candidates whose hit points are
// equally far from the ray origin: the earlier candidate keeps the hit.
const distanceEpsilon = 1e-9

// Candidate pairs a mesh with its local-to-world transform. Pick never
// mutates a candidate.
type Candidate struct {
	Mesh      *mesh.Mesh
	Transform geometry.Transform
}

// Hit describes the closest surface point found by Pick.
type Hit struct {
	// Candidate indexes the winning entry of the input slice; Name is
	// the winning mesh's name.
	Candidate int
	Name      string

	// Point and Normal are in the candidate's local space. The normal
	// is the unit face normal of the hit triangle.
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Triangle int

	// DistanceSq is the squared world-space distance from the ray
	// origin to the hit point. Candidates are compared on this value,
	// not on local parametric distance, which is skewed by scale.
	DistanceSq float64
}

// Pick casts the ray against every candidate and returns the surface
// point nearest the ray origin in world space. ok is false when no
// candidate is hit. Candidates that cannot participate (nil or empty
// mesh, invalid indices, singular transform) are skipped rather than
// failing the pick.
func Pick(ray geometry.Ray, candidates []Candidate) (Hit, bool) {
	var best Hit
	found := false

	for ci, cand := range candidates {
		if cand.Mesh == nil || len(cand.Mesh.Triangles) == 0 {
			continue
		}
		if cand.Mesh.Validate() != nil {
			continue
		}
		inv, err := cand.Transform.Inverse()
		if err != nil {
			continue
		}
		local := ray.Transformed(inv)

		if bounds, ok := cand.Mesh.Bounds(); ok {
			if _, hit := local.IntersectBox(bounds); !hit {
				continue
			}
		}

		nearestT := math.Inf(1)
		nearestTri := -1
		for ti := range cand.Mesh.Triangles {
			a, b, c := cand.Mesh.Triangle(ti)
			if t, hit := local.IntersectTriangle(a, b, c); hit && t < nearestT {
				nearestT = t
				nearestTri = ti
			}
		}
		if nearestTri < 0 {
			continue
		}

		localPoint := local.At(nearestT)
		distSq := cand.Transform.Point(localPoint).Sub(ray.Origin).LenSqr()
		if found && distSq >= best.DistanceSq-distanceEpsilon {
			continue
		}
		best = Hit{
			Candidate:  ci,
			Name:       cand.Mesh.Name,
			Point:      localPoint,
			Normal:     cand.Mesh.FaceNormal(nearestTri),
			Triangle:   nearestTri,
			DistanceSq: distSq,
		}
		found = true
	}

	return best, found
}
