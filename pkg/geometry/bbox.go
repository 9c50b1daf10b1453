package geometry

import "github.com/go-gl/mathgl/mgl64"

// BoundingBox is an axis-aligned box between two corners.
type BoundingBox struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBoundingBox builds a box from two corners, swapping components
// where needed so that Min <= Max on every axis. Negative scales on a
// transformed box are tolerated this way.
func NewBoundingBox(min, max mgl64.Vec3) BoundingBox {
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			min[i], max[i] = max[i], min[i]
		}
	}
	return BoundingBox{Min: min, Max: max}
}

// BoundsOf computes the tight axis-aligned bounds of a point set.
// ok is false for an empty set.
func BoundsOf(points []mgl64.Vec3) (box BoundingBox, ok bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	box.Min = points[0]
	box.Max = points[0]
	for _, p := range points[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < box.Min[i] {
				box.Min[i] = p[i]
			}
			if p[i] > box.Max[i] {
				box.Max[i] = p[i]
			}
		}
	}
	return box, true
}

// Size returns the extent per axis.
func (b BoundingBox) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b BoundingBox) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
