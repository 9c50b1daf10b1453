// Package region classifies mesh vertices against planar outlines and
// builds the splint carving outline from a profile selection.
package region

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orthopen/orthocore/pkg/geometry"
)

// Classify reports, for each projected point, whether it lies inside
// the outline or on its boundary. The result has one entry per input
// point, in input order.
func Classify(polygon geometry.Polygon, points []mgl64.Vec2) ([]bool, error) {
	if len(polygon.Points) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d", geometry.ErrInvalidParameter, len(polygon.Points))
	}
	selected := make([]bool, len(points))
	for i, p := range points {
		selected[i] = polygon.Contains(p)
	}
	return selected, nil
}

// SplintOutline builds the closed outline used to carve a foot splint
// from the scan. points are the selected profile vertices projected to
// the sagittal plane, X forward and Y up. They are sorted by elevation
// and closed around the heel side with two sentinel points at leftX,
// level with the lowest and highest profile points. Ties in elevation
// keep their input order.
func SplintOutline(points []mgl64.Vec2, leftX float64) (geometry.Polygon, error) {
	if len(points) < 3 {
		return geometry.Polygon{}, fmt.Errorf("%w: splint outline needs at least 3 profile points, got %d", geometry.ErrInvalidParameter, len(points))
	}

	sorted := make([]mgl64.Vec2, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y() < sorted[j].Y() })

	outline := make([]mgl64.Vec2, 0, len(sorted)+2)
	outline = append(outline, mgl64.Vec2{leftX, sorted[0].Y()})
	outline = append(outline, sorted...)
	outline = append(outline, mgl64.Vec2{leftX, sorted[len(sorted)-1].Y()})
	return geometry.NewPolygon(outline)
}
