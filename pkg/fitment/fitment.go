// Package fitment computes the scale and translation that fit
// prosthesis template parts to patient measurements.
package fitment

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orthopen/orthocore/pkg/geometry"
)

var axisNames = [3]string{"x", "y", "z"}

// Spec is the measured fitment target: the world extent wanted per
// axis and the height of the fastening clip's lowest point above the
// shell's lowest point.
type Spec struct {
	Target       mgl64.Vec3
	AnchorOffset float64
}

// Part is a template part as currently placed: its local-space bounds
// and the scale already applied to it.
type Part struct {
	Bounds geometry.BoundingBox
	Scale  mgl64.Vec3
}

// TargetFromCircumference converts a measured calf circumference and a
// cosmetics height to target extents. The calf cross-section is
// treated as perfectly circular, so X and Y become the circle's
// diameter; a deliberate approximation, not a precision guarantee.
func TargetFromCircumference(circumference, height float64) mgl64.Vec3 {
	d := circumference / math.Pi
	return mgl64.Vec3{d, d, height}
}

// ComputeScale returns the scale that stretches a part to the target
// extents. The part's current physical size per axis is its bounds
// extent times currentScale times correction; correction doubles the
// axes on which the geometry is a half profile to be mirrored, and is
// (1,1,1) for full geometry. Fails with ErrInvalidParameter for a
// non-positive or non-finite target and ErrDegenerateGeometry for a
// zero or non-finite current size.
func ComputeScale(bounds geometry.BoundingBox, currentScale, correction, target mgl64.Vec3) (mgl64.Vec3, error) {
	size := bounds.Size()
	var scale mgl64.Vec3
	for i := 0; i < 3; i++ {
		if !(target[i] > 0) || math.IsInf(target[i], 0) {
			return mgl64.Vec3{}, fmt.Errorf("%w: target size %v on %s axis", geometry.ErrInvalidParameter, target[i], axisNames[i])
		}
		current := size[i] * currentScale[i] * correction[i]
		if current == 0 || math.IsNaN(current) || math.IsInf(current, 0) {
			return mgl64.Vec3{}, fmt.Errorf("%w: current size %v on %s axis", geometry.ErrDegenerateGeometry, current, axisNames[i])
		}
		scale[i] = currentScale[i] * target[i] / current
	}
	return scale, nil
}

// AnchorTranslation returns the Z translation that puts a secondary
// part's lowest point anchorOffset above the primary part's lowest
// point. Bounds are local; each part's Z scale converts them to world.
func AnchorTranslation(anchorOffset float64, primary geometry.BoundingBox, primaryScaleZ float64, secondary geometry.BoundingBox, secondaryScaleZ float64) float64 {
	return anchorOffset + primary.Min.Z()*primaryScaleZ - secondary.Min.Z()*secondaryScaleZ
}

// Fit rescales the primary part to the spec target and anchors the
// secondary part to it. The returned scale replaces the primary's and
// the offset translates the secondary along world Z; the anchor is
// computed against the primary's new scale, matching the order the
// parts are adjusted in. Applying both is the caller's job; no
// rotation is produced.
func Fit(primary, secondary Part, correction mgl64.Vec3, spec Spec) (mgl64.Vec3, float64, error) {
	scale, err := ComputeScale(primary.Bounds, primary.Scale, correction, spec.Target)
	if err != nil {
		return mgl64.Vec3{}, 0, err
	}
	offset := AnchorTranslation(spec.AnchorOffset, primary.Bounds, scale.Z(), secondary.Bounds, secondary.Scale.Z())
	return scale, offset, nil
}
