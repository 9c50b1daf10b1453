// Package session is the host-facing orchestration layer: it wires
// picking, region selection, weight generation, template generation
// and fitment into the operator entry points a host editor calls, with
// explicit edit-state preconditions and structured logging.
package session

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/orthopen/orthocore/pkg/fitment"
	"github.com/orthopen/orthocore/pkg/geometry"
	"github.com/orthopen/orthocore/pkg/mesh"
	"github.com/orthopen/orthocore/pkg/picking"
	"github.com/orthopen/orthocore/pkg/region"
	"github.com/orthopen/orthocore/pkg/template"
	"github.com/orthopen/orthocore/pkg/weights"
)

// Session runs the operators against a fixed preset set. Methods are
// safe for concurrent use as long as the logger is; the presets are
// read-only after construction.
type Session struct {
	presets Presets
	log     *zap.Logger
}

// New builds a session. A nil logger is replaced by a no-op one.
func New(presets Presets, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{presets: presets, log: log}
}

// Presets returns the presets the session runs with.
func (s *Session) Presets() Presets {
	return s.presets
}

// PickObject casts a world-space ray against the candidates and
// returns the nearest hit, with ok=false on a miss.
func (s *Session) PickObject(ray geometry.Ray, candidates []picking.Candidate) (picking.Hit, bool) {
	hit, ok := picking.Pick(ray, candidates)
	if ok {
		s.log.Debug("picked object",
			zap.String("name", hit.Name),
			zap.Int("candidate", hit.Candidate),
			zap.Float64("distance_sq", hit.DistanceSq))
	} else {
		s.log.Debug("pick missed", zap.Int("candidates", len(candidates)))
	}
	return hit, ok
}

// FootPivot is the result of marking the ankle: the weight field that
// moves the foot, the hinge pivot, the armature origin in world space,
// and the corrective smoothing the host should apply for a realistic
// angle adjustment.
type FootPivot struct {
	Weights             weights.Field
	PivotLocal          mgl64.Vec3
	ArmatureOriginWorld mgl64.Vec3
	SmoothFactor        float64
	SmoothIterations    int
}

// SetFootPivot marks the selected vertex as the ankle and derives the
// deformation setup around it. It requires edit mode on a mesh with
// exactly one selected vertex.
func (s *Session) SetFootPivot(state EditState, leg *mesh.Mesh, legTransform geometry.Transform) (FootPivot, error) {
	if err := requireState(state, EditMode, KindMesh); err != nil {
		return FootPivot{}, err
	}
	if len(state.SelectedVertices) != 1 {
		return FootPivot{}, fmt.Errorf("%w: exactly one vertex must be selected, got %d", geometry.ErrInvalidParameter, len(state.SelectedVertices))
	}
	if leg == nil {
		return FootPivot{}, fmt.Errorf("%w: no active mesh", geometry.ErrInvalidParameter)
	}
	idx := state.SelectedVertices[0]
	if idx < 0 || idx >= len(leg.Vertices) {
		return FootPivot{}, fmt.Errorf("%w: selected vertex %d of %d", geometry.ErrInvalidParameter, idx, len(leg.Vertices))
	}
	ankle := leg.Vertices[idx]

	field, err := weights.Generate(leg.Vertices, ankle, s.presets.Deformation.ZoneHeight)
	if err != nil {
		return FootPivot{}, err
	}
	pivot := weights.PivotPlacement(ankle, s.presets.Deformation.LegThickness)

	s.log.Info("foot pivot set",
		zap.String("mesh", leg.Name),
		zap.Int("vertex", idx),
		zap.Float64("zone_height", s.presets.Deformation.ZoneHeight))

	return FootPivot{
		Weights:             field,
		PivotLocal:          pivot,
		ArmatureOriginWorld: legTransform.Point(pivot),
		SmoothFactor:        s.presets.Deformation.SmoothFactor,
		SmoothIterations:    s.presets.Deformation.SmoothIterations,
	}, nil
}

// CarveSplintOutline rebuilds the vertex selection to the splint
// region: the selected profile vertices are projected to the sagittal
// plane, closed around the heel side and every vertex inside the
// outline selects. It requires edit mode on a mesh with at least three
// selected vertices. The new selection is returned, one flag per
// vertex; the input state is not touched.
func (s *Session) CarveSplintOutline(state EditState, foot *mesh.Mesh) ([]bool, error) {
	if err := requireState(state, EditMode, KindMesh); err != nil {
		return nil, err
	}
	if len(state.SelectedVertices) < 3 {
		return nil, fmt.Errorf("%w: at least 3 vertices must be selected, got %d", geometry.ErrInvalidParameter, len(state.SelectedVertices))
	}
	if foot == nil || len(foot.Vertices) == 0 {
		return nil, fmt.Errorf("%w: mesh has no vertices", geometry.ErrInvalidParameter)
	}

	profile := make([]mgl64.Vec2, 0, len(state.SelectedVertices))
	for _, vi := range state.SelectedVertices {
		if vi < 0 || vi >= len(foot.Vertices) {
			return nil, fmt.Errorf("%w: selected vertex %d of %d", geometry.ErrInvalidParameter, vi, len(foot.Vertices))
		}
		v := foot.Vertices[vi]
		profile = append(profile, mgl64.Vec2{v.X(), v.Z()})
	}

	// Close the outline just beyond the heel-side mesh bound instead
	// of at an arbitrary far-away coordinate.
	bounds, _ := foot.Bounds()
	leftX := bounds.Min.X() - s.presets.Splint.Margin

	outline, err := region.SplintOutline(profile, leftX)
	if err != nil {
		return nil, err
	}

	points := make([]mgl64.Vec2, len(foot.Vertices))
	for i, v := range foot.Vertices {
		points[i] = mgl64.Vec2{v.X(), v.Z()}
	}
	selection, err := region.Classify(outline, points)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, sel := range selection {
		if sel {
			count++
		}
	}
	s.log.Info("splint outline carved",
		zap.String("mesh", foot.Name),
		zap.Int("profile_points", len(profile)),
		zap.Int("selected", count))
	return selection, nil
}

// Measurements are the patient measurements for cosmetics generation.
// Zero fields fall back to the session presets.
type Measurements struct {
	Circumference float64
	Height        float64
	ClipStart     float64
}

// Cosmetics bundles the generated template parts with the fit the host
// applies: the shell's new scale and the clip's Z translation.
type Cosmetics struct {
	Shell       *mesh.Mesh
	Clip        *mesh.Mesh
	ShellScale  mgl64.Vec3
	ClipOffsetZ float64
}

// GenerateCosmetics builds the template shell and fastening clip and
// fits them to the measurements.
func (s *Session) GenerateCosmetics(m Measurements) (Cosmetics, error) {
	if m.Circumference == 0 {
		m.Circumference = s.presets.Cosmetics.Circumference
	}
	if m.Height == 0 {
		m.Height = s.presets.Cosmetics.Height
	}
	if m.ClipStart == 0 {
		m.ClipStart = s.presets.Cosmetics.ClipStart
	}

	shellParams := template.DefaultShell()
	shellParams.Cells = s.presets.Cosmetics.MeshCells
	shell, shellBounds, err := template.CosmeticsShell(shellParams)
	if err != nil {
		return Cosmetics{}, err
	}

	clipParams := template.DefaultClip()
	clipParams.Cells = s.presets.Cosmetics.MeshCells
	clip, clipBounds, err := template.FasteningClip(clipParams)
	if err != nil {
		return Cosmetics{}, err
	}

	one := mgl64.Vec3{1, 1, 1}
	scale, offset, err := fitment.Fit(
		fitment.Part{Bounds: shellBounds, Scale: one},
		fitment.Part{Bounds: clipBounds, Scale: one},
		template.HalfProfileCorrection,
		fitment.Spec{
			Target:       fitment.TargetFromCircumference(m.Circumference, m.Height),
			AnchorOffset: m.ClipStart,
		},
	)
	if err != nil {
		return Cosmetics{}, err
	}

	s.log.Info("cosmetics generated",
		zap.Float64("circumference", m.Circumference),
		zap.Float64("height", m.Height),
		zap.Float64("clip_offset_z", offset))

	return Cosmetics{Shell: shell, Clip: clip, ShellScale: scale, ClipOffsetZ: offset}, nil
}

// FindScans returns the indices of candidates whose mesh is tagged as
// an imported scan.
func (s *Session) FindScans(candidates []picking.Candidate) []int {
	var scans []int
	for i, c := range candidates {
		if c.Mesh != nil && c.Mesh.HasTag(mesh.TagImportedScan) {
			scans = append(scans, i)
		}
	}
	s.log.Debug("scans found", zap.Int("count", len(scans)))
	return scans
}

func requireState(state EditState, mode Mode, kind ObjectKind) error {
	if state.Mode != mode || state.ActiveKind != kind {
		return fmt.Errorf("%w: operator needs %s mode on a %s, got %s mode on a %s",
			geometry.ErrInvalidParameter, mode, kind, state.Mode, state.ActiveKind)
	}
	return nil
}
