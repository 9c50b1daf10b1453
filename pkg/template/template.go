// Package template generates the parametric stand-in geometry for the
// prosthesis cosmetics: a half-profile calf shell and a fastening
// clip. Parts are modeled as signed distance fields and tessellated in
// memory, so no asset files are read.
package template

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/orthopen/orthocore/pkg/geometry"
	"github.com/orthopen/orthocore/pkg/mesh"
)

// HalfProfileCorrection doubles the X axis when fitting the shell,
// which models only one half of the calf and is mirrored by the host.
var HalfProfileCorrection = mgl64.Vec3{2, 1, 1}

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 128

// ShellParams sizes the nominal cosmetics shell. Fitment rescales the
// result to the patient's measurements afterwards.
type ShellParams struct {
	Height        float64 // Z extent, centered on the origin
	OuterRadius   float64
	WallThickness float64
	Cells         int // marching cubes resolution, defaulted when 0
}

// ClipParams sizes the nominal fastening clip.
type ClipParams struct {
	Width  float64 // X extent
	Depth  float64 // Y extent
	Height float64 // Z extent
	Round  float64 // corner rounding radius
	Cells  int
}

// DefaultShell is the nominal shell the generator starts from.
func DefaultShell() ShellParams {
	return ShellParams{Height: 0.2, OuterRadius: 0.05, WallThickness: 0.01}
}

// DefaultClip is the nominal fastening clip.
func DefaultClip() ClipParams {
	return ClipParams{Width: 0.08, Depth: 0.03, Height: 0.04, Round: 0.005}
}

// CosmeticsShell builds the half-profile calf shell: a hollow cylinder
// cut to its -X half, open at top and bottom. The returned bounds are
// the tessellated mesh's local bounds, which is what fitment measures.
func CosmeticsShell(p ShellParams) (*mesh.Mesh, geometry.BoundingBox, error) {
	if !(p.Height > 0) || !(p.OuterRadius > 0) {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: shell height and radius must be positive", geometry.ErrInvalidParameter)
	}
	if !(p.WallThickness > 0) || p.WallThickness >= p.OuterRadius {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: wall thickness %v outside (0, %v)", geometry.ErrInvalidParameter, p.WallThickness, p.OuterRadius)
	}

	outer, err := sdf.Cylinder3D(p.Height, p.OuterRadius, 0)
	if err != nil {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: outer wall: %v", geometry.ErrInvalidParameter, err)
	}
	inner, err := sdf.Cylinder3D(p.Height, p.OuterRadius-p.WallThickness, 0)
	if err != nil {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: inner wall: %v", geometry.ErrInvalidParameter, err)
	}
	tube := sdf.Difference3D(outer, inner)

	// Keep the -X half by intersecting with a box ending at x=0. The
	// box is padded on its free sides so only the x=0 face cuts.
	pad := 0.1 * p.OuterRadius
	cut, err := sdf.Box3D(v3.Vec{
		X: p.OuterRadius + pad,
		Y: 2 * (p.OuterRadius + pad),
		Z: p.Height + 2*pad,
	}, 0)
	if err != nil {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: half cut: %v", geometry.ErrInvalidParameter, err)
	}
	cut = sdf.Transform3D(cut, sdf.Translate3d(v3.Vec{X: -(p.OuterRadius + pad) / 2}))

	return toMesh("cosmetics_main", sdf.Intersect3D(tube, cut), p.Cells)
}

// FasteningClip builds the clip as a rounded box centered on the
// origin.
func FasteningClip(p ClipParams) (*mesh.Mesh, geometry.BoundingBox, error) {
	if !(p.Width > 0) || !(p.Depth > 0) || !(p.Height > 0) {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: clip extents must be positive", geometry.ErrInvalidParameter)
	}
	if p.Round < 0 {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: clip rounding must not be negative", geometry.ErrInvalidParameter)
	}

	box, err := sdf.Box3D(v3.Vec{X: p.Width, Y: p.Depth, Z: p.Height}, p.Round)
	if err != nil {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: clip: %v", geometry.ErrInvalidParameter, err)
	}
	return toMesh("fastening_clip", box, p.Cells)
}

// toMesh tessellates a solid with uniform marching cubes. Vertices are
// emitted per triangle corner, as the renderer produces them.
func toMesh(name string, s sdf.SDF3, cells int) (*mesh.Mesh, geometry.BoundingBox, error) {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	if len(triangles) == 0 {
		return nil, geometry.BoundingBox{}, fmt.Errorf("%w: tessellation produced no triangles", geometry.ErrDegenerateGeometry)
	}

	vertices := make([]mgl64.Vec3, 0, len(triangles)*3)
	faces := make([][3]int, 0, len(triangles))
	for i, tri := range triangles {
		for j := 0; j < 3; j++ {
			vertices = append(vertices, mgl64.Vec3{tri[j].X, tri[j].Y, tri[j].Z})
		}
		faces = append(faces, [3]int{3 * i, 3*i + 1, 3*i + 2})
	}

	m, err := mesh.New(name, vertices, faces)
	if err != nil {
		return nil, geometry.BoundingBox{}, err
	}
	m.AddTag(mesh.TagGeneratedPart)

	bounds, _ := m.Bounds()
	return m, bounds, nil
}
