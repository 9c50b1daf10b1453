// Package mesh defines the triangle mesh snapshot exchanged with the
// host application. Meshes are read-only to the processing packages.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orthopen/orthocore/pkg/geometry"
)

// Tag marks a mesh with an identity the session layer keys on. Tags
// travel with the mesh value instead of living in a host-side registry.
type Tag string

const (
	// TagImportedScan marks geometry produced by the scan importer.
	TagImportedScan Tag = "imported_scan"
	// TagGeneratedPart marks geometry produced by the template generator.
	TagGeneratedPart Tag = "generated_part"
)

// Mesh is a triangle mesh snapshot: local-space vertex positions plus
// vertex-indexed triangles.
type Mesh struct {
	Name      string
	Tags      []Tag
	Vertices  []mgl64.Vec3
	Triangles [][3]int
}

// New builds a mesh and validates its indices. The slices are
// referenced, not copied.
func New(name string, vertices []mgl64.Vec3, triangles [][3]int) (*Mesh, error) {
	m := &Mesh{Name: name, Vertices: vertices, Triangles: triangles}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that every triangle index refers to a vertex.
func (m *Mesh) Validate() error {
	for ti, tri := range m.Triangles {
		for _, vi := range tri {
			if vi < 0 || vi >= len(m.Vertices) {
				return fmt.Errorf("%w: triangle %d references vertex %d of %d", geometry.ErrInvalidParameter, ti, vi, len(m.Vertices))
			}
		}
	}
	return nil
}

// AddTag attaches a tag if the mesh does not carry it yet.
func (m *Mesh) AddTag(tag Tag) {
	if !m.HasTag(tag) {
		m.Tags = append(m.Tags, tag)
	}
}

// HasTag reports whether the mesh carries the tag.
func (m *Mesh) HasTag(tag Tag) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Triangle returns the corner positions of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c mgl64.Vec3) {
	tri := m.Triangles[i]
	return m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
}

// FaceNormal returns the unit normal of triangle i, or the zero vector
// when the triangle spans no area.
func (m *Mesh) FaceNormal(i int) mgl64.Vec3 {
	a, b, c := m.Triangle(i)
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{}
}

// Bounds returns the local-space bounds of the vertices. ok is false
// for a mesh with no vertices.
func (m *Mesh) Bounds() (geometry.BoundingBox, bool) {
	return geometry.BoundsOf(m.Vertices)
}
