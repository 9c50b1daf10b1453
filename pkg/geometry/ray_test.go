package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRayAt(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{1, 2, 3}, Direction: mgl64.Vec3{0, 0, 2}}
	got := r.At(1.5)
	want := mgl64.Vec3{1, 2, 6}
	if !vecAlmostEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRayTransformedNonUniformScale(t *testing.T) {
	r := Ray{Origin: mgl64.Vec3{1, 0, 0}, Direction: mgl64.Vec3{1, 1, 0}}
	tr := TRS(mgl64.Vec3{}, mgl64.Ident4(), mgl64.Vec3{2, 1, 1})

	got := r.Transformed(tr)
	if !vecAlmostEqual(got.Origin, mgl64.Vec3{2, 0, 0}) {
		t.Errorf("origin: expected {2 0 0}, got %v", got.Origin)
	}
	// Direction must bend under the scale, not just translate with it.
	if !vecAlmostEqual(got.Direction, mgl64.Vec3{2, 1, 0}) {
		t.Errorf("direction: expected {2 1 0}, got %v", got.Direction)
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := mgl64.Vec3{-1, -1, 5}
	b := mgl64.Vec3{1, -1, 5}
	c := mgl64.Vec3{0, 1, 5}

	tests := []struct {
		name  string
		ray   Ray
		wantT float64
		want  bool
	}{
		{"center hit", Ray{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}}, 5, true},
		{"back face hit", Ray{mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1}}, 5, true},
		{"outside barycentric", Ray{mgl64.Vec3{2, 2, 0}, mgl64.Vec3{0, 0, 1}}, 0, false},
		{"behind origin", Ray{mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 1}}, 0, false},
		{"parallel", Ray{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, got := tt.ray.IntersectTriangle(a, b, c)
			if got != tt.want {
				t.Fatalf("expected hit=%v, got %v", tt.want, got)
			}
			if got && !almostEqual(gotT, tt.wantT) {
				t.Errorf("expected t=%v, got %v", tt.wantT, gotT)
			}
		})
	}
}

func TestIntersectTriangleDegenerate(t *testing.T) {
	// Collinear points span no area; the ray passes straight through.
	a := mgl64.Vec3{0, 0, 5}
	b := mgl64.Vec3{1, 0, 5}
	c := mgl64.Vec3{2, 0, 5}
	r := Ray{Origin: mgl64.Vec3{1, 0, 0}, Direction: mgl64.Vec3{0, 0, 1}}
	if _, hit := r.IntersectTriangle(a, b, c); hit {
		t.Error("expected no hit on a degenerate triangle")
	}
}

func TestIntersectBox(t *testing.T) {
	box := NewBoundingBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})

	tests := []struct {
		name  string
		ray   Ray
		wantT float64
		want  bool
	}{
		{"straight in", Ray{mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}}, 4, true},
		{"from inside", Ray{mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}}, 1, true},
		{"miss beside", Ray{mgl64.Vec3{5, 0, -5}, mgl64.Vec3{0, 0, 1}}, 0, false},
		{"pointing away", Ray{mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, -1}}, 0, false},
		{"axis parallel outside slab", Ray{mgl64.Vec3{2, 0, -5}, mgl64.Vec3{0, 0, 1}}, 0, false},
		{"diagonal", Ray{mgl64.Vec3{-2, -2, -2}, mgl64.Vec3{1, 1, 1}}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, got := tt.ray.IntersectBox(box)
			if got != tt.want {
				t.Fatalf("expected hit=%v, got %v", tt.want, got)
			}
			if got && !almostEqual(gotT, tt.wantT) {
				t.Errorf("expected t=%v, got %v", tt.wantT, gotT)
			}
		})
	}
}

func TestIntersectBoxMatchesTriangles(t *testing.T) {
	// The slab test is a broad phase; it must never reject a ray that
	// hits a triangle spanning the box diagonal.
	box := NewBoundingBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2})
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{2, 0, 2}
	c := mgl64.Vec3{0, 2, 2}

	for i := 0; i < 8; i++ {
		origin := mgl64.Vec3{float64(i%3) - 1, float64(i%5) - 1, -3}
		r := Ray{Origin: origin, Direction: mgl64.Vec3{0.2, 0.3, 1}}
		if _, hitTri := r.IntersectTriangle(a, b, c); hitTri {
			if _, hitBox := r.IntersectBox(box); !hitBox {
				t.Errorf("ray %d: box test rejected a triangle hit", i)
			}
		}
	}
}

func TestIntersectBoxUnnormalizedDirection(t *testing.T) {
	box := NewBoundingBox(mgl64.Vec3{-1, -1, 4}, mgl64.Vec3{1, 1, 6})
	r := Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, 4}}
	gotT, hit := r.IntersectBox(box)
	if !hit {
		t.Fatal("expected hit")
	}
	if !almostEqual(gotT, 1) {
		t.Errorf("expected t=1 in ray-length units, got %v", gotT)
	}
	if !vecAlmostEqual(r.At(gotT), mgl64.Vec3{0, 0, 4}) {
		t.Errorf("expected entry point {0 0 4}, got %v", r.At(gotT))
	}
}
