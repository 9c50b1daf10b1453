package weights

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/orthopen/orthocore/pkg/geometry"
)

func TestGenerateFalloff(t *testing.T) {
	pivot := mgl64.Vec3{0.1, -0.2, 0.5}
	const zone = 0.02

	vertices := []mgl64.Vec3{
		{0, 0, 0.49},  // below the pivot
		{0, 0, 0.5},   // exactly at the pivot
		{0, 0, 0.51},  // halfway up the zone
		{0, 0, 0.52},  // top of the zone
		{0, 0, 0.53},  // above the zone
		{9, 9, 0.505}, // X and Y must not matter
	}
	want := []float64{1, 1, 0.5, 0, 0, 0.75}

	field, err := Generate(vertices, pivot, zone)
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if len(field) != len(vertices) {
		t.Fatalf("expected %d weights, got %d", len(vertices), len(field))
	}
	for i := range want {
		if math.Abs(field[i]-want[i]) > 1e-9 {
			t.Errorf("vertex %d: expected weight %v, got %v", i, want[i], field[i])
		}
	}
}

func TestGenerateWeightsInRange(t *testing.T) {
	vertices := []mgl64.Vec3{
		{0, 0, -100}, {0, 0, -1}, {0, 0, 0}, {0, 0, 1e-9}, {0, 0, 100},
	}
	field, err := Generate(vertices, mgl64.Vec3{}, 0.02)
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	for i, w := range field {
		if w < 0 || w > 1 {
			t.Errorf("vertex %d: weight %v out of [0,1]", i, w)
		}
	}
}

func TestGenerateInvalidZone(t *testing.T) {
	vertices := []mgl64.Vec3{{0, 0, 0}}
	for _, zone := range []float64{0, -0.02, math.NaN()} {
		if _, err := Generate(vertices, mgl64.Vec3{}, zone); !errors.Is(err, geometry.ErrInvalidParameter) {
			t.Errorf("zone %v: expected ErrInvalidParameter, got %v", zone, err)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	field, err := Generate(nil, mgl64.Vec3{}, 0.02)
	if err != nil {
		t.Fatalf("Generate: unexpected error: %v", err)
	}
	if len(field) != 0 {
		t.Errorf("expected an empty field, got %d weights", len(field))
	}
}

func TestPivotPlacement(t *testing.T) {
	got := PivotPlacement(mgl64.Vec3{1, 2, 3}, 0.08)
	want := mgl64.Vec3{1, 2.04, 3}
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}
