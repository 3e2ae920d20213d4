package cognition

import (
	"math"
	"testing"

	"AcawsGolang/internal/entity"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		p1   entity.Landmark
		p2   entity.Landmark
		want float64
	}{
		{"same point", entity.Landmark{X: 0.5, Y: 0.5}, entity.Landmark{X: 0.5, Y: 0.5}, 0},
		{"horizontal", entity.Landmark{X: 0, Y: 0}, entity.Landmark{X: 3, Y: 0}, 3},
		{"diagonal", entity.Landmark{X: 0, Y: 0}, entity.Landmark{X: 3, Y: 4}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.p1, tt.p2)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngleAt(t *testing.T) {
	tests := []struct {
		name   string
		a      entity.Landmark
		vertex entity.Landmark
		b      entity.Landmark
		want   float64
	}{
		{"right angle", entity.Landmark{X: 1, Y: 0}, entity.Landmark{}, entity.Landmark{X: 0, Y: 1}, 90},
		{"straight line", entity.Landmark{X: -1, Y: 0}, entity.Landmark{}, entity.Landmark{X: 1, Y: 0}, 180},
		{"degenerate vertex", entity.Landmark{}, entity.Landmark{}, entity.Landmark{X: 1, Y: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleAt(tt.a, tt.vertex, tt.b)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("AngleAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEyeAspectRatio(t *testing.T) {
	openEye := [6]entity.Landmark{
		{X: 0.0, Y: 0.5},  // outer corner
		{X: 0.02, Y: 0.485},
		{X: 0.04, Y: 0.485},
		{X: 0.06, Y: 0.5}, // inner corner
		{X: 0.04, Y: 0.515},
		{X: 0.02, Y: 0.515},
	}
	if got := EyeAspectRatio(openEye); !almostEqual(got, 0.5, 1e-9) {
		t.Errorf("open eye EAR = %v, want 0.5", got)
	}

	var collapsed [6]entity.Landmark
	for i := range collapsed {
		collapsed[i] = entity.Landmark{X: 0.5, Y: 0.5}
	}
	if got := EyeAspectRatio(collapsed); got != 0 {
		t.Errorf("coincident corners EAR = %v, want 0", got)
	}
}
