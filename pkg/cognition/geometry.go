package cognition

import (
	"math"

	"AcawsGolang/internal/entity"
)

const epsilon = 1e-9

// Distance returns the Euclidean distance between two normalized points.
func Distance(p1, p2 entity.Landmark) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// AngleAt returns the angle in degrees at vertex formed by a-vertex-b.
// Degenerate (zero-length) arms yield 0.
func AngleAt(a, vertex, b entity.Landmark) float64 {
	v1x, v1y := a.X-vertex.X, a.Y-vertex.Y
	v2x, v2y := b.X-vertex.X, b.Y-vertex.Y

	mag1 := math.Sqrt(v1x*v1x + v1y*v1y)
	mag2 := math.Sqrt(v2x*v2x + v2y*v2y)
	if mag1 < epsilon || mag2 < epsilon {
		return 0
	}

	cos := (v1x*v2x + v1y*v2y) / (mag1 * mag2)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// EyeAspectRatio computes (v1+v2)/(2h) over the six-point eye contour
// [outer, upper1, upper2, inner, lower2, lower1]. A near-zero horizontal
// distance yields 0 rather than dividing by zero.
func EyeAspectRatio(eye [6]entity.Landmark) float64 {
	v1 := Distance(eye[1], eye[5])
	v2 := Distance(eye[2], eye[4])
	h := Distance(eye[0], eye[3])
	if h < epsilon {
		return 0
	}
	return (v1 + v2) / (2 * h)
}

// ToRelative maps an image-space pixel coordinate to the 0-1 range of a
// bounding region. Zero-sized regions map to 0.
func ToRelative(px, py float64, width, height int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return px / float64(width), py / float64(height)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
