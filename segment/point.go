package segment

import (
	"math"

	"github.com/golang/geo/r3"
)

// Point is a 3D sample in sensor coordinates. It wraps r3.Vector so plane
// fitting can use its Cross/Dot/Normalize directly, while still carrying the
// domain-specific validity rule depth samples need (see IsValid).
type Point struct {
	r3.Vector
}

// NewPoint builds a Point from three components.
func NewPoint(x, y, z float64) Point {
	return Point{r3.Vector{X: x, Y: y, Z: z}}
}

// IsValid reports whether p is a usable depth sample. A sample is invalid
// if any component is non-finite, or if any component is exactly zero —
// the sentinel the upstream depth-to-point conversion uses to mark a pixel
// with no return.
func (p Point) IsValid() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z) &&
		p.X != 0 && p.Y != 0 && p.Z != 0
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Sub returns p - q as a Point (r3.Vector.Sub returns a bare r3.Vector).
func (p Point) Sub(q Point) Point {
	return Point{p.Vector.Sub(q.Vector)}
}

// Add returns p + q as a Point.
func (p Point) Add(q Point) Point {
	return Point{p.Vector.Add(q.Vector)}
}

// Cross returns p × q as a Point.
func (p Point) Cross(q Point) Point {
	return Point{p.Vector.Cross(q.Vector)}
}

// Dot returns p · q.
func (p Point) Dot(q Point) float64 {
	return p.Vector.Dot(q.Vector)
}

// Norm returns |p|.
func (p Point) Norm() float64 {
	return p.Vector.Norm()
}

// Normalize returns p scaled to unit length. The zero vector normalizes to
// itself, matching r3.Vector.Normalize's behavior.
func (p Point) Normalize() Point {
	return Point{p.Vector.Normalize()}
}
