package advanced

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance under which two points are considered the same point.
const Tolerance = 1e-5

// Squared length under which an edge is considered to have no length. This is
// Tolerance squared, so an edge is degenerate exactly when its endpoints are
// equal.
const Epsilon = Tolerance * Tolerance

// Distance under which two unit direction vectors are considered the same.
const DirectionTolerance = 1e-5

// The navigation surface is assumed to be laid out on the XZ plane with +Y up.
var Up = Point{0, 1, 0}

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// To compensate for imprecision in floats, point equality is distance based,
// not component based.
func PointsEqual(a, b Point) bool {
	d := a.Sub(b)
	return d.Dot(d) < Epsilon
}

// Absolute distance, so noise on an axis that is nearly zero still compares
// equal.
func DirectionsEqual(a, b Point) bool {
	d := a.Sub(b)
	return d.Dot(d) < DirectionTolerance*DirectionTolerance
}

func HasNaN(p Point) bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsNaN(p[2])
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// LineIntersection returns the point where the line through p1 along d1 meets
// the line through p2 along d2. The lines are treated as infinite and in 3D, so
// the result is the midpoint of their closest approach. ok is false when the
// lines are parallel (or either direction is zero) and no meaningful point
// exists.
func LineIntersection(p1, d1, p2, d2 Point) (result Point, ok bool) {
	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d2.Dot(d2)
	denom := a*c - b*b
	// Relative test: the squared sine of the angle between the lines
	if a == 0 || c == 0 || denom <= a*c*1e-12 {
		return Point{}, false
	}

	w := p1.Sub(p2)
	d := d1.Dot(w)
	e := d2.Dot(w)
	t := (b*e - c*d) / denom
	s := (a*e - b*d) / denom

	onFirst := p1.Add(d1.Mul(t))
	onSecond := p2.Add(d2.Mul(s))
	result = onFirst.Add(onSecond).Mul(0.5)
	if HasNaN(result) {
		return Point{}, false
	}
	return result, true
}

// lookBasis returns the rotation that takes forward onto +Z, keeping world up
// as close to +Y as possible. This is the inverse of a look rotation.
func lookBasis(forward Point) mgl64.Mat3 {
	forward = forward.Normalize()
	right := Up.Cross(forward)
	if right.Dot(right) < Epsilon {
		// Looking straight up or down
		right = Point{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	up := forward.Cross(right)
	return mgl64.Mat3FromRows(right, up, forward)
}
