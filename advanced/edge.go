package advanced

import "fmt"

func (e Edge) Vector() Point {
	return e.V2.Sub(e.V1)
}

// Squared length, used to filter degenerate edges without a square root.
func (e Edge) SqrLength() float64 {
	v := e.Vector()
	return v.Dot(v)
}

func (e Edge) Length() float64 {
	return e.Vector().Len()
}

func (e Edge) IsDegenerate() bool {
	return e.SqrLength() < Epsilon
}

// Unit vector from V1 to V2. Only meaningful for non-degenerate edges.
func (e Edge) Direction() Point {
	return e.Vector().Normalize()
}

func (e Edge) Reversed() Edge {
	return Edge{e.V2, e.V1}
}

// Undirected comparison: an edge equals its own reverse.
func (e Edge) SameUndirected(other Edge) bool {
	return (PointsEqual(e.V1, other.V1) && PointsEqual(e.V2, other.V2)) ||
		(PointsEqual(e.V1, other.V2) && PointsEqual(e.V2, other.V1))
}

// Whether either endpoint of the edge lies on p.
func (e Edge) ConnectsTo(p Point) bool {
	return PointsEqual(e.V1, p) || PointsEqual(e.V2, p)
}

// Whether the edge starts where prev ends.
func (e Edge) Continues(prev Edge) bool {
	return PointsEqual(prev.V2, e.V1)
}

// AlignedFrom returns the edge oriented so that it starts at p. The edge must
// connect to p.
func (e Edge) AlignedFrom(p Point) Edge {
	if PointsEqual(e.V1, p) {
		return e
	}
	return e.Reversed()
}

func (e Edge) String() string {
	return fmt.Sprintf("(%g, %g, %g)->(%g, %g, %g)", e.V1[0], e.V1[1], e.V1[2], e.V2[0], e.V2[1], e.V2[2])
}
