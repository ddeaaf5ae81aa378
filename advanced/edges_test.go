package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdges(t *testing.T) {
	surface := LoadFixture("split_square")
	edges := Edges(surface)
	require.Len(t, edges, 3*surface.TriangleCount())

	// Sides come out in triangle order: V1->V2, V2->V3, V3->V1
	a, b, c := surface.Triangle(0)
	assert.Equal(t, Edge{a, b}, edges[0])
	assert.Equal(t, Edge{b, c}, edges[1])
	assert.Equal(t, Edge{c, a}, edges[2])
}

func TestEdges_MalformedSurfacePanicsWithBorderError(t *testing.T) {
	surface := Surface{
		Vertices: []Point{{0, 0, 0}, {1, 0, 0}},
		Indices:  []int{0, 1, 2},
	}
	err := func() (err error) {
		defer func() {
			err = HandleBorderPanicRecover(recover())
		}()
		Edges(surface)
		return nil
	}()
	assert.ErrorIs(t, err, ErrInvalidSurface)
}

func TestOuterEdges_Strip(t *testing.T) {
	surface := LoadFixture("strip")
	outer := OuterEdges(Edges(surface))

	p := func(x, z float64) Point { return Point{x, 0, z} }
	expected := []Edge{
		{p(0, 0), p(5, 0)}, {p(5, 0), p(10, 0)}, {p(10, 0), p(15, 0)},
		{p(15, 0), p(15, 5)},
		{p(15, 5), p(10, 5)}, {p(10, 5), p(5, 5)}, {p(5, 5), p(0, 5)},
		{p(0, 5), p(0, 0)},
	}
	assertSameEdges(t, expected, outer)
}

func TestOuterEdges_StarFanExcludesSpokes(t *testing.T) {
	surface := StarFan()
	outer := OuterEdges(Edges(surface))
	require.Len(t, outer, 10)
	for _, edge := range outer {
		assert.False(t, edge.ConnectsTo(Point{}), "spoke %s should be interior", edge)
	}
}

func TestOuterEdges_DropsDegenerateEdges(t *testing.T) {
	a := Point{0, 0, 0}
	b := Point{1, 0, 0}
	edges := []Edge{{a, b}, {b, b}, {a, a.Add(Point{Tolerance / 10, 0, 0})}}
	assert.Equal(t, []Edge{{a, b}}, OuterEdges(edges))
}

func TestOuterEdges_NonManifoldIsExcluded(t *testing.T) {
	a := Point{0, 0, 0}
	b := Point{1, 0, 0}
	c := Point{0, 0, 1}
	edges := []Edge{{a, b}, {b, a}, {a, b}, {b, c}}
	assert.Equal(t, []Edge{{b, c}}, OuterEdges(edges))
}

func TestOuterEdges_KeepsFirstSeenOrder(t *testing.T) {
	a := Point{0, 0, 0}
	b := Point{1, 0, 0}
	c := Point{1, 0, 1}
	edges := []Edge{{a, b}, {b, c}, {c, a}, {a, c}}
	assert.Equal(t, []Edge{{a, b}, {b, c}}, OuterEdges(edges))
}

func TestBoundaryEdges(t *testing.T) {
	surface := LoadFixture("split_square")
	assert.Len(t, BoundaryEdges(surface, false), 5)
	assert.Len(t, BoundaryEdges(surface, true), 4)
}
