package advanced

// This contains no actual tests. It is just a helper for checking loops and
// border meshes.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a loop is valid. The rules are:
// 1. The loop is not empty.
// 2. Every edge starts where the previous one ends, including across the seam.
// 3. No edge is degenerate.
func AssertValidLoop(t *testing.T, loop EdgeLoop) {
	t.Helper()
	require.NotEmpty(t, loop, "empty loop")
	for i, edge := range loop {
		next := loop[CircularIndex(i+1, len(loop))]
		require.True(t, PointsEqual(edge.V2, next.V1), "edge %d %s does not lead into %s", i, edge, next)
		require.False(t, edge.IsDegenerate(), "degenerate edge %d in loop", i)
	}
}

// Helper to check that a mesh is well formed: every index is in range, the
// UVs match the vertices, and nothing is NaN.
func AssertValidMesh(t *testing.T, mesh *Mesh) {
	t.Helper()
	require.NotNil(t, mesh)
	require.Len(t, mesh.UVs, len(mesh.Vertices))
	require.Zero(t, len(mesh.Triangles)%3)
	for _, index := range mesh.Triangles {
		require.True(t, index >= 0 && index < len(mesh.Vertices), "index %d out of range", index)
	}
	for i, v := range mesh.Vertices {
		require.False(t, HasNaN(v), "vertex %d is NaN", i)
	}
	for i, uv := range mesh.UVs {
		require.False(t, math.IsNaN(uv[0]) || math.IsNaN(uv[1]), "uv %d is NaN", i)
	}
}

// Undirected edge set membership, for comparing edge sets regardless of order
// and direction.
func assertSameEdges(t *testing.T, expected, actual []Edge) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for _, e := range expected {
		found := false
		for _, a := range actual {
			if a.SameUndirected(e) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing edge %s", e)
	}
}

func assertPointInDelta(t *testing.T, expected, actual Point, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-9, msgAndArgs...)
	}
}
