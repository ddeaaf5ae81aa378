package advanced

// Edges decomposes a surface into one edge per triangle side, in the order
// V1->V2, V2->V3, V3->V1. Shared sides are deliberately kept twice.
func Edges(s Surface) []Edge {
	edges := make([]Edge, 0, s.TriangleCount()*3)
	for i := 0; i < s.TriangleCount(); i++ {
		v1, v2, v3 := s.Triangle(i)
		edges = append(edges,
			Edge{v1, v2},
			Edge{v2, v3},
			Edge{v3, v1},
		)
	}
	return edges
}

// OuterEdges keeps the edges that occur exactly once, comparing without regard
// to direction. Degenerate edges are always dropped.
//
// An edge shared by two triangles is interior. Three or more uses means the
// surface is non-manifold there; such edges are excluded as well, but that is
// a defect in the input rather than a supported case.
func OuterEdges(edges []Edge) []Edge {
	type seenEdge struct {
		edge  Edge
		count int
	}
	var seen []seenEdge
	var result []Edge

	for _, edge := range edges {
		found := false
		for i := range seen {
			if !seen[i].edge.SameUndirected(edge) {
				continue
			}
			seen[i].count++
			if seen[i].count == 2 {
				result = removeUndirected(result, seen[i].edge)
			} else {
				Logger().Debug("non-manifold edge", "edge", edge.String(), "uses", seen[i].count)
			}
			found = true
			break
		}
		if found {
			continue
		}

		seen = append(seen, seenEdge{edge: edge, count: 1})
		if !edge.IsDegenerate() {
			result = append(result, edge)
		}
	}

	return result
}

func removeUndirected(edges []Edge, target Edge) []Edge {
	for i, edge := range edges {
		if edge.SameUndirected(target) {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}

// BoundaryEdges extracts the outer edges of a surface, optionally merging
// extending edges first.
func BoundaryEdges(s Surface, removeExtending bool) []Edge {
	edges := Edges(s)
	if removeExtending {
		edges = MergeExtendingEdges(edges)
	}
	return OuterEdges(edges)
}
