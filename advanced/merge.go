package advanced

// How two same-direction edges touch.
type Connection int

const (
	NotConnected Connection = iota
	// a ends where b starts
	HeadToTail
	// b ends where a starts
	TailToHead
)

func (c Connection) String() string {
	switch c {
	case HeadToTail:
		return "head-to-tail"
	case TailToHead:
		return "tail-to-head"
	}
	return "not-connected"
}

// Connect classifies how a and b join end to start.
func Connect(a, b Edge) Connection {
	if PointsEqual(a.V2, b.V1) {
		return HeadToTail
	}
	if PointsEqual(b.V2, a.V1) {
		return TailToHead
	}
	return NotConnected
}

// MergeEdges joins two connected edges into the edge spanning their far
// endpoints. b is flipped first if it runs against a.
func MergeEdges(a, b Edge) (Edge, bool) {
	if a.Vector().Dot(b.Vector()) < 0 {
		b = b.Reversed()
	}
	switch Connect(a, b) {
	case HeadToTail:
		return Edge{a.V1, b.V2}, true
	case TailToHead:
		return Edge{b.V1, a.V2}, true
	}
	return Edge{}, false
}

// MergeExtendingEdges replaces colinear edges that continue one another with a
// single edge. Subdividing a mesh along a straight border leaves the border
// split into pieces that would otherwise each get their own mitred corner.
//
// Edges are grouped by direction, opposite directions kept apart. Each pass
// merges at most one pair per group; passes repeat until nothing merges, so a
// chain of any length collapses to one edge and running the merge again is a
// no-op. Survivors keep their order and merged edges are appended.
//
// This assumes extending edges lie on the outer border. Colinear interior
// edges that continue a border edge can be merged wrongly.
func MergeExtendingEdges(edges []Edge) []Edge {
	result := append([]Edge(nil), edges...)
	merges := 0
	for {
		var mergedAny bool
		result, mergedAny = mergePass(result)
		if !mergedAny {
			break
		}
		merges++
	}
	if merges > 0 {
		Logger().Debug("merged extending edges", "passes", merges, "edges", len(result))
	}
	return result
}

// mergePass performs one merge per direction group.
func mergePass(edges []Edge) ([]Edge, bool) {
	removed := make([]bool, len(edges))
	var merged []Edge

	for _, group := range groupByDirection(edges) {
		if len(group) < 2 {
			continue
		}
	search:
		for i, a := range group {
			for _, b := range group[i+1:] {
				edge, ok := MergeEdges(edges[a], edges[b])
				if !ok {
					continue
				}
				removed[a] = true
				removed[b] = true
				merged = append(merged, edge)
				break search
			}
		}
	}

	if len(merged) == 0 {
		return edges, false
	}

	result := make([]Edge, 0, len(edges)-len(merged))
	for i, edge := range edges {
		if !removed[i] {
			result = append(result, edge)
		}
	}
	return append(result, merged...), true
}

// groupByDirection returns index groups of edges sharing a direction, in order
// of first appearance. Degenerate edges have no direction and are left out.
func groupByDirection(edges []Edge) [][]int {
	var directions []Point
	var groups [][]int
	for i, edge := range edges {
		if edge.IsDegenerate() {
			continue
		}
		dir := edge.Direction()
		found := false
		for g, groupDir := range directions {
			if DirectionsEqual(dir, groupDir) {
				groups[g] = append(groups[g], i)
				found = true
				break
			}
		}
		if !found {
			directions = append(directions, dir)
			groups = append(groups, []int{i})
		}
	}
	return groups
}
