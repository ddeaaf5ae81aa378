package advanced

import "github.com/go-gl/mathgl/mgl64"

type Point = mgl64.Vec3

type UV = mgl64.Vec2

// Edges are directional. Two triangles sharing a side produce the same edge
// twice with opposite directions, which is what the boundary filter relies on.
type Edge struct {
	V1, V2 Point
}

// A Quad is the cross-section of one border segment. V1/V2 sit at the start of
// the source edge and V3/V4 at its end. V1/V3 are offset to one side and V2/V4
// to the other.
type Quad struct {
	V1, V2, V3, V4 Point
}

// An EdgeLoop is a closed chain of edges, each ending where the next begins.
type EdgeLoop []Edge

// Result of loop building. Open holds chains that could not be closed; they
// never reach mesh generation.
type LoopSet struct {
	Loops []EdgeLoop
	Open  []EdgeLoop
}

// Surface is the triangulated input. Indices are taken in triples. Areas is
// optional and holds one area id per triangle.
type Surface struct {
	Vertices []Point
	Indices  []int
	Areas    []int
}

// Mesh is the generated output. UVs run parallel to Vertices.
type Mesh struct {
	Vertices  []Point
	Triangles []int
	UVs       []UV
}

func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
