package advanced

// EdgeToQuad offsets the edge sideways by half the width on both sides. The
// side direction is horizontal, perpendicular to the edge and to Up. ok is
// false when the edge has no usable side direction, i.e. it is degenerate or
// vertical.
func EdgeToQuad(edge Edge, width float64) (quad Quad, ok bool) {
	if edge.IsDegenerate() {
		return Quad{}, false
	}
	side := Up.Cross(edge.Vector())
	if side.Dot(side) < Epsilon {
		return Quad{}, false
	}
	offset := side.Normalize().Mul(width / 2)

	return Quad{
		V1: edge.V1.Add(offset),
		V2: edge.V1.Sub(offset),
		V3: edge.V2.Add(offset),
		V4: edge.V2.Sub(offset),
	}, true
}

// WithStart returns the quad with its start corners replaced.
func (q Quad) WithStart(v1, v2 Point) Quad {
	q.V1, q.V2 = v1, v2
	return q
}

// WithEnd returns the quad with its end corners replaced.
func (q Quad) WithEnd(v3, v4 Point) Quad {
	q.V3, q.V4 = v3, v4
	return q
}

// MitreQuads joins prev's end to next's start. On each side the two offset
// lines are intersected and both quads take the intersection as their shared
// corner. A side whose lines are parallel keeps its unmitred corners.
func MitreQuads(prev, next Quad) (Quad, Quad) {
	prevV3, prevV4 := prev.V3, prev.V4
	nextV1, nextV2 := next.V1, next.V2

	if corner, ok := LineIntersection(prev.V4, prev.V4.Sub(prev.V2), next.V2, next.V2.Sub(next.V4)); ok {
		prevV4, nextV2 = corner, corner
	}
	if corner, ok := LineIntersection(prev.V3, prev.V3.Sub(prev.V1), next.V1, next.V1.Sub(next.V3)); ok {
		prevV3, nextV1 = corner, corner
	}

	return prev.WithEnd(prevV3, prevV4), next.WithStart(nextV1, nextV2)
}

// LoopQuads converts a loop into mitred quads, one per usable edge. For a
// closed loop the last quad is mitred against the first to close the seam; an
// open chain keeps square ends.
func LoopQuads(loop EdgeLoop, width float64) []Quad {
	quads := make([]Quad, 0, len(loop))
	for _, edge := range loop {
		quad, ok := EdgeToQuad(edge, width)
		if !ok {
			Logger().Debug("skipping edge without a side direction", "edge", edge.String())
			continue
		}
		if n := len(quads); n > 0 {
			quads[n-1], quad = MitreQuads(quads[n-1], quad)
		}
		quads = append(quads, quad)
	}

	if n := len(quads); n > 1 && loop.IsClosed() {
		quads[n-1], quads[0] = MitreQuads(quads[n-1], quads[0])
	}
	return quads
}

// AppendQuad adds the quad's corners and its two triangles to the mesh.
func (m *Mesh) AppendQuad(q Quad) {
	i := len(m.Vertices)
	m.Vertices = append(m.Vertices, q.V1, q.V2, q.V3, q.V4)
	m.Triangles = append(m.Triangles,
		i+2, i+0, i+3, // V3 V1 V4
		i+0, i+1, i+3, // V1 V2 V4
	)
}

// GenerateBorderMesh builds a strip of quads along every loop and concatenates
// them into one mesh with planar UVs. Each edge with a horizontal side
// direction yields one quad of two triangles. Degenerate edges and vertical
// edges have none and are skipped, so they add no triangles.
func GenerateBorderMesh(loops []EdgeLoop, opts Options) (*Mesh, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	mesh := &Mesh{}
	for _, loop := range loops {
		for _, quad := range LoopQuads(loop, opts.BorderWidth) {
			mesh.AppendQuad(quad)
		}
	}
	mesh.UVs = CalculateUVs(mesh.Vertices, mesh.Triangles, opts.TextureScale, opts.ForceUpNormal)
	return mesh, nil
}
