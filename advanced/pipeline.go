package advanced

// OuterEdgeLoops finds the boundary of a surface as directed loops.
func OuterEdgeLoops(s Surface, removeExtending bool) LoopSet {
	return BuildEdgeLoops(BoundaryEdges(s, removeExtending))
}

// SurfaceBorderMesh runs the whole pipeline: options and surface are checked
// before any geometry work, then the boundary loops are found and the border
// strip is generated along every closed loop.
func SurfaceBorderMesh(s Surface, opts Options) (*Mesh, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	loops := OuterEdgeLoops(s, opts.RemoveExtendingEdges)
	return GenerateBorderMesh(loops.Loops, opts)
}
