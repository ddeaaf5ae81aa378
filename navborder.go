// Border strips for navigation meshes.
//
// This package finds the outer boundary of a triangulated surface as closed,
// directed edge loops, and generates a constant-width strip mesh along those
// loops with mitred corners. A surface with holes yields one loop per hole in
// addition to its outline.
//
// The individual stages (edge extraction, merging of colinear edges, boundary
// filtering, loop building, quad generation, UV projection) are available in
// the advanced package.
package navborder

import (
	"log/slog"

	"github.com/osuushi/navborder/advanced"
)

type Point = advanced.Point
type UV = advanced.UV
type Edge = advanced.Edge
type Quad = advanced.Quad
type EdgeLoop = advanced.EdgeLoop
type Surface = advanced.Surface
type Mesh = advanced.Mesh
type Options = advanced.Options
type Option = advanced.Option

const AllAreas = advanced.AllAreas

var (
	ErrInvalidOptions = advanced.ErrInvalidOptions
	ErrInvalidSurface = advanced.ErrInvalidSurface
)

var (
	WithBorderWidth          = advanced.WithBorderWidth
	WithTextureScale         = advanced.WithTextureScale
	WithForceUpNormal        = advanced.WithForceUpNormal
	WithRemoveExtendingEdges = advanced.WithRemoveExtendingEdges
)

// Generate a border mesh along the outer boundary of a surface.
//
// A border width must be given with WithBorderWidth. Extending edges are
// merged unless disabled, and the texture scale defaults to 1.
//
// Degenerate geometry is skipped, and boundary chains that do not close are
// left out rather than failing the whole mesh. Invalid options or index
// buffers are reported as errors before any geometry work.
func GenerateBorderMesh(surface Surface, opts ...Option) (result *Mesh, err error) {
	defer func() {
		recoveredErr := advanced.HandleBorderPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.SurfaceBorderMesh(surface, advanced.NewOptions(opts...))
}

// Find the closed boundary loops of a surface without generating any mesh.
func OuterEdgeLoops(surface Surface, removeExtending bool) (result []EdgeLoop, err error) {
	defer func() {
		recoveredErr := advanced.HandleBorderPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := surface.Validate(); err != nil {
		return nil, err
	}
	return advanced.OuterEdgeLoops(surface, removeExtending).Loops, nil
}

// Turn the surface itself into a mesh with planar UVs. Only the texture scale
// and up normal options apply.
func SurfaceMesh(surface Surface, opts ...Option) (result *Mesh, err error) {
	defer func() {
		recoveredErr := advanced.HandleBorderPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	o := advanced.NewOptions(opts...)
	return advanced.SurfaceMesh(surface, o.TextureScale, o.ForceUpNormal)
}

// SetLogger enables logging for this package and advanced. By default nothing
// is logged.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}
