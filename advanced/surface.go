package advanced

import (
	"sort"

	"github.com/pkg/errors"
)

// Area mask that keeps every triangle.
const AllAreas = -1

func (s Surface) TriangleCount() int {
	return len(s.Indices) / 3
}

// Validate reports index buffers that cannot describe a triangle mesh.
func (s Surface) Validate() error {
	if len(s.Indices)%3 != 0 {
		return errors.Wrapf(ErrInvalidSurface, "index count %d is not a multiple of 3", len(s.Indices))
	}
	for i, index := range s.Indices {
		if index < 0 || index >= len(s.Vertices) {
			return errors.Wrapf(ErrInvalidSurface, "triangle %d references vertex %d of %d", i/3, index, len(s.Vertices))
		}
	}
	if s.Areas != nil && len(s.Areas) != s.TriangleCount() {
		return errors.Wrapf(ErrInvalidSurface, "%d area ids for %d triangles", len(s.Areas), s.TriangleCount())
	}
	return nil
}

// Triangle returns the corners of triangle i.
func (s Surface) Triangle(i int) (a, b, c Point) {
	base := i * 3
	if base+2 >= len(s.Indices) {
		fatalf("triangle %d out of range (%d triangles)", i, s.TriangleCount())
	}
	for _, index := range s.Indices[base : base+3] {
		if index < 0 || index >= len(s.Vertices) {
			fatalWrapf(ErrInvalidSurface, "triangle %d references vertex %d of %d", i, index, len(s.Vertices))
		}
	}
	return s.Vertices[s.Indices[base]], s.Vertices[s.Indices[base+1]], s.Vertices[s.Indices[base+2]]
}

// FilterAreas keeps only triangles whose area id has its bit set in mask. The
// vertex buffer is compacted to the vertices still referenced, keeping their
// original relative order, and indices are retargeted. A surface without area
// ids is treated as all area 0.
func (s Surface) FilterAreas(mask int) Surface {
	if mask == AllAreas {
		return s
	}

	var indices, areas []int
	used := make(map[int]struct{})
	for tri := 0; tri < s.TriangleCount(); tri++ {
		area := 0
		if s.Areas != nil {
			area = s.Areas[tri]
		}
		if area < 0 || area >= 64 || mask&(1<<uint(area)) == 0 {
			continue
		}
		for _, index := range s.Indices[tri*3 : tri*3+3] {
			indices = append(indices, index)
			used[index] = struct{}{}
		}
		areas = append(areas, area)
	}

	kept := make([]int, 0, len(used))
	for index := range used {
		kept = append(kept, index)
	}
	sort.Ints(kept)

	remap := make(map[int]int, len(kept))
	vertices := make([]Point, len(kept))
	for newIndex, oldIndex := range kept {
		remap[oldIndex] = newIndex
		vertices[newIndex] = s.Vertices[oldIndex]
	}
	for i, index := range indices {
		indices[i] = remap[index]
	}

	result := Surface{Vertices: vertices, Indices: indices}
	if s.Areas != nil {
		result.Areas = areas
	}
	return result
}

// SurfaceMesh turns the navigation surface itself into a renderable mesh with
// planar UVs.
func SurfaceMesh(s Surface, textureScale float64, forceUpNormal bool) (*Mesh, error) {
	if err := validateTextureScale(textureScale); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	vertices := append([]Point(nil), s.Vertices...)
	triangles := append([]int(nil), s.Indices...)
	return &Mesh{
		Vertices:  vertices,
		Triangles: triangles,
		UVs:       CalculateUVs(vertices, triangles, textureScale, forceUpNormal),
	}, nil
}
