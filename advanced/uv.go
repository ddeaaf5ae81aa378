package advanced

import "github.com/go-gl/mathgl/mgl64"

// Faces with a normal shorter than this are projected without rotation.
const minUVNormalLength = 0.001

// CalculateUVs projects every triangle onto the plane facing its normal (or Up
// when forceUpNormal is set) and divides by textureScale. Each triangle writes
// the UVs of its own corners, so a vertex shared between triangles ends up
// with the projection of the last triangle using it.
func CalculateUVs(vertices []Point, triangles []int, textureScale float64, forceUpNormal bool) []UV {
	uvs := make([]UV, len(vertices))
	for i := 0; i+2 < len(triangles); i += 3 {
		corners := triangles[i : i+3]
		v1, v2, v3 := vertices[corners[0]], vertices[corners[1]], vertices[corners[2]]

		normal := Up
		if !forceUpNormal {
			normal = v3.Sub(v1).Cross(v2.Sub(v1))
		}
		rotation := mgl64.Ident3()
		if normal.Len() > minUVNormalLength {
			rotation = lookBasis(normal)
		}

		for _, index := range corners {
			projected := rotation.Mul3x1(vertices[index])
			uvs[index] = UV{projected[0], projected[1]}.Mul(1 / textureScale)
		}
	}
	return uvs
}
