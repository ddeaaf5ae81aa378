package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/navborder"
	"github.com/pkg/errors"
)

// readSurface parses the subset of OBJ we need. Polygon faces are split into a
// triangle fan. Texture and normal references in faces are ignored.
func readSurface(in io.Reader) (navborder.Surface, error) {
	var surface navborder.Surface
	var areas []int
	area := 0
	hasAreas := false

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "#":
			if len(fields) == 3 && fields[1] == "area" {
				n, err := strconv.Atoi(fields[2])
				if err != nil {
					return surface, errors.Wrapf(err, "line %d", lineNumber)
				}
				area = n
				hasAreas = true
			}

		case "v":
			if len(fields) < 4 {
				return surface, errors.Errorf("line %d: vertex needs 3 coordinates", lineNumber)
			}
			var p navborder.Point
			for i := range p {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return surface, errors.Wrapf(err, "line %d", lineNumber)
				}
				p[i] = value
			}
			surface.Vertices = append(surface.Vertices, p)

		case "f":
			if len(fields) < 4 {
				return surface, errors.Errorf("line %d: face needs at least 3 vertices", lineNumber)
			}
			corners := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				index, err := parseFaceIndex(field, len(surface.Vertices))
				if err != nil {
					return surface, errors.Wrapf(err, "line %d", lineNumber)
				}
				corners = append(corners, index)
			}
			for i := 1; i+1 < len(corners); i++ {
				surface.Indices = append(surface.Indices, corners[0], corners[i], corners[i+1])
				areas = append(areas, area)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return surface, err
	}

	if hasAreas {
		surface.Areas = areas
	}
	return surface, surface.Validate()
}

// OBJ indices are 1-based, and negative values count back from the last
// vertex read so far.
func parseFaceIndex(field string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}
	index, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if index < 0 {
		return vertexCount + index, nil
	}
	if index == 0 {
		return 0, errors.New("face index 0")
	}
	return index - 1, nil
}

func writeMesh(w io.Writer, mesh *navborder.Mesh) error {
	for _, v := range mesh.Vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v[0], v[1], v[2]); err != nil {
			return err
		}
	}
	for _, uv := range mesh.UVs {
		if _, err := fmt.Fprintf(w, "vt %g %g\n", uv[0], uv[1]); err != nil {
			return err
		}
	}
	for i := 0; i+2 < len(mesh.Triangles); i += 3 {
		a, b, c := mesh.Triangles[i]+1, mesh.Triangles[i+1]+1, mesh.Triangles[i+2]+1
		if _, err := fmt.Fprintf(w, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c); err != nil {
			return err
		}
	}
	return nil
}
