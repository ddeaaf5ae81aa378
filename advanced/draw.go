package advanced

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/navborder/internal/dbg"
)

// Padding around the drawing, in pixels
const dbgDrawPadding = 40

// DrawDebug renders the border mesh and the loops it came from as seen from
// above (X to the right, Z up) and saves the image as a PNG. scale is pixels
// per world unit. Either loops or mesh may be empty.
func DrawDebug(path string, scale float64, loops []EdgeLoop, mesh *Mesh) error {
	minX, minZ := math.Inf(1), math.Inf(1)
	maxX, maxZ := math.Inf(-1), math.Inf(-1)
	include := func(p Point) {
		minX = math.Min(minX, p[0])
		minZ = math.Min(minZ, p[2])
		maxX = math.Max(maxX, p[0])
		maxZ = math.Max(maxZ, p[2])
	}
	for _, loop := range loops {
		for _, edge := range loop {
			include(edge.V1)
			include(edge.V2)
		}
	}
	if mesh != nil {
		for _, v := range mesh.Vertices {
			include(v)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minZ, maxX, maxZ = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxZ-minZ)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minZ)

	if mesh != nil {
		for i := 0; i+2 < len(mesh.Triangles); i += 3 {
			a := mesh.Vertices[mesh.Triangles[i]]
			b := mesh.Vertices[mesh.Triangles[i+1]]
			d := mesh.Vertices[mesh.Triangles[i+2]]
			c.MoveTo(a[0], a[2])
			c.LineTo(b[0], b[2])
			c.LineTo(d[0], d[2])
			c.ClosePath()
		}
		c.SetRGBA(0, 0.5, 0, 0.6)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(1)
		c.Stroke()
	}

	c.SetLineWidth(2)
	for _, loop := range loops {
		if len(loop) == 0 {
			continue
		}
		c.MoveTo(loop[0].V1[0], loop[0].V1[2])
		for _, edge := range loop {
			c.LineTo(edge.V2[0], edge.V2[2])
		}
		if loop.IsClosed() {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.Stroke()

		// Label at the start of the loop, drawn in native coordinates so the
		// text is not mirrored
		x, y := c.TransformPoint(loop[0].V1[0], loop[0].V1[2])
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(loop[0]), x, y, 0, 1)
		c.Pop()
	}

	return c.SavePNG(path)
}
