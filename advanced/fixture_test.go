package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into surfaces. This is not a full (or even
// correct) svg parser. Every polygon in the file must be a triangle, and is
// placed on the XZ plane with svg x as X and svg y as Z. Corners with the same
// coordinates are welded into one vertex. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Surface {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var surface Surface
	welded := make(map[Point]int)
	for _, polygonEl := range polygons {
		pointStrings := strings.Fields(polygonEl.Attributes["points"])
		if len(pointStrings) != 3 {
			log.Fatalf("Fixture %q has a polygon with %d points", name, len(pointStrings))
		}
		for _, pointString := range pointStrings {
			coords := strings.Split(pointString, ",")
			if len(coords) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(coords[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", coords[0], err)
			}
			z, err := strconv.ParseFloat(coords[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", coords[1], err)
			}
			p := Point{x, 0, z}
			index, ok := welded[p]
			if !ok {
				index = len(surface.Vertices)
				welded[p] = index
				surface.Vertices = append(surface.Vertices, p)
			}
			surface.Indices = append(surface.Indices, index)
		}
	}
	return surface
}

// Some ad hoc code specified fixtures

// A star fanned out from its center. Its boundary is the 10 outer edges, and
// the spokes are all interior.
func StarFan() Surface {
	const outerRadius = 5
	const innerRadius = 2
	surface := Surface{Vertices: []Point{{0, 0, 0}}}
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		surface.Vertices = append(surface.Vertices, Point{radius * math.Cos(angle), 0, radius * math.Sin(angle)})
	}
	for i := 0; i < 10; i++ {
		surface.Indices = append(surface.Indices, 0, 1+i, 1+CircularIndex(i+1, 10))
	}
	return surface
}

// Two squares that only touch at one corner. The shared vertex makes the
// boundary non-manifold.
func Bowtie() Surface {
	return Surface{
		Vertices: []Point{
			{0, 0, 0}, {5, 0, 0}, {5, 0, 5}, {0, 0, 5},
			{10, 0, 5}, {10, 0, 10}, {5, 0, 10},
		},
		Indices: []int{
			0, 1, 2, 0, 2, 3,
			2, 4, 5, 2, 5, 6,
		},
	}
}

// A flat square loop with sides of the given length, clockwise seen
// from above.
func SquareLoop(size float64) EdgeLoop {
	a := Point{0, 0, 0}
	b := Point{size, 0, 0}
	c := Point{size, 0, size}
	d := Point{0, 0, size}
	return EdgeLoop{{a, b}, {b, c}, {c, d}, {d, a}}
}
