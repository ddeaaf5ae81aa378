package main

import (
	"bufio"
	"log/slog"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/navborder"
	"github.com/osuushi/navborder/advanced"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of border generation. Input on stdin is a Wavefront OBJ surface (only
// "v" and "f" lines are read, and a "# area N" comment sets the area of the
// faces after it). The border mesh is written to stdout as OBJ with UVs.
var (
	width         = kingpin.Flag("width", "Border width.").Short('w').Default("1").Float64()
	textureScale  = kingpin.Flag("texture-scale", "UV divisor.").Default("1").Float64()
	forceUp       = kingpin.Flag("force-up", "Project UVs straight down instead of along face normals.").Bool()
	keepExtending = kingpin.Flag("keep-extending", "Do not merge colinear boundary edges.").Bool()
	areaMask      = kingpin.Flag("area-mask", "Only use faces whose area bit is set.").Default("-1").Int()
	preview       = kingpin.Flag("preview", "Save a top-down PNG of the result to this path and show it in the terminal.").String()
	verbose       = kingpin.Flag("verbose", "Log diagnostics to stderr.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	if *verbose {
		navborder.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	surface, err := readSurface(os.Stdin)
	kingpin.FatalIfError(err, "reading surface")
	surface = surface.FilterAreas(*areaMask)

	mesh, err := navborder.GenerateBorderMesh(surface,
		navborder.WithBorderWidth(*width),
		navborder.WithTextureScale(*textureScale),
		navborder.WithForceUpNormal(*forceUp),
		navborder.WithRemoveExtendingEdges(!*keepExtending),
	)
	kingpin.FatalIfError(err, "generating border")

	out := bufio.NewWriter(os.Stdout)
	kingpin.FatalIfError(writeMesh(out, mesh), "writing mesh")
	kingpin.FatalIfError(out.Flush(), "writing mesh")

	if *preview != "" {
		loops, err := navborder.OuterEdgeLoops(surface, !*keepExtending)
		kingpin.FatalIfError(err, "finding loops")
		kingpin.FatalIfError(advanced.DrawDebug(*preview, 20, loops, mesh), "drawing preview")
		kingpin.FatalIfError(imgcat.CatFile(*preview, os.Stderr), "showing preview")
	}
}
