package advanced

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/navborder/internal/dbg"
)

// BuildEdgeLoops orders an undirected set of boundary edges into directed
// loops. Starting from the first remaining edge, it repeatedly takes the first
// remaining edge touching the current end point, flipping it if needed. When
// nothing touches, the chain is closed if it ends where it began, and is
// otherwise set aside as open.
//
// Candidates are searched in input order, so on a non-manifold junction the
// result depends on that order, but it is always the same for the same input.
func BuildEdgeLoops(edges []Edge) LoopSet {
	remaining := append([]Edge(nil), edges...)
	var set LoopSet

	for len(remaining) > 0 {
		current := remaining[0]
		remaining = remaining[1:]
		var loop EdgeLoop

		for {
			next := -1
			for i, edge := range remaining {
				if edge.ConnectsTo(current.V2) {
					next = i
					break
				}
			}

			if next >= 0 {
				loop = append(loop, current)
				current = remaining[next].AlignedFrom(current.V2)
				remaining = append(remaining[:next], remaining[next+1:]...)
				continue
			}

			loop = append(loop, current)
			break
		}

		if loop.IsClosed() {
			set.Loops = append(set.Loops, loop)
		} else {
			if l := Logger(); l.Enabled(context.Background(), slog.LevelWarn) {
				l.Warn("boundary chain does not close", "loop", loop.DbgName(), "edges", len(loop))
			}
			set.Open = append(set.Open, loop)
		}
	}

	return set
}

// IsClosed reports whether the loop is non-empty, each edge continues the one
// before it, and the last edge ends where the first begins.
func (loop EdgeLoop) IsClosed() bool {
	if len(loop) == 0 {
		return false
	}
	for i, edge := range loop {
		next := loop[CircularIndex(i+1, len(loop))]
		if !next.Continues(edge) {
			return false
		}
	}
	return true
}

// Reverse returns the loop walked the other way round.
func (loop EdgeLoop) Reverse() EdgeLoop {
	reversed := make(EdgeLoop, 0, len(loop))
	for i := len(loop) - 1; i >= 0; i-- {
		reversed = append(reversed, loop[i].Reversed())
	}
	return reversed
}

func (loop EdgeLoop) Perimeter() float64 {
	var total float64
	for _, edge := range loop {
		total += edge.Length()
	}
	return total
}

// Signed area of the loop projected onto the XZ plane. Positive means the loop
// turns counterclockwise when looking down from +Y.
func (loop EdgeLoop) SignedArea() float64 {
	var sum float64
	for _, edge := range loop {
		sum += edge.V1[2]*edge.V2[0] - edge.V1[0]*edge.V2[2]
	}
	return sum / 2
}

func (loop EdgeLoop) String() string {
	parts := make([]string, 0, len(loop))
	for _, edge := range loop {
		parts = append(parts, edge.String())
	}
	return fmt.Sprintf("Loop %s [%s]", loop.DbgName(), strings.Join(parts, ", "))
}

func (loop EdgeLoop) DbgName() string {
	if len(loop) == 0 {
		return aurora.Red("Ø").String()
	}
	name := dbg.Name(loop[0])
	if loop.IsClosed() {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}
