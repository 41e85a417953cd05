package model

import (
	"fmt"
	"io"
	"os"
)

const (
	gridPosLit   = "██"
	gridPosUnlit = "··"
)

// TerminalRenderer draws a grid as plain text with row and column labels
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out}
}

// Display renders the grid
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Fprint(r.Out, "   ")
	for x := range g.cols {
		fmt.Fprintf(r.Out, "%2d", x)
	}
	fmt.Fprintln(r.Out)

	for y := range g.rows {
		fmt.Fprintf(r.Out, "%2d ", y)
		for x := range g.cols {
			if g.Get(y, x) {
				fmt.Fprint(r.Out, gridPosLit)
			} else {
				fmt.Fprint(r.Out, gridPosUnlit)
			}
		}
		fmt.Fprintln(r.Out)
	}
}
