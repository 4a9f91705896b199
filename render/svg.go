package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/pkg/errors"

	lsystem "github.com/viktordanov/lsys"
)

// SVG traces the instruction stream with a Turtle and writes the drawing as an
// SVG document on Flush.
type SVG struct {
	*Turtle
	w io.Writer
}

func NewSVG(w io.Writer, config lsystem.RendererConfig) *SVG {
	return &SVG{Turtle: NewTurtle(config), w: w}
}

func (s *SVG) Flush() error {
	lo, hi := s.Bounds()
	pad := math.Max(s.config.StartingLineWidth, 1)
	for _, seg := range s.segments {
		pad = math.Max(pad, seg.Width)
	}
	// SVG is y-down, so the drawing is mirrored on the x axis.
	x, y := lo.X-pad, -hi.Y-pad
	width, height := hi.X-lo.X+2*pad, hi.Y-lo.Y+2*pad

	bw := bufio.NewWriter(s.w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(x), num(y), num(width), num(height))
	fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(width), num(height), html.EscapeString(s.config.BackgroundColor))
	fmt.Fprintf(bw, `<g stroke="%s" stroke-linecap="round" fill="none">`+"\n",
		html.EscapeString(s.config.PenColor))
	for _, seg := range s.segments {
		fmt.Fprintf(bw, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke-width="%s"/>`+"\n",
			num(seg.From.X), num(-seg.From.Y), num(seg.To.X), num(-seg.To.Y), num(seg.Width))
	}
	bw.WriteString("</g>\n</svg>\n")
	return errors.Wrap(bw.Flush(), "writing svg")
}

func num(f float64) string {
	f = math.Round(f*1000) / 1000
	if f == 0 {
		f = 0 // drop negative zero
	}
	return fmt.Sprintf("%g", f)
}
