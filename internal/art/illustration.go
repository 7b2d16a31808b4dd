package art

import (
	"fmt"
	"math"
	"strings"
)

const (
	strokeColor = "#2D2D2D"
	strokeWidth = "3.5"
)

// Mark is a short decorative line, used to flag equal sides.
type Mark struct {
	X1, Y1, X2, Y2 float64
}

// Illustration pairs a figure with its fill colour and SVG markup.
// It is immutable once built.
type Illustration struct {
	figure Figure
	fill   string
	svg    string
}

// Figure returns the filled region.
func (i Illustration) Figure() Figure { return i.figure }

// Fill returns the fill colour as "#RRGGBB".
func (i Illustration) Fill() string { return i.fill }

// SVG returns a standalone SVG document.
func (i Illustration) SVG() string { return i.svg }

// IsZero reports whether the illustration is empty.
func (i Illustration) IsZero() bool { return i.figure == nil }

func svgDoc(inner string) string {
	return `<svg viewBox="0 0 200 200" xmlns="http://www.w3.org/2000/svg">` + inner + `</svg>`
}

func strokeAttrs() string {
	return fmt.Sprintf(`stroke="%s" stroke-width="%s"`, strokeColor, strokeWidth)
}

// PolygonArt builds a filled polygon with optional equal-side marks.
func PolygonArt(points Polygon, fill string, marks ...Mark) Illustration {
	var b strings.Builder
	fmt.Fprintf(&b, `<polygon points="%s" fill="%s" %s stroke-linejoin="round"/>`, points, fill, strokeAttrs())
	for _, m := range marks {
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2.5" stroke-linecap="round"/>`,
			m.X1, m.Y1, m.X2, m.Y2, strokeColor)
	}
	return Illustration{figure: points, fill: fill, svg: svgDoc(b.String())}
}

// RegularPolygonArt builds an n-sided regular polygon centred on the canvas
// with its first vertex pointing up.
func RegularPolygonArt(n int, fill string) Illustration {
	return PolygonArt(RegularPolygon(n, 100, 100, 80), fill)
}

// RegularPolygon returns the vertices of an n-sided regular polygon.
func RegularPolygon(n int, cx, cy, r float64) Polygon {
	pts := make(Polygon, n)
	for i := range n {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = Point{X: round1(cx + r*math.Cos(a)), Y: round1(cy + r*math.Sin(a))}
	}
	return pts
}

// StarPoints returns the ten vertices of a five-pointed star.
func StarPoints(cx, cy, outer, inner float64) Polygon {
	pts := make(Polygon, 10)
	for i := range 10 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi*float64(i)/5 - math.Pi/2
		pts[i] = Point{X: round1(cx + r*math.Cos(a)), Y: round1(cy + r*math.Sin(a))}
	}
	return pts
}

// EllipseArt builds a filled ellipse; equal radii give a circle.
func EllipseArt(e Ellipse, fill string) Illustration {
	var inner string
	if e.RX == e.RY {
		inner = fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s" %s/>`,
			fmtCoord(e.CX), fmtCoord(e.CY), fmtCoord(e.RX), fill, strokeAttrs())
	} else {
		inner = fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s" fill="%s" %s/>`,
			fmtCoord(e.CX), fmtCoord(e.CY), fmtCoord(e.RX), fmtCoord(e.RY), fill, strokeAttrs())
	}
	return Illustration{figure: e, fill: fill, svg: svgDoc(inner)}
}

// PathArt builds an illustration whose SVG is a path and whose raster
// region is approximated by fig.
func PathArt(d string, fig Figure, fill string) Illustration {
	inner := fmt.Sprintf(`<path d="%s" fill="%s" %s stroke-linejoin="round"/>`, d, fill, strokeAttrs())
	return Illustration{figure: fig, fill: fill, svg: svgDoc(inner)}
}

// Tick returns a mark crossing the midpoint of the segment (x1,y1)-(x2,y2).
func Tick(x1, y1, x2, y2 float64) Mark {
	mx, my := (x1+x2)/2, (y1+y2)/2
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	px, py := -dy/l*9, dx/l*9
	return Mark{X1: mx - px, Y1: my - py, X2: mx + px, Y2: my + py}
}

// TickSides returns one tick per listed side of poly, identified by the
// index of the side's first vertex.
func TickSides(poly Polygon, sides ...int) []Mark {
	marks := make([]Mark, 0, len(sides))
	for _, s := range sides {
		a := poly[s%len(poly)]
		b := poly[(s+1)%len(poly)]
		marks = append(marks, Tick(a.X, a.Y, b.X, b.Y))
	}
	return marks
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
