// Package art describes shape illustrations on a 200×200 canvas. Each
// illustration can be rasterised for the terminal or emitted as SVG.
package art

import (
	"fmt"
	"strconv"
	"strings"
)

// CanvasSize is the width and height of the drawing canvas.
const CanvasSize = 200.0

// Point is a canvas coordinate. Y grows downwards, as in SVG.
type Point struct {
	X, Y float64
}

// Figure is a filled region of the canvas.
type Figure interface {
	Contains(x, y float64) bool
}

// Polygon is a closed polygon. Winding order does not matter.
type Polygon []Point

// Contains uses the even-odd rule.
func (p Polygon) Contains(x, y float64) bool {
	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > y) != (b.Y > y) {
			xCross := (b.X-a.X)*(y-a.Y)/(b.Y-a.Y) + a.X
			if x < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// String formats the points the way an SVG points attribute expects.
func (p Polygon) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = fmt.Sprintf("%s,%s", fmtCoord(pt.X), fmtCoord(pt.Y))
	}
	return strings.Join(parts, " ")
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	CX, CY, RX, RY float64
}

func (e Ellipse) Contains(x, y float64) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx := (x - e.CX) / e.RX
	dy := (y - e.CY) / e.RY
	return dx*dx+dy*dy <= 1
}

// Union contains a point if any part does.
type Union []Figure

func (u Union) Contains(x, y float64) bool {
	for _, f := range u {
		if f.Contains(x, y) {
			return true
		}
	}
	return false
}

// Intersect contains a point if every part does.
type Intersect []Figure

func (in Intersect) Contains(x, y float64) bool {
	if len(in) == 0 {
		return false
	}
	for _, f := range in {
		if !f.Contains(x, y) {
			return false
		}
	}
	return true
}

// Difference is Base with Cut removed.
type Difference struct {
	Base, Cut Figure
}

func (d Difference) Contains(x, y float64) bool {
	return d.Base.Contains(x, y) && !d.Cut.Contains(x, y)
}

// ParsePoints parses an SVG points list such as "20,20 180,20 100,180".
func ParsePoints(s string) (Polygon, error) {
	fields := strings.Fields(s)
	poly := make(Polygon, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: missing comma", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		poly = append(poly, Point{X: x, Y: y})
	}
	if len(poly) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d", len(poly))
	}
	return poly, nil
}

// MustPoints is ParsePoints for static data; it panics on malformed input.
func MustPoints(s string) Polygon {
	p, err := ParsePoints(s)
	if err != nil {
		panic(err)
	}
	return p
}

// fmtCoord prints whole numbers without a fraction and everything else
// with one decimal place.
func fmtCoord(v float64) string {
	if v == float64(int(v)) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
