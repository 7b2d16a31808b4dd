package shapes

import "github.com/abhisek/shapes/internal/art"

func poly(points, fill string) art.Illustration {
	return art.PolygonArt(art.MustPoints(points), fill)
}

func ticked(points, fill string, sides ...int) art.Illustration {
	p := art.MustPoints(points)
	return art.PolygonArt(p, fill, art.TickSides(p, sides...)...)
}

func heart(fill string) art.Illustration {
	fig := art.Union{
		art.Ellipse{CX: 62, CY: 62, RX: 50, RY: 50},
		art.Ellipse{CX: 138, CY: 62, RX: 50, RY: 50},
		art.MustPoints("16,85 184,85 100,178"),
	}
	return art.PathArt("M100,178 C58,140 12,108 12,65 C12,32 38,12 65,12 C82,12 94,25 100,42 "+
		"C106,25 118,12 135,12 C162,12 188,32 188,65 C188,108 142,140 100,178Z", fig, fill)
}

func semicircle(fill string) art.Illustration {
	fig := art.Intersect{
		art.Ellipse{CX: 100, CY: 125, RX: 88, RY: 88},
		art.MustPoints("0,0 200,0 200,125 0,125"),
	}
	return art.PathArt("M12,125 A88,88 0 0,1 188,125 Z", fig, fill)
}

func crescent(fill string) art.Illustration {
	fig := art.Difference{
		Base: art.Ellipse{CX: 112, CY: 100, RX: 85, RY: 85},
		Cut:  art.Ellipse{CX: 150, CY: 100, RX: 62, RY: 80},
	}
	return art.PathArt("M130,15 A85,85 0 1,0 130,185 A62,62 0 0,1 130,15Z", fig, fill)
}

func star(fill string) art.Illustration {
	return art.PolygonArt(art.StarPoints(100, 105, 85, 35), fill)
}

// builtinShapes is the default catalog in presentation order.
var builtinShapes = []Shape{
	{"circle", CategoryBasic, art.EllipseArt(art.Ellipse{CX: 100, CY: 100, RX: 80, RY: 80}, "#E31E24")},
	{"square", CategoryBasic, poly("20,20 180,20 180,180 20,180", "#00AEEF")},
	{"triangle", CategoryBasic, poly("100,15 190,185 10,185", "#8DC63F")},
	{"rectangle", CategoryBasic, poly("15,40 185,40 185,168 15,168", "#FFC20E")},
	{"oval", CategoryBasic, art.EllipseArt(art.Ellipse{CX: 100, CY: 100, RX: 60, RY: 82}, "#8B5CF6")},
	{"heart", CategoryBasic, heart("#FFC20E")},
	{"semicircle", CategoryBasic, semicircle("#39B54A")},
	{"rhombus", CategoryBasic, poly("100,12 190,100 100,188 10,100", "#FFC20E")},
	{"star", CategoryBasic, star("#F7941D")},
	{"crescent", CategoryBasic, crescent("#F9A7C4")},

	{"pentagon", CategoryPolygons, art.RegularPolygonArt(5, "#0072BC")},
	{"hexagon", CategoryPolygons, art.RegularPolygonArt(6, "#F7941D")},
	{"heptagon", CategoryPolygons, art.RegularPolygonArt(7, "#EC008C")},
	{"octagon", CategoryPolygons, art.RegularPolygonArt(8, "#F7941D")},
	{"nonagon", CategoryPolygons, art.RegularPolygonArt(9, "#E31E24")},
	{"decagon", CategoryPolygons, art.RegularPolygonArt(10, "#A8B5A0")},

	{"scalene triangle", CategoryTriangles, poly("20,185 185,185 150,15", "#D4145A")},
	{"equilateral triangle", CategoryTriangles, ticked("100,15 190,185 10,185", "#006838", 0, 1, 2)},
	{"right-angled triangle", CategoryTriangles, poly("20,185 20,15 185,185", "#662D91")},
	{"isosceles triangle", CategoryTriangles, ticked("100,15 178,185 22,185", "#F7941D", 0, 2)},

	{"kite", CategoryMore, poly("100,10 175,90 100,190 25,90", "#C6449B")},
	{"parallelogram", CategoryMore, poly("45,162 90,40 178,40 133,162", "#E8501E")},
	{"trapezium", CategoryMore, poly("20,170 62,40 148,40 190,170", "#00AEEF")},
	{"irregular quadrilateral", CategoryMore, poly("25,178 52,30 178,52 168,178", "#F7941D")},
	{"irregular pentagon", CategoryMore, poly("35,55 130,10 190,78 155,185 15,168", "#A80050")},
	{"irregular hexagon", CategoryMore, poly("60,15 162,30 192,100 158,178 35,175 10,95", "#003366")},
	{"irregular heptagon", CategoryMore, poly("50,15 148,10 188,60 182,138 128,188 35,172 8,85", "#00A99D")},
	{"irregular octagon", CategoryMore, poly("60,10 148,15 188,50 192,128 162,178 70,188 15,148 10,65", "#E31E24")},
}

// Builtin returns the default catalog.
func Builtin() Catalog {
	return NewCatalog(builtinShapes)
}

// BuiltinArt returns the illustration of a built-in shape by name.
func BuiltinArt(name string) (art.Illustration, bool) {
	for _, s := range builtinShapes {
		if s.Name == name {
			return s.Art, true
		}
	}
	return art.Illustration{}, false
}
