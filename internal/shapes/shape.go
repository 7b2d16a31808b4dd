// Package shapes holds the shape catalog: the named, categorised shapes
// the learner studies.
package shapes

import (
	"errors"
	"fmt"

	"github.com/abhisek/shapes/internal/art"
)

// Category groups shapes for pool selection.
type Category string

const (
	CategoryBasic     Category = "basic"
	CategoryPolygons  Category = "polygons"
	CategoryTriangles Category = "triangles"
	CategoryMore      Category = "more"
)

// AllCategories lists the known categories in display order.
var AllCategories = []Category{CategoryBasic, CategoryPolygons, CategoryTriangles, CategoryMore}

// BasicCategories are the categories that make up the basic pool.
var BasicCategories = []Category{CategoryBasic, CategoryPolygons}

// MinUniqueShapes is the smallest catalog that can fill a quiz question
// (one correct answer and three distractors).
const MinUniqueShapes = 4

var (
	ErrEmptyCatalog  = errors.New("catalog is empty")
	ErrEmptyName     = errors.New("shape has an empty name")
	ErrDuplicateName = errors.New("duplicate shape name")
	ErrTooFewShapes  = fmt.Errorf("catalog needs at least %d uniquely named shapes", MinUniqueShapes)
)

// Shape is a single catalog entry.
type Shape struct {
	Name     string
	Category Category
	Art      art.Illustration
}

// ParseCategory converts a string to a known Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range AllCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
