package shapes

import (
	"fmt"
	"slices"
)

// Catalog is an immutable ordered list of shapes.
type Catalog struct {
	shapes []Shape
}

// NewCatalog builds a catalog from shapes. The slice is copied.
func NewCatalog(shapes []Shape) Catalog {
	return Catalog{shapes: slices.Clone(shapes)}
}

// Len returns the number of shapes.
func (c Catalog) Len() int { return len(c.shapes) }

// All returns a copy of every shape in catalog order.
func (c Catalog) All() []Shape { return slices.Clone(c.shapes) }

// At returns the i-th shape.
func (c Catalog) At(i int) Shape { return c.shapes[i] }

// Names returns the shape names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.shapes))
	for i, s := range c.shapes {
		names[i] = s.Name
	}
	return names
}

// ByName looks a shape up by exact name.
func (c Catalog) ByName(name string) (Shape, bool) {
	for _, s := range c.shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// Filter returns the shapes whose category is in cats, preserving order.
func (c Catalog) Filter(cats ...Category) Catalog {
	var out []Shape
	for _, s := range c.shapes {
		if slices.Contains(cats, s.Category) {
			out = append(out, s)
		}
	}
	return Catalog{shapes: out}
}

// Without returns the shapes whose names are not in exclude, preserving
// order. Later duplicates of a name already returned are dropped too.
func (c Catalog) Without(exclude map[string]bool) []Shape {
	seen := make(map[string]bool, len(c.shapes))
	var out []Shape
	for _, s := range c.shapes {
		if exclude[s.Name] || seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		out = append(out, s)
	}
	return out
}

// Validate checks the startup preconditions: at least MinUniqueShapes
// shapes, every name non-empty and unique.
func (c Catalog) Validate() error {
	if len(c.shapes) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(c.shapes))
	for i, s := range c.shapes {
		if s.Name == "" {
			return fmt.Errorf("shape %d: %w", i, ErrEmptyName)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = true
	}
	if len(seen) < MinUniqueShapes {
		return fmt.Errorf("%w (have %d)", ErrTooFewShapes, len(seen))
	}
	return nil
}
