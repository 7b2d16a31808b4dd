package shapes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/shapes/internal/art"
)

// SupportedSchemaMajor is the catalog file major version this build reads.
const SupportedSchemaMajor = "v1"

// ErrUnsupportedVersion is returned for catalog files written for another
// major schema version.
var ErrUnsupportedVersion = errors.New("unsupported catalog schema version")

const catalogSchemaURL = "schema://shapes-catalog.json"

// catalogSchema describes the custom catalog file format.
const catalogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version", "shapes"],
  "additionalProperties": false,
  "properties": {
    "schema_version": {"type": "string", "pattern": "^v[0-9]+(\\.[0-9]+){0,2}$"},
    "shapes": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "category"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "category": {"enum": ["basic", "polygons", "triangles", "more"]},
          "art": {"type": "string", "minLength": 1},
          "points": {"type": "string", "minLength": 1},
          "fill": {"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"}
        },
        "anyOf": [
          {"required": ["art"]},
          {"required": ["points", "fill"]}
        ]
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

type catalogFile struct {
	SchemaVersion string      `json:"schema_version"`
	Shapes        []shapeFile `json:"shapes"`
}

type shapeFile struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Art      string `json:"art,omitempty"`
	Points   string `json:"points,omitempty"`
	Fill     string `json:"fill,omitempty"`
}

// LoadFile reads a catalog from a JSON file. See Load.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a catalog document, validates it against the catalog schema,
// resolves each shape's illustration and checks the catalog preconditions.
//
// A shape either names a built-in illustration with "art" or supplies its
// own polygon with "points" and "fill".
func Load(r io.Reader) (Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Catalog{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := catalogValidator()
	if err != nil {
		return Catalog{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return Catalog{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	if err := checkVersion(file.SchemaVersion); err != nil {
		return Catalog{}, err
	}

	out := make([]Shape, 0, len(file.Shapes))
	for _, sf := range file.Shapes {
		s, err := sf.resolve()
		if err != nil {
			return Catalog{}, fmt.Errorf("shape %q: %w", sf.Name, err)
		}
		out = append(out, s)
	}

	c := NewCatalog(out)
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (sf shapeFile) resolve() (Shape, error) {
	cat, err := ParseCategory(sf.Category)
	if err != nil {
		return Shape{}, err
	}

	var ill art.Illustration
	switch {
	case sf.Points != "":
		p, err := art.ParsePoints(sf.Points)
		if err != nil {
			return Shape{}, err
		}
		ill = art.PolygonArt(p, sf.Fill)
	default:
		var ok bool
		ill, ok = BuiltinArt(sf.Art)
		if !ok {
			return Shape{}, fmt.Errorf("unknown built-in art %q", sf.Art)
		}
	}

	return Shape{Name: sf.Name, Category: cat, Art: ill}, nil
}

// checkVersion accepts any version with the supported major.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if major := semver.Major(v); major != SupportedSchemaMajor {
		return fmt.Errorf("%w: %s (want %s.x)", ErrUnsupportedVersion, v, SupportedSchemaMajor)
	}
	return nil
}

func catalogValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(catalogSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(catalogSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(catalogSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile catalog schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}
