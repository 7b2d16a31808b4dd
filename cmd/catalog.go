package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/shapes/internal/art"
	"github.com/abhisek/shapes/internal/shapes"
	"github.com/spf13/cobra"
)

const (
	showArtCols = 40
	showArtRows = 18
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shapes in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogFromFlags(cmd)
		if err != nil {
			return err
		}
		category, _ := cmd.Flags().GetString("category")
		return listShapes(cmd.OutOrStdout(), catalog, category)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Draw a shape as text art",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogFromFlags(cmd)
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")
		return showShape(cmd.OutOrStdout(), catalog, args[0], plain)
	},
}

var svgCmd = &cobra.Command{
	Use:   "svg <name>",
	Short: "Print a shape's SVG illustration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := catalogFromFlags(cmd)
		if err != nil {
			return err
		}
		return printSVG(cmd.OutOrStdout(), catalog, args[0])
	},
}

func init() {
	listCmd.Flags().String("category", "", "Only list shapes in this category: basic, polygons, triangles or more")
	showCmd.Flags().Bool("plain", false, "Draw with '#' characters instead of colour")
}

// catalogFromFlags loads the catalog selected by config and --catalog.
func catalogFromFlags(cmd *cobra.Command) (shapes.Catalog, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return shapes.Catalog{}, err
	}
	return loadCatalog(cfg.Catalog.Path)
}

func listShapes(w io.Writer, catalog shapes.Catalog, category string) error {
	if category != "" {
		c, err := shapes.ParseCategory(category)
		if err != nil {
			return err
		}
		catalog = catalog.Filter(c)
	}

	basic := catalog.Filter(shapes.BasicCategories...)
	inBasic := make(map[string]bool, basic.Len())
	for _, name := range basic.Names() {
		inBasic[name] = true
	}

	fmt.Fprintf(w, "%-26s %-10s %-6s %s\n", "Name", "Category", "Pool", "Fill")
	fmt.Fprintln(w, strings.Repeat("─", 52))
	for _, s := range catalog.All() {
		pool := "all"
		if inBasic[s.Name] {
			pool = "basic"
		}
		fmt.Fprintf(w, "%-26s %-10s %-6s %s\n", s.Name, s.Category, pool, s.Art.Fill())
	}
	fmt.Fprintf(w, "\n%d shapes (%d in the basic pool)\n", catalog.Len(), basic.Len())
	return nil
}

func showShape(w io.Writer, catalog shapes.Catalog, name string, plain bool) error {
	s, err := lookupShape(catalog, name)
	if err != nil {
		return err
	}
	if plain {
		fmt.Fprintln(w, art.RenderPlain(s.Art.Figure(), showArtCols, showArtRows))
	} else {
		fmt.Fprintln(w, art.Render(s.Art, showArtCols, showArtRows))
	}
	fmt.Fprintf(w, "%s (%s)\n", s.Name, s.Category)
	return nil
}

func printSVG(w io.Writer, catalog shapes.Catalog, name string) error {
	s, err := lookupShape(catalog, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, s.Art.SVG())
	return nil
}

func lookupShape(catalog shapes.Catalog, name string) (shapes.Shape, error) {
	s, ok := catalog.ByName(strings.TrimSpace(name))
	if !ok {
		return shapes.Shape{}, fmt.Errorf("no shape named %q (try 'shapes list')", name)
	}
	return s, nil
}
