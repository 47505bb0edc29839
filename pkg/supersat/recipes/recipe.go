// Package recipes holds the closed catalogue of graph recipes: pure
// functions of the temperature grid and numeric arguments that yield named
// curves for the S_i(T) diagram.
package recipes

import (
	"sort"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
)

// Curve is one named drawable produced by a recipe, in S_i(T) coordinates.
type Curve struct {
	Name  string
	Kind  models.Kind
	X     []float64
	Y     []float64
	Style models.Style
	// Placeholder, when set, replaces the linked copy of the curve with an
	// empty artifact of that name on the secondary diagram.
	Placeholder string
}

// BuildFunc computes the curves of a recipe.
type BuildFunc func(grid models.Grid, args []float64) ([]Curve, error)

// Recipe is a catalogue entry.
type Recipe struct {
	Name    string
	Summary string
	Usage   string
	MinArgs int
	// MaxArgs is the maximum number of arguments, or -1 for no limit.
	MaxArgs int
	Build   BuildFunc
}

// Catalogue is an immutable set of recipes keyed by name.
type Catalogue struct {
	recipes map[string]Recipe
}

func newCatalogue(rs ...Recipe) *Catalogue {
	c := &Catalogue{recipes: make(map[string]Recipe, len(rs))}
	for _, r := range rs {
		c.recipes[r.Name] = r
	}
	return c
}

// Lookup returns the recipe registered under name.
func (c *Catalogue) Lookup(name string) (Recipe, bool) {
	r, ok := c.recipes[name]
	return r, ok
}

// List returns all recipes sorted by name.
func (c *Catalogue) List() []Recipe {
	out := make([]Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the recipe names sorted.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.recipes))
	for _, r := range c.List() {
		names = append(names, r.Name)
	}
	return names
}

// Default returns the built-in catalogue.
func Default() *Catalogue {
	return newCatalogue(
		Recipe{
			Name:    "S_w1",
			Summary: "ice saturation ratio at water saturation (S_w = 1)",
			Usage:   "S_w1",
			MinArgs: 0,
			MaxArgs: 0,
			Build:   buildWaterSaturation,
		},
		Recipe{
			Name:    "iso_S_w",
			Summary: "isopleths of constant S_w (default 0.0 to 0.9 by 0.1)",
			Usage:   "iso_S_w [S_w ...]",
			MinArgs: 0,
			MaxArgs: -1,
			Build:   buildIsoSw,
		},
		Recipe{
			Name:    "iso_S_i",
			Summary: "lines of constant S_i",
			Usage:   "iso_S_i S_i [S_i ...]",
			MinArgs: 1,
			MaxArgs: -1,
			Build:   buildIsoSi,
		},
		Recipe{
			Name:    "kelvin",
			Summary: "S_i at which water condenses in pores of radius r (Kelvin equation)",
			Usage:   "kelvin r_nm [r_nm ...]",
			MinArgs: 1,
			MaxArgs: -1,
			Build:   buildKelvin,
		},
		Recipe{
			Name:    "pore",
			Summary: "critical S_i for ice growth out of pores of radius r",
			Usage:   "pore r_nm [r_nm ...]",
			MinArgs: 1,
			MaxArgs: -1,
			Build:   buildPore,
		},
		Recipe{
			Name:    "point",
			Summary: "single (T, S_i) marker",
			Usage:   "point T S_i",
			MinArgs: 2,
			MaxArgs: 2,
			Build:   buildPoint,
		},
	)
}
