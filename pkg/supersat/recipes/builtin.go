package recipes

import (
	"fmt"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/params"
)

// isoLabelX is the temperature where isopleth labels are anchored.
const isoLabelX = 270.0

// zeroSwPlaceholder is the secondary-diagram name registered for the S_w = 0
// isopleth, whose frost point is undefined.
const zeroSwPlaceholder = "S_w0"

var defaultIsoSw = []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

func line(grid models.Grid, y []float64, name string, style models.Style) Curve {
	return Curve{Name: name, Kind: models.KindLine, X: grid.Values(), Y: y, Style: style}
}

func anchorAt(x float64) *float64 {
	return &x
}

func buildWaterSaturation(grid models.Grid, _ []float64) ([]Curve, error) {
	y, _, err := grid.Map(func(t float64) (float64, error) {
		return params.SwToSi(t, 1)
	})
	if err != nil {
		return nil, err
	}
	return []Curve{line(grid, y, "S_w1", models.Style{
		Color:   "blue",
		Width:   1,
		Label:   "S_w = 1",
		Labeled: true,
	})}, nil
}

func buildIsoSw(grid models.Grid, args []float64) ([]Curve, error) {
	values := args
	if len(values) == 0 {
		values = defaultIsoSw
	}
	curves := make([]Curve, 0, len(values))
	for i, sw := range values {
		if sw < 0 {
			return nil, outOfRange("iso_S_w", i+1, sw, ">= 0")
		}
		y, _, err := grid.Map(func(t float64) (float64, error) {
			return params.SwToSi(t, sw)
		})
		if err != nil {
			return nil, err
		}
		c := line(grid, y, fmt.Sprintf("S_w%0.1f", sw), models.Style{
			Color:   "lightgrey",
			Width:   1,
			Label:   fmt.Sprintf("%0.1f", sw),
			Labeled: true,
			LabelX:  anchorAt(isoLabelX),
		})
		if sw == 0 {
			c.Placeholder = zeroSwPlaceholder
		}
		curves = append(curves, c)
	}
	return curves, nil
}

func buildIsoSi(grid models.Grid, args []float64) ([]Curve, error) {
	curves := make([]Curve, 0, len(args))
	for i, si := range args {
		if si <= 0 {
			return nil, outOfRange("iso_S_i", i+1, si, "> 0")
		}
		y := make([]float64, grid.Len())
		for j := range y {
			y[j] = si
		}
		curves = append(curves, line(grid, y, fmt.Sprintf("S_i%0.2f", si), models.Style{
			Color:   "green",
			Width:   1,
			Label:   fmt.Sprintf("S_i = %0.2f", si),
			Labeled: true,
		}))
	}
	return curves, nil
}

func buildKelvin(grid models.Grid, args []float64) ([]Curve, error) {
	curves := make([]Curve, 0, len(args))
	for i, nm := range args {
		if nm <= 0 {
			return nil, outOfRange("kelvin", i+1, nm, "> 0 nm")
		}
		// Concave meniscus: negative curvature radius.
		r := -params.NanometresToMetres(nm)
		y, _, err := grid.Map(func(t float64) (float64, error) {
			sw, err := params.SwForMeniscusRadius(t, r)
			if err != nil {
				return 0, err
			}
			return params.SwToSi(t, sw)
		})
		if err != nil {
			return nil, err
		}
		curves = append(curves, line(grid, y, fmt.Sprintf("kelvin%gnm", nm), models.Style{
			Color:   "orange",
			Width:   1,
			Label:   fmt.Sprintf("%g nm", nm),
			Labeled: true,
		}))
	}
	return curves, nil
}

func buildPore(grid models.Grid, args []float64) ([]Curve, error) {
	curves := make([]Curve, 0, len(args))
	for i, nm := range args {
		if nm <= 0 {
			return nil, outOfRange("pore", i+1, nm, "> 0 nm")
		}
		r := params.NanometresToMetres(nm)
		y, _, err := grid.Map(func(t float64) (float64, error) {
			return params.SiForPoreRadius(t, r)
		})
		if err != nil {
			return nil, err
		}
		curves = append(curves, line(grid, y, fmt.Sprintf("pore%gnm", nm), models.Style{
			Color:   "purple",
			Width:   1,
			Label:   fmt.Sprintf("pore %g nm", nm),
			Labeled: true,
		}))
	}
	return curves, nil
}

func buildPoint(_ models.Grid, args []float64) ([]Curve, error) {
	if len(args) != 2 {
		return nil, &ArgError{Recipe: "point", Position: len(args) + 1, Err: ErrTooFewArgs}
	}
	t, si := args[0], args[1]
	if t <= 0 {
		return nil, outOfRange("point", 1, t, "> 0 K")
	}
	if si < 0 {
		return nil, outOfRange("point", 2, si, ">= 0")
	}
	name := fmt.Sprintf("pt%g_%g", t, si)
	return []Curve{{
		Name: name,
		Kind: models.KindScatter,
		X:    []float64{t},
		Y:    []float64{si},
		Style: models.Style{
			Color:  "red",
			Label:  name,
			Marker: "x",
		},
	}}, nil
}
