// Package supersat implements the linked plotting session: an S_i(T)
// diagram and an optional T_F(T) diagram kept consistent through the
// frost-point transform, with recipe drawing and pattern-based bulk
// operations.
package supersat

import (
	"log/slog"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/render"
)

// SurfaceFactory builds the surface of the diagram identified by slug.
type SurfaceFactory func(slug string) (render.Surface, error)

// Options configures a session.
type Options struct {
	// GridMin and GridMax bound the temperature grid in K.
	GridMin float64
	GridMax float64
	// GridPoints is the number of grid samples.
	GridPoints int
	// Linked specifies whether the T_F(T) diagram is created and linked.
	// If nil, defaults to true.
	Linked *bool
	// Surfaces builds diagram surfaces. If nil, in-memory scenes are used.
	Surfaces SurfaceFactory
	// Logger receives session events. If nil, events are discarded.
	Logger *slog.Logger
}

// DefaultOptions returns a linked session over the default grid.
func DefaultOptions() Options {
	return Options{
		GridMin:    models.DefaultGridMin,
		GridMax:    models.DefaultGridMax,
		GridPoints: models.DefaultGridPoints,
	}
}

// ShouldLink returns whether the secondary diagram is linked.
func (o Options) ShouldLink() bool {
	if o.Linked != nil {
		return *o.Linked
	}
	return true
}

// Grid builds the temperature grid, filling unset fields with defaults.
func (o Options) Grid() (models.Grid, error) {
	min, max, n := o.GridMin, o.GridMax, o.GridPoints
	if min == 0 && max == 0 {
		min, max = models.DefaultGridMin, models.DefaultGridMax
	}
	if n == 0 {
		n = models.DefaultGridPoints
	}
	return models.NewGrid(min, max, n)
}

func (o Options) surface(slug string) (render.Surface, error) {
	if o.Surfaces == nil {
		return render.NewScene(), nil
	}
	return o.Surfaces(slug)
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// DrawOptions carries recipe arguments and style overrides for Draw.
type DrawOptions struct {
	// Args are the recipe's positional arguments.
	Args []string
	// Color overrides the curve colour when non-empty. Must be a palette
	// name.
	Color string
	// Width overrides the stroke width when positive.
	Width float64
	// Unlabeled suppresses inline labels.
	Unlabeled bool
	// LabelX overrides the label anchor when non-nil.
	LabelX *float64
}

func (d DrawOptions) apply(s models.Style) models.Style {
	if d.Color != "" {
		s.Color = d.Color
	}
	if d.Width > 0 {
		s.Width = d.Width
	}
	if d.Unlabeled {
		s.Labeled = false
	}
	if d.LabelX != nil {
		x := *d.LabelX
		s.LabelX = &x
	}
	return s
}
