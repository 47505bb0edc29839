package supersat

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/ukaji3/supersat-go/pkg/supersat/link"
	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/plot"
	"github.com/ukaji3/supersat-go/pkg/supersat/recipes"
	"github.com/ukaji3/supersat-go/pkg/supersat/selector"
)

// Diagram names, also used as surface slugs.
const (
	PrimaryName   = "S_i"
	SecondaryName = "T_F"
)

var (
	primaryAxes = models.Axes{
		Title:  "S_i = f(T)",
		XLabel: "T (K)",
		YLabel: "S_i",
	}
	secondaryAxes = models.Axes{
		Title:  "T_F = f(T)",
		XLabel: "T (K)",
		YLabel: "T_F(T) (K)",
	}
)

// Session owns the diagrams, the optional link between them and the recipe
// catalogue. It is not safe for concurrent use: commands run one at a time.
type Session struct {
	grid      models.Grid
	primary   *plot.Diagram
	secondary *plot.Diagram
	link      *link.Link
	recipes   *recipes.Catalogue
	log       *slog.Logger
}

// New creates the primary diagram and, when linked, the secondary diagram
// and the frost-point link.
func New(opts Options) (*Session, error) {
	grid, err := opts.Grid()
	if err != nil {
		return nil, err
	}
	s := &Session{
		grid:    grid,
		recipes: recipes.Default(),
		log:     opts.logger(),
	}

	surface, err := opts.surface(slug(PrimaryName))
	if err != nil {
		return nil, fmt.Errorf("create %s surface: %w", PrimaryName, err)
	}
	s.primary = plot.NewDiagram(PrimaryName, primaryAxes, grid, surface)

	if opts.ShouldLink() {
		surface, err := opts.surface(slug(SecondaryName))
		if err != nil {
			return nil, fmt.Errorf("create %s surface: %w", SecondaryName, err)
		}
		s.secondary = plot.NewDiagram(SecondaryName, secondaryAxes, grid, surface)
		s.link = link.FrostPoint()
	}

	s.log.Info("Successfully created session",
		"grid_min", grid.Min(), "grid_max", grid.Max(), "grid_points", grid.Len(), "linked", s.Linked())
	return s, nil
}

func slug(name string) string {
	switch name {
	case PrimaryName:
		return "s_i"
	case SecondaryName:
		return "t_f"
	}
	return name
}

// Grid returns the shared temperature grid.
func (s *Session) Grid() models.Grid { return s.grid }

// Primary returns the S_i(T) diagram.
func (s *Session) Primary() *plot.Diagram { return s.primary }

// Secondary returns the T_F(T) diagram, or nil in an unlinked session.
func (s *Session) Secondary() *plot.Diagram { return s.secondary }

// Linked reports whether a secondary diagram is linked.
func (s *Session) Linked() bool { return s.link != nil }

// Diagrams returns the primary diagram followed by the secondary, if any.
func (s *Session) Diagrams() []*plot.Diagram {
	if s.secondary == nil {
		return []*plot.Diagram{s.primary}
	}
	return []*plot.Diagram{s.primary, s.secondary}
}

// Recipes returns the catalogue entries sorted by name.
func (s *Session) Recipes() []recipes.Recipe { return s.recipes.List() }

// SkippedCurve records a curve whose secondary copy was not drawn.
type SkippedCurve struct {
	Name string
	Err  error
}

// DrawResult summarises a Draw call.
type DrawResult struct {
	Recipe    string
	Primary   []string
	Secondary []string
	Skipped   []SkippedCurve
}

// Draw runs a recipe and draws its curves on the primary diagram, mirroring
// each one onto the secondary diagram through the link. Arguments are
// checked and every curve is computed before anything is drawn. A curve
// whose transform fails is drawn on the primary only; the skip is logged
// and reported in the result.
func (s *Session) Draw(name string, opts DrawOptions) (*DrawResult, error) {
	r, ok := s.recipes.Lookup(name)
	if !ok {
		return nil, &UnknownRecipeError{Name: name, Known: s.recipes.Names()}
	}
	if opts.Color != "" {
		if _, ok := models.LookupColor(opts.Color); !ok {
			return nil, &InvalidArgsError{Recipe: name, Arg: opts.Color, Err: ErrUnknownColor}
		}
	}
	if opts.LabelX != nil && (math.IsNaN(*opts.LabelX) || math.IsInf(*opts.LabelX, 0)) {
		return nil, &InvalidArgsError{Recipe: name, Arg: fmt.Sprint(*opts.LabelX), Err: recipes.ErrNotANumber}
	}

	values, err := recipes.ParseArgs(r, opts.Args)
	if err != nil {
		return nil, err
	}
	curves, err := r.Build(s.grid, values)
	if err != nil {
		return nil, err
	}

	res := &DrawResult{Recipe: name}
	for _, c := range curves {
		c.Style = opts.apply(c.Style)
		plotCurve(s.primary, c.Kind, c.X, c.Y, c.Name, c.Style)
		res.Primary = append(res.Primary, c.Name)

		if s.link == nil {
			continue
		}
		if c.Placeholder != "" {
			s.secondary.PlotLine(nil, nil, c.Placeholder, models.Style{})
			res.Secondary = append(res.Secondary, c.Placeholder)
			continue
		}
		y, err := s.link.Forward(c.X, c.Y)
		if err != nil {
			s.log.Warn("secondary diagram skipped", "recipe", name, "curve", c.Name, "error", err)
			res.Skipped = append(res.Skipped, SkippedCurve{Name: c.Name, Err: err})
			continue
		}
		plotCurve(s.secondary, c.Kind, c.X, y, c.Name, c.Style)
		res.Secondary = append(res.Secondary, c.Name)
	}

	s.log.Info("drew recipe", "recipe", name, "curves", len(res.Primary), "skipped", len(res.Skipped))
	return res, s.Redraw()
}

func plotCurve(d *plot.Diagram, kind models.Kind, x, y []float64, name string, style models.Style) {
	if kind == models.KindScatter {
		d.PlotScatter(x, y, name, style)
		return
	}
	d.PlotLine(x, y, name, style)
}

// Redraw flushes every diagram. All diagrams are attempted; the errors are
// joined.
func (s *Session) Redraw() error {
	var errs []error
	for _, d := range s.Diagrams() {
		if err := d.Redraw(); err != nil {
			s.log.Error("redraw failed", "diagram", d.Name(), "error", err)
			errs = append(errs, NewRenderError(d.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// DiagramMatch lists the names a pattern selected on one diagram.
type DiagramMatch struct {
	Diagram string
	Names   []string
}

// BulkResult summarises a show, hide or delete operation.
type BulkResult struct {
	Op      string
	Pattern string
	Matches []DiagramMatch
}

// Count returns the total number of matches across diagrams.
func (r *BulkResult) Count() int {
	n := 0
	for _, m := range r.Matches {
		n += len(m.Names)
	}
	return n
}

// Show makes every artifact matching pattern visible on every diagram.
func (s *Session) Show(pattern string) (*BulkResult, error) {
	return s.bulk("show", pattern, func(d *plot.Diagram, name string) error {
		return d.SetVisibility(name, true)
	})
}

// Hide hides every artifact matching pattern on every diagram.
func (s *Session) Hide(pattern string) (*BulkResult, error) {
	return s.bulk("hide", pattern, func(d *plot.Diagram, name string) error {
		return d.SetVisibility(name, false)
	})
}

// Delete removes every artifact matching pattern from every diagram.
func (s *Session) Delete(pattern string) (*BulkResult, error) {
	return s.bulk("delete", pattern, func(d *plot.Diagram, name string) error {
		d.Delete(name)
		return nil
	})
}

// bulk resolves pattern independently on each diagram, since registries
// may differ, and applies op where a name is found. The pattern is compiled
// before any diagram is touched.
func (s *Session) bulk(op, pattern string, apply func(*plot.Diagram, string) error) (*BulkResult, error) {
	m, err := selector.Compile(pattern)
	if err != nil {
		return nil, err
	}
	res := &BulkResult{Op: op, Pattern: pattern}
	for _, d := range s.Diagrams() {
		names := m.Filter(d.Names())
		for _, name := range names {
			if err := apply(d, name); err != nil {
				return res, err
			}
		}
		res.Matches = append(res.Matches, DiagramMatch{Diagram: d.Name(), Names: names})
	}
	s.log.Info(op, "pattern", pattern, "matches", res.Count())
	return res, s.Redraw()
}

// List returns, per diagram, the artifacts passing filter in registry order.
func (s *Session) List(filter models.ListFilter) []models.DiagramListing {
	out := make([]models.DiagramListing, 0, 2)
	for _, d := range s.Diagrams() {
		listing := models.DiagramListing{Diagram: d.Name(), Entries: []models.ListEntry{}}
		for _, a := range d.Artifacts() {
			if !filter.Accepts(a.Visible) {
				continue
			}
			listing.Entries = append(listing.Entries, models.ListEntry{
				Name:    a.Name,
				Kind:    a.Kind,
				Visible: a.Visible,
				Samples: a.Len(),
			})
		}
		out = append(out, listing)
	}
	return out
}
