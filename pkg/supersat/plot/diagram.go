package plot

import (
	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/render"
)

// Diagram is one coordinate space: an artifact registry drawn on a surface
// over the session's temperature grid.
type Diagram struct {
	name     string
	axes     models.Axes
	grid     models.Grid
	surface  render.Surface
	registry *Registry
}

// NewDiagram returns an empty diagram and sets the surface axes.
func NewDiagram(name string, axes models.Axes, grid models.Grid, surface render.Surface) *Diagram {
	surface.SetAxes(axes)
	return &Diagram{
		name:     name,
		axes:     axes,
		grid:     grid,
		surface:  surface,
		registry: NewRegistry(name, surface),
	}
}

// Name returns the short diagram name used in listings and logs.
func (d *Diagram) Name() string { return d.name }

// Title returns the diagram title.
func (d *Diagram) Title() string { return d.axes.Title }

// Axes returns the title and axis captions.
func (d *Diagram) Axes() models.Axes { return d.axes }

// Grid returns the shared temperature grid.
func (d *Diagram) Grid() models.Grid { return d.grid }

// Surface returns the rendering surface.
func (d *Diagram) Surface() render.Surface { return d.surface }

// PlotLine upserts a line artifact and tries to label it inline. Label
// placement is best effort: when it fails the artifact keeps an empty label
// placeholder.
func (d *Diagram) PlotLine(x, y []float64, name string, style models.Style) models.Artifact {
	label := models.Label{Text: style.Label}
	if style.Labeled {
		if placed, ok := placeLabel(x, y, style.Label, style.LabelX); ok {
			label = placed
		}
	}
	return d.registry.Upsert(name, models.KindLine, x, y, style, label)
}

// PlotScatter upserts a scatter artifact. Scatters carry their label in the
// legend only, so the inline label is always a placeholder.
func (d *Diagram) PlotScatter(x, y []float64, name string, style models.Style) models.Artifact {
	return d.registry.Upsert(name, models.KindScatter, x, y, style, models.Label{Text: style.Label})
}

// Redraw flushes the surface.
func (d *Diagram) Redraw() error {
	return d.surface.Flush()
}

// SetVisibility shows or hides name.
func (d *Diagram) SetVisibility(name string, visible bool) error {
	return d.registry.SetVisible(name, visible)
}

// Delete removes name if present.
func (d *Diagram) Delete(name string) {
	d.registry.Remove(name)
}

// Names returns the registered names in insertion order.
func (d *Diagram) Names() []string { return d.registry.Names() }

// Len returns the number of artifacts.
func (d *Diagram) Len() int { return d.registry.Len() }

// Artifact returns a copy of the artifact registered under name.
func (d *Diagram) Artifact(name string) (models.Artifact, bool) {
	return d.registry.Get(name)
}

// Artifacts returns copies of all artifacts in insertion order.
func (d *Diagram) Artifacts() []models.Artifact { return d.registry.Entries() }

// Label returns the label handle of name.
func (d *Diagram) Label(name string) (LabelHandle, bool) {
	return d.registry.Label(name)
}
