// Package plot implements diagrams: named artifact registries drawn onto a
// render.Surface over a shared temperature grid.
package plot

import (
	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/render"
)

// LabelHandle is the rendered label of an artifact. A handle with a zero ID
// is an empty placeholder.
type LabelHandle struct {
	ID    render.ElementID
	Label models.Label
}

// Empty reports whether the handle is a placeholder.
func (h LabelHandle) Empty() bool { return h.ID == 0 }

type entry struct {
	artifact models.Artifact
	series   render.ElementID
	label    LabelHandle
}

// Registry maps artifact names to their drawables on one surface. Lines and
// scatters live in separate sets; a name is in at most one of them.
type Registry struct {
	diagram  string
	surface  render.Surface
	lines    map[string]*entry
	scatters map[string]*entry
	order    []string
}

// NewRegistry returns an empty registry drawing on surface. diagram is only
// used in error messages.
func NewRegistry(diagram string, surface render.Surface) *Registry {
	return &Registry{
		diagram:  diagram,
		surface:  surface,
		lines:    make(map[string]*entry),
		scatters: make(map[string]*entry),
	}
}

func (r *Registry) lookup(name string) (*entry, bool) {
	if e, ok := r.lines[name]; ok {
		return e, true
	}
	e, ok := r.scatters[name]
	return e, ok
}

// Upsert replaces any artifact registered under name with a new visible one
// carrying label. The previous drawable and label are detached first.
func (r *Registry) Upsert(name string, kind models.Kind, x, y []float64, style models.Style, label models.Label) models.Artifact {
	r.Remove(name)

	a := models.Artifact{
		Name:    name,
		Kind:    kind,
		X:       append([]float64(nil), x...),
		Y:       append([]float64(nil), y...),
		Style:   style,
		Visible: true,
	}
	e := &entry{
		artifact: a,
		series:   r.surface.AddSeries(kind, name, a.X, a.Y, style),
	}
	if kind == models.KindScatter {
		r.scatters[name] = e
	} else {
		r.lines[name] = e
	}
	r.attach(e, label)
	r.order = append(r.order, name)
	return a
}

// AttachLabel sets the label of a registered artifact, replacing any previous
// one. Unplaced labels are stored as empty placeholders and never reach the
// surface.
func (r *Registry) AttachLabel(name string, label models.Label) error {
	e, ok := r.lookup(name)
	if !ok {
		return &NotFoundError{Diagram: r.diagram, Name: name}
	}
	r.attach(e, label)
	return nil
}

func (r *Registry) attach(e *entry, label models.Label) {
	if !e.label.Empty() {
		r.surface.Remove(e.label.ID)
	}
	e.label = LabelHandle{Label: label}
	if label.Placed {
		e.label.ID = r.surface.AddLabel(label, e.artifact.Style)
		if !e.artifact.Visible {
			r.surface.SetVisible(e.label.ID, false)
		}
	}
}

// Remove detaches and forgets name. Absent names are ignored.
func (r *Registry) Remove(name string) {
	e, ok := r.lookup(name)
	if !ok {
		return
	}
	r.surface.Remove(e.series)
	if !e.label.Empty() {
		r.surface.Remove(e.label.ID)
	}
	delete(r.lines, name)
	delete(r.scatters, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// SetVisible shows or hides an artifact together with its label.
func (r *Registry) SetVisible(name string, visible bool) error {
	e, ok := r.lookup(name)
	if !ok {
		return &NotFoundError{Diagram: r.diagram, Name: name}
	}
	e.artifact.Visible = visible
	r.surface.SetVisible(e.series, visible)
	if !e.label.Empty() {
		r.surface.SetVisible(e.label.ID, visible)
	}
	return nil
}

// Get returns a copy of the artifact registered under name.
func (r *Registry) Get(name string) (models.Artifact, bool) {
	e, ok := r.lookup(name)
	if !ok {
		return models.Artifact{}, false
	}
	return e.artifact, true
}

// Label returns the label handle of name.
func (r *Registry) Label(name string) (LabelHandle, bool) {
	e, ok := r.lookup(name)
	if !ok {
		return LabelHandle{}, false
	}
	return e.label, true
}

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered artifacts.
func (r *Registry) Len() int { return len(r.order) }

// Entries returns copies of all artifacts in insertion order.
func (r *Registry) Entries() []models.Artifact {
	out := make([]models.Artifact, 0, len(r.order))
	for _, name := range r.order {
		e, _ := r.lookup(name)
		out = append(out, e.artifact)
	}
	return out
}
