package render

import (
	"github.com/ukaji3/supersat-go/pkg/supersat/models"
)

// ElementType distinguishes series from labels.
type ElementType int

const (
	ElementSeries ElementType = iota
	ElementLabel
)

// Element is one retained drawable.
type Element struct {
	ID      ElementID
	Type    ElementType
	Kind    models.Kind
	Name    string
	X       []float64
	Y       []float64
	Label   models.Label
	Style   models.Style
	Visible bool
}

// Scene is an in-memory Surface. The file-backed surfaces embed it and only
// add a Flush that draws the visible elements.
type Scene struct {
	axes     models.Axes
	elements map[ElementID]*Element
	order    []ElementID
	nextID   ElementID
	flushes  int
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{elements: make(map[ElementID]*Element)}
}

func (s *Scene) SetAxes(axes models.Axes) { s.axes = axes }

// Axes returns the current axes.
func (s *Scene) Axes() models.Axes { return s.axes }

func (s *Scene) add(e *Element) ElementID {
	s.nextID++
	e.ID = s.nextID
	e.Visible = true
	s.elements[e.ID] = e
	s.order = append(s.order, e.ID)
	return e.ID
}

func (s *Scene) AddSeries(kind models.Kind, name string, x, y []float64, style models.Style) ElementID {
	return s.add(&Element{
		Type:  ElementSeries,
		Kind:  kind,
		Name:  name,
		X:     append([]float64(nil), x...),
		Y:     append([]float64(nil), y...),
		Style: style,
	})
}

func (s *Scene) AddLabel(label models.Label, style models.Style) ElementID {
	return s.add(&Element{
		Type:  ElementLabel,
		Name:  label.Text,
		Label: label,
		Style: style,
	})
}

func (s *Scene) Remove(id ElementID) {
	if _, ok := s.elements[id]; !ok {
		return
	}
	delete(s.elements, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Scene) SetVisible(id ElementID, visible bool) {
	if e, ok := s.elements[id]; ok {
		e.Visible = visible
	}
}

// Flush only counts calls.
func (s *Scene) Flush() error {
	s.flushes++
	return nil
}

// Flushes returns the number of Flush calls.
func (s *Scene) Flushes() int { return s.flushes }

// Len returns the number of retained elements, hidden ones included.
func (s *Scene) Len() int { return len(s.elements) }

// Element returns a retained element by ID.
func (s *Scene) Element(id ElementID) (Element, bool) {
	e, ok := s.elements[id]
	if !ok {
		return Element{}, false
	}
	return *e, true
}

// Elements returns all retained elements in insertion order.
func (s *Scene) Elements() []Element {
	out := make([]Element, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.elements[id])
	}
	return out
}

// drawable returns the visible, non-empty series and the visible labels.
func (s *Scene) drawable() (series []Element, labels []Element) {
	for _, id := range s.order {
		e := s.elements[id]
		if !e.Visible {
			continue
		}
		switch e.Type {
		case ElementSeries:
			if xs, ys := finitePoints(e.X, e.Y); len(xs) > 0 {
				c := *e
				c.X, c.Y = xs, ys
				series = append(series, c)
			}
		case ElementLabel:
			labels = append(labels, *e)
		}
	}
	return series, labels
}
