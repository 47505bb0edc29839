package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
	"github.com/ukaji3/supersat-go/pkg/supersat/render"
)

func newTestDiagram(t *testing.T) (*Diagram, *render.Scene) {
	t.Helper()
	grid, err := models.NewGrid(235, 273, 50)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	scene := render.NewScene()
	return NewDiagram("S_i", models.Axes{Title: "S_i = f(T)"}, grid, scene), scene
}

func ramp(grid models.Grid, offset float64) []float64 {
	y := make([]float64, grid.Len())
	for i := range y {
		y[i] = offset + float64(i)
	}
	return y
}

func TestPlotLineUpsertIdempotence(t *testing.T) {
	d, scene := newTestDiagram(t)
	x := d.Grid().Values()

	first := models.Style{Color: "blue", Label: "first", Labeled: true}
	second := models.Style{Color: "red", Label: "second", Labeled: true}
	d.PlotLine(x, ramp(d.Grid(), 0), "S_w1", first)
	d.PlotLine(x, ramp(d.Grid(), 100), "S_w1", second)

	if d.Len() != 1 {
		t.Fatalf("Expected 1 artifact, got %d", d.Len())
	}
	a, ok := d.Artifact("S_w1")
	if !ok {
		t.Fatalf("S_w1 not registered")
	}
	if a.Y[0] != 100 || a.Style.Color != "red" {
		t.Errorf("Expected second call's samples and style, got y0=%v color=%s", a.Y[0], a.Style.Color)
	}
	// One series and one label on the surface: no orphaned label.
	if scene.Len() != 2 {
		t.Errorf("Expected 2 surface elements, got %d", scene.Len())
	}
	h, _ := d.Label("S_w1")
	if h.Empty() || h.Label.Text != "second" {
		t.Errorf("Expected placed label 'second', got %+v", h)
	}
}

func TestPlotLineRepeatedIdenticalCalls(t *testing.T) {
	d, scene := newTestDiagram(t)
	x := d.Grid().Values()
	y := ramp(d.Grid(), 1)
	for i := 0; i < 5; i++ {
		d.PlotLine(x, y, "a", models.DefaultStyle())
	}
	if d.Len() != 1 || scene.Len() != 1 {
		t.Errorf("Expected 1 artifact and 1 element (no label text), got %d and %d", d.Len(), scene.Len())
	}
}

func TestPlotLineLabelPlacement(t *testing.T) {
	d, scene := newTestDiagram(t)
	x := d.Grid().Values()
	y := ramp(d.Grid(), 0)

	at := 270.0
	d.PlotLine(x, y, "anchored", models.Style{Label: "0.5", Labeled: true, LabelX: &at})
	h, _ := d.Label("anchored")
	if h.Empty() || h.Label.X != 270 {
		t.Errorf("Expected label at x=270, got %+v", h)
	}

	outside := 300.0
	d.PlotLine(x, y, "outside", models.Style{Label: "x", Labeled: true, LabelX: &outside})
	h, ok := d.Label("outside")
	if !ok || !h.Empty() {
		t.Errorf("Expected empty placeholder for anchor outside the curve, got %+v", h)
	}
	if _, ok := d.Artifact("outside"); !ok {
		t.Errorf("artifact must exist even when its label cannot be placed")
	}

	d.PlotLine(nil, nil, "S_w0", models.Style{Label: "0.0", Labeled: true})
	if h, _ := d.Label("S_w0"); !h.Empty() {
		t.Errorf("Expected empty placeholder for empty curve")
	}

	d.PlotLine(x, y, "unlabeled", models.Style{Label: "u", Labeled: false})
	if h, _ := d.Label("unlabeled"); !h.Empty() {
		t.Errorf("Expected empty placeholder for unlabeled style")
	}

	// 4 series + 1 placed label
	if scene.Len() != 5 {
		t.Errorf("Expected 5 surface elements, got %d", scene.Len())
	}
}

func TestPlaceLabel(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 10, 20, math.NaN()}
	mid := 1.5
	tests := []struct {
		name   string
		text   string
		anchor *float64
		ok     bool
		y      float64
	}{
		{"middle default", "a", nil, true, 10},
		{"explicit", "a", &mid, true, 15},
		{"empty text", "", nil, false, 0},
	}

	for _, tt := range tests {
		l, ok := placeLabel(x, y, tt.text, tt.anchor)
		if ok != tt.ok {
			t.Errorf("%s: placed = %v, expected %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && math.Abs(l.Y-tt.y) > 1e-12 {
			t.Errorf("%s: y = %v, expected %v", tt.name, l.Y, tt.y)
		}
	}
}

func TestPlotScatter(t *testing.T) {
	d, scene := newTestDiagram(t)
	d.PlotScatter([]float64{250}, []float64{1.3}, "pt", models.Style{Label: "pt", Labeled: true})
	a, ok := d.Artifact("pt")
	if !ok || a.Kind != models.KindScatter {
		t.Fatalf("Expected scatter artifact, got %+v", a)
	}
	if h, _ := d.Label("pt"); !h.Empty() {
		t.Errorf("scatter must not carry an inline label")
	}
	if scene.Len() != 1 {
		t.Errorf("Expected 1 surface element, got %d", scene.Len())
	}

	// Re-registering a scatter name as a line moves it between sets.
	d.PlotLine(d.Grid().Values(), ramp(d.Grid(), 0), "pt", models.Style{})
	if a, _ := d.Artifact("pt"); a.Kind != models.KindLine || d.Len() != 1 {
		t.Errorf("Expected a single line artifact, got %+v (len %d)", a, d.Len())
	}
}

func TestSetVisibility(t *testing.T) {
	d, scene := newTestDiagram(t)
	d.PlotLine(d.Grid().Values(), ramp(d.Grid(), 0), "a", models.Style{Label: "a", Labeled: true})

	if err := d.SetVisibility("a", false); err != nil {
		t.Fatalf("SetVisibility failed: %v", err)
	}
	if a, _ := d.Artifact("a"); a.Visible {
		t.Errorf("artifact still visible")
	}
	for _, e := range scene.Elements() {
		if e.Visible {
			t.Errorf("surface element %d (%v) still visible", e.ID, e.Type)
		}
	}

	err := d.SetVisibility("missing", true)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected *NotFoundError, got %v", err)
	}
	if nf.Name != "missing" || nf.Diagram != "S_i" {
		t.Errorf("Unexpected error fields %+v", nf)
	}
}

func TestDelete(t *testing.T) {
	d, scene := newTestDiagram(t)
	d.PlotLine(d.Grid().Values(), ramp(d.Grid(), 0), "a", models.Style{Label: "a", Labeled: true})
	d.PlotLine(d.Grid().Values(), ramp(d.Grid(), 0), "b", models.Style{})

	d.Delete("a")
	d.Delete("a")
	d.Delete("never")

	if names := d.Names(); len(names) != 1 || names[0] != "b" {
		t.Errorf("Expected [b], got %v", names)
	}
	if scene.Len() != 1 {
		t.Errorf("Expected the label to be detached with its line, %d elements left", scene.Len())
	}
}

func TestNamesInsertionOrder(t *testing.T) {
	d, _ := newTestDiagram(t)
	for _, n := range []string{"c", "a", "b"} {
		d.PlotLine(nil, nil, n, models.Style{})
	}
	d.PlotLine(nil, nil, "c", models.Style{})

	got := d.Names()
	expected := []string{"a", "b", "c"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Names() = %v, expected %v", got, expected)
		}
	}
}

func TestRegistryAttachLabel(t *testing.T) {
	scene := render.NewScene()
	r := NewRegistry("S_i", scene)

	err := r.AttachLabel("missing", models.Label{Text: "x", Placed: true})
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Name != "missing" {
		t.Fatalf("Expected *NotFoundError for missing, got %v", err)
	}
	if scene.Len() != 0 {
		t.Errorf("Expected no surface elements, got %d", scene.Len())
	}

	r.Upsert("a", models.KindLine, []float64{250, 260}, []float64{1, 2}, models.Style{},
		models.Label{Text: "a", X: 255, Y: 1.5, Placed: true})
	if h, ok := r.Label("a"); !ok || h.Empty() {
		t.Fatalf("Expected placed label on upsert, got %+v", h)
	}
	if scene.Len() != 2 {
		t.Errorf("Expected series and label, got %d elements", scene.Len())
	}

	if err := r.AttachLabel("a", models.Label{Text: "a"}); err != nil {
		t.Fatalf("AttachLabel(a) failed: %v", err)
	}
	if h, _ := r.Label("a"); !h.Empty() || h.Label.Text != "a" {
		t.Errorf("Expected placeholder label, got %+v", h)
	}
	if scene.Len() != 1 {
		t.Errorf("Expected previous label detached, got %d elements", scene.Len())
	}
}

func TestPlotAlwaysLeavesLabelHandle(t *testing.T) {
	tests := []struct {
		name  string
		style models.Style
		line  bool
	}{
		{"line", models.Style{Label: "a", Labeled: true}, true},
		{"unlabeled line", models.Style{Label: "b"}, true},
		{"empty text", models.Style{Labeled: true}, true},
		{"scatter", models.Style{Label: "pt", Labeled: true}, false},
	}

	for _, tt := range tests {
		d, _ := newTestDiagram(t)
		if tt.line {
			d.PlotLine(d.Grid().Values(), ramp(d.Grid(), 0), tt.name, tt.style)
		} else {
			d.PlotScatter([]float64{250}, []float64{1.3}, tt.name, tt.style)
		}
		h, ok := d.Label(tt.name)
		if !ok {
			t.Errorf("%s: expected a label handle", tt.name)
			continue
		}
		if h.Label.Text != tt.style.Label {
			t.Errorf("%s: label text = %q, expected %q", tt.name, h.Label.Text, tt.style.Label)
		}
	}
}
