package models

// Kind is the drawable type of an artifact.
type Kind string

const (
	// KindLine is a polyline through every sample.
	KindLine Kind = "line"
	// KindScatter is a set of unconnected markers.
	KindScatter Kind = "scatter"
)

// Artifact is a named drawable on one diagram.
type Artifact struct {
	// Name is the registry key, shared across linked diagrams.
	Name string `json:"name"`
	// Kind is line or scatter.
	Kind Kind `json:"kind"`
	// X holds the sample abscissae (temperatures in K).
	X []float64 `json:"x"`
	// Y holds the sample ordinates in the diagram's coordinate space.
	Y []float64 `json:"y"`
	// Style is the visual style the artifact was drawn with.
	Style Style `json:"style"`
	// Visible reports whether the artifact (and its label) is shown.
	Visible bool `json:"visible"`
}

// Len returns the number of samples.
func (a Artifact) Len() int {
	return len(a.Y)
}

// Empty reports whether the artifact is a zero-length placeholder.
func (a Artifact) Empty() bool {
	return len(a.X) == 0 || len(a.Y) == 0
}

// Label is an inline text label placed along a line artifact. A label that
// could not be placed is kept as a placeholder with Placed set to false.
type Label struct {
	// Text is the label content.
	Text string `json:"text"`
	// X is the abscissa of the anchor point.
	X float64 `json:"x"`
	// Y is the ordinate of the anchor point.
	Y float64 `json:"y"`
	// Placed is false for empty placeholders.
	Placed bool `json:"placed"`
}

// Axes holds the title and axis captions of a diagram.
type Axes struct {
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
}
