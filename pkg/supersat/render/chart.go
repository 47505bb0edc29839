package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
)

const (
	DefaultWidth  = 900
	DefaultHeight = 600
)

// ChartSurface renders a diagram to a PNG file on every Flush.
type ChartSurface struct {
	*Scene
	path   string
	width  int
	height int
}

// NewChartSurface returns a surface writing to path. Non-positive sizes fall
// back to the defaults.
func NewChartSurface(path string, width, height int) *ChartSurface {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &ChartSurface{Scene: NewScene(), path: path, width: width, height: height}
}

// Path returns the output file.
func (c *ChartSurface) Path() string { return c.path }

// Flush renders the visible elements and rewrites the PNG file.
func (c *ChartSurface) Flush() error {
	c.Scene.Flush()
	data, err := c.renderPNG()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	return nil
}

func (c *ChartSurface) renderPNG() ([]byte, error) {
	elems, labels := c.drawable()
	// go-chart refuses to render without at least one non-empty series.
	if len(elems) == 0 {
		return encodePNG(blank(c.width, c.height))
	}

	series := make([]chart.Series, 0, len(elems)+1)
	for _, e := range elems {
		series = append(series, chart.ContinuousSeries{
			Name:    legendName(e),
			XValues: e.X,
			YValues: e.Y,
			Style:   seriesStyle(e.Kind, e.Style),
		})
	}
	if len(labels) > 0 {
		annotations := make([]chart.Value2, 0, len(labels))
		for _, l := range labels {
			annotations = append(annotations, chart.Value2{
				XValue: l.Label.X,
				YValue: l.Label.Y,
				Label:  l.Label.Text,
			})
		}
		series = append(series, chart.AnnotationSeries{Annotations: annotations})
	}

	xr, yr := dataRanges(elems, labels)
	axes := c.Axes()
	ch := chart.Chart{
		Title:      axes.Title,
		Width:      c.width,
		Height:     c.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Name: axes.XLabel, Range: xr},
		YAxis:      chart.YAxis{Name: axes.YLabel, Range: yr},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", axes.Title, err)
	}
	return buf.Bytes(), nil
}

// dataRanges returns padded axis ranges covering every drawn point. A
// degenerate range (a single scatter point) is widened to ±1.
func dataRanges(elems, labels []Element) (*chart.ContinuousRange, *chart.ContinuousRange) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	grow := func(x, y float64) {
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	for _, e := range elems {
		for i := range e.X {
			grow(e.X[i], e.Y[i])
		}
	}
	for _, l := range labels {
		grow(l.Label.X, l.Label.Y)
	}
	return paddedRange(xmin, xmax), paddedRange(ymin, ymax)
}

func paddedRange(min, max float64) *chart.ContinuousRange {
	if max-min <= 0 {
		return &chart.ContinuousRange{Min: min - 1, Max: max + 1}
	}
	pad := (max - min) * 0.05
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}

func legendName(e Element) string {
	if e.Style.Label != "" {
		return e.Style.Label
	}
	return e.Name
}

func drawingColor(c models.RGB) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// seriesStyle maps an artifact style to go-chart. Scatters render points
// only (no connecting line).
func seriesStyle(kind models.Kind, s models.Style) chart.Style {
	col := drawingColor(s.RGB())
	if kind == models.KindScatter {
		return chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
			DotColor:    col,
		}
	}
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: s.StrokeWidth(),
	}
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
