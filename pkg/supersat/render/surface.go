// Package render provides the drawing surfaces diagrams render onto.
//
// A Surface is retained-mode: diagrams add, remove and toggle elements, and
// nothing reaches the display until Flush is called.
package render

import (
	"fmt"
	"path/filepath"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
)

// ElementID identifies an element on a surface. The zero ID is never issued.
type ElementID uint64

// Surface is the drawing backend of one diagram.
type Surface interface {
	// SetAxes sets the title and axis captions.
	SetAxes(axes models.Axes)
	// AddSeries adds a line or scatter series and returns its handle.
	AddSeries(kind models.Kind, name string, x, y []float64, style models.Style) ElementID
	// AddLabel adds an inline label.
	AddLabel(label models.Label, style models.Style) ElementID
	// Remove detaches an element. Unknown IDs are ignored.
	Remove(id ElementID)
	// SetVisible shows or hides an element. Unknown IDs are ignored.
	SetVisible(id ElementID, visible bool)
	// Flush pushes the current state to the display.
	Flush() error
}

// Backend names a surface implementation.
type Backend string

const (
	// BackendPNG renders each diagram to a PNG image with go-chart.
	BackendPNG Backend = "png"
	// BackendXLSX renders each diagram to a workbook with a native chart.
	BackendXLSX Backend = "xlsx"
	// BackendNone keeps everything in memory.
	BackendNone Backend = "none"
)

// ParseBackend parses png, xlsx or none.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendPNG, BackendXLSX, BackendNone:
		return Backend(s), nil
	default:
		return "", fmt.Errorf("invalid backend: %s (must be png, xlsx, or none)", s)
	}
}

// Options configures surface construction.
type Options struct {
	Backend   Backend
	OutputDir string
	Width     int
	Height    int
}

// New returns a surface for the diagram identified by slug. File backends
// write to OutputDir/<slug>.<ext>.
func New(slug string, opts Options) (Surface, error) {
	switch opts.Backend {
	case BackendPNG:
		return NewChartSurface(filepath.Join(opts.OutputDir, slug+".png"), opts.Width, opts.Height), nil
	case BackendXLSX:
		return NewWorkbookSurface(filepath.Join(opts.OutputDir, slug+".xlsx")), nil
	case BackendNone, "":
		return NewScene(), nil
	default:
		return nil, fmt.Errorf("invalid backend: %s", opts.Backend)
	}
}
