package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
)

const (
	curvesSheet = "curves"
	labelsSheet = "labels"
)

// markerSymbols maps artifact kinds to excelize marker symbols.
var markerSymbols = map[models.Kind]string{
	models.KindLine:    "none",
	models.KindScatter: "x",
}

// WorkbookSurface rewrites an xlsx workbook on every Flush: one column pair
// per visible series on the curves sheet, a native scatter chart over them,
// and the placed labels on the labels sheet. The workbook is display output
// only and is never read back.
type WorkbookSurface struct {
	*Scene
	path string
}

// NewWorkbookSurface returns a surface writing to path.
func NewWorkbookSurface(path string) *WorkbookSurface {
	return &WorkbookSurface{Scene: NewScene(), path: path}
}

// Path returns the output file.
func (w *WorkbookSurface) Path() string { return w.path }

// Flush rebuilds the workbook from the visible elements.
func (w *WorkbookSurface) Flush() error {
	w.Scene.Flush()
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", curvesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(labelsSheet); err != nil {
		return err
	}

	elems, labels := w.drawable()
	series := make([]excelize.ChartSeries, 0, len(elems))
	for i, e := range elems {
		s, err := writeSeriesColumns(f, i, e)
		if err != nil {
			return fmt.Errorf("series %q: %w", e.Name, err)
		}
		series = append(series, s)
	}
	if err := writeLabels(f, labels); err != nil {
		return err
	}

	if len(series) > 0 {
		axes := w.Axes()
		anchor, err := excelize.CoordinatesToCellName(2*len(elems)+2, 2)
		if err != nil {
			return err
		}
		err = f.AddChart(curvesSheet, anchor, &excelize.Chart{
			Type:      excelize.Scatter,
			Series:    series,
			Title:     []excelize.RichTextRun{{Text: axes.Title}},
			Legend:    excelize.ChartLegend{Position: "right"},
			Dimension: excelize.ChartDimension{Width: 720, Height: 480},
			XAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: axes.XLabel}}},
			YAxis:     excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: axes.YLabel}}},
		})
		if err != nil {
			return fmt.Errorf("add chart: %w", err)
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}

// writeSeriesColumns writes series i to columns 2i+1 (x) and 2i+2 (y) with
// a header row, and returns the chart series referencing them.
func writeSeriesColumns(f *excelize.File, i int, e Element) (excelize.ChartSeries, error) {
	xCol, err := excelize.ColumnNumberToName(2*i + 1)
	if err != nil {
		return excelize.ChartSeries{}, err
	}
	yCol, err := excelize.ColumnNumberToName(2*i + 2)
	if err != nil {
		return excelize.ChartSeries{}, err
	}

	if err := f.SetCellValue(curvesSheet, xCol+"1", "T ("+e.Name+")"); err != nil {
		return excelize.ChartSeries{}, err
	}
	if err := f.SetCellValue(curvesSheet, yCol+"1", legendName(e)); err != nil {
		return excelize.ChartSeries{}, err
	}
	for row := range e.X {
		if err := f.SetCellValue(curvesSheet, fmt.Sprintf("%s%d", xCol, row+2), e.X[row]); err != nil {
			return excelize.ChartSeries{}, err
		}
		if err := f.SetCellValue(curvesSheet, fmt.Sprintf("%s%d", yCol, row+2), e.Y[row]); err != nil {
			return excelize.ChartSeries{}, err
		}
	}

	last := len(e.X) + 1
	s := excelize.ChartSeries{
		Name:       fmt.Sprintf("%s!$%s$1", curvesSheet, yCol),
		Categories: fmt.Sprintf("%s!$%s$2:$%s$%d", curvesSheet, xCol, xCol, last),
		Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", curvesSheet, yCol, yCol, last),
		Marker:     excelize.ChartMarker{Symbol: markerSymbols[e.Kind], Size: 7},
	}
	if e.Kind == models.KindScatter {
		s.Line = excelize.ChartLine{Type: excelize.ChartLineNone}
	} else {
		s.Line = excelize.ChartLine{Width: e.Style.StrokeWidth()}
	}
	return s, nil
}

func writeLabels(f *excelize.File, labels []Element) error {
	if err := f.SetSheetRow(labelsSheet, "A1", &[]interface{}{"text", "x", "y", "color"}); err != nil {
		return err
	}
	for i, l := range labels {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{l.Label.Text, l.Label.X, l.Label.Y, l.Style.RGB().Hex()}
		if err := f.SetSheetRow(labelsSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
