package plot

import (
	"math"

	"github.com/ukaji3/supersat-go/pkg/supersat/models"
)

// placeLabel finds the anchor point of an inline label on the polyline
// (x, y). With a nil anchor the label goes to the middle of the finite
// x-range. It reports false when the label cannot be placed: empty text or
// curve, an anchor outside the curve, or no finite segment under the anchor.
func placeLabel(x, y []float64, text string, anchor *float64) (models.Label, bool) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	if text == "" || n == 0 {
		return models.Label{}, false
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		if finite(x[i]) && finite(y[i]) {
			lo, hi = math.Min(lo, x[i]), math.Max(hi, x[i])
		}
	}
	if lo > hi {
		return models.Label{}, false
	}

	at := (lo + hi) / 2
	if anchor != nil {
		at = *anchor
	}
	if !(at >= lo && at <= hi) {
		return models.Label{}, false
	}

	for i := 0; i < n; i++ {
		if x[i] == at && finite(y[i]) {
			return models.Label{Text: text, X: at, Y: y[i], Placed: true}, true
		}
	}
	for i := 0; i+1 < n; i++ {
		x0, x1, y0, y1 := x[i], x[i+1], y[i], y[i+1]
		if !finite(x0) || !finite(x1) || !finite(y0) || !finite(y1) || x0 == x1 {
			continue
		}
		if (at-x0)*(at-x1) > 0 {
			continue
		}
		v := y0 + (y1-y0)*(at-x0)/(x1-x0)
		if !finite(v) {
			continue
		}
		return models.Label{Text: text, X: at, Y: v, Placed: true}, true
	}
	return models.Label{}, false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
