package document

import "math"

// fitMargin leaves a small border around the rendered page inside its
// surface.
const fitMargin = 0.95

// FitScale fits a page of pageW x pageH into a targetW x targetH
// surface, preserving aspect ratio, at 95% of the limiting dimension.
// It returns the dimensions to render at. Degenerate inputs yield a
// zero size rather than NaN.
func FitScale(pageW, pageH, targetW, targetH float64) (width, height float64) {
	if pageW <= 0 || pageH <= 0 || targetW <= 0 || targetH <= 0 {
		return 0, 0
	}
	scale := math.Min(targetW/pageW, targetH/pageH) * fitMargin
	return pageW * scale, pageH * scale
}
