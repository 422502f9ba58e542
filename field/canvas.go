package field

import "image/color"

// Canvas is the drawing surface the field renders onto. The host supplies
// an implementation backed by its rendering library; tests supply a
// recorder.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)
	// FillCircle draws a filled circle of radius r centered at (x, y).
	FillCircle(x, y, r float64, c color.Color)
	// StrokeLine draws a line of the given width from (x1, y1) to (x2, y2).
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}
