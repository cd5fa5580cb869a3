package svg

import "html/template"

// Renderer exposes the chart functions as methods so it satisfies the
// dashboard's renderer interfaces.
type Renderer struct{}

// Line calls the package-level Line.
func (Renderer) Line(width, height int, series []float64, labels []string, opts LineOpts) (template.HTML, error) {
	return Line(width, height, series, labels, opts)
}

// Lines calls the package-level Lines.
func (Renderer) Lines(width, height int, series []Series, labels []string, opts LineOpts) (template.HTML, error) {
	return Lines(width, height, series, labels, opts)
}

// Bars calls the package-level Bars.
func (Renderer) Bars(width, height int, seriesA, seriesB []float64, labels []string, opts BarOpts) (template.HTML, error) {
	return Bars(width, height, seriesA, seriesB, labels, opts)
}

// Donut calls the package-level Donut.
func (Renderer) Donut(width, height int, slices []Slice, opts DonutOpts) (template.HTML, error) {
	return Donut(width, height, slices, opts)
}
