package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Donut renders proportional ring segments with a legend beside the ring.
// A zero total draws an empty ring.
func Donut(width, height int, slices []Slice, opts DonutOpts) (template.HTML, error) {
	if len(slices) == 0 {
		return "", fmt.Errorf("svg: slices required")
	}
	if width <= 0 {
		width = DefaultWidth / 2
	}
	if height <= 0 {
		height = DefaultHeight
	}
	thickness := opts.Thickness
	if thickness <= 0 {
		thickness = DefaultThickness
	}
	total := 0.0
	for _, s := range slices {
		if s.Value < 0 {
			return "", fmt.Errorf("svg: slice %q must not be negative", s.Label)
		}
		total += s.Value
	}
	textColor := fallback(opts.TextColor, "#64748b")

	cx := float64(height) / 2
	cy := float64(height) / 2
	outer := float64(height)/2 - 8
	inner := outer - thickness
	if inner <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}

	titleID := makeID(opts.Title, "donut-title")
	descID := makeID(opts.Title, "donut-desc")
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\" aria-labelledby=\"%s %s\">", width, height, titleID, descID)
	fmt.Fprintf(&b, "<title id=\"%s\">%s</title>", titleID, template.HTMLEscapeString(fallback(opts.Title, "Donut chart")))
	fmt.Fprintf(&b, "<desc id=\"%s\">%s</desc>", descID, template.HTMLEscapeString(fallback(opts.Description, "Share of total")))

	if total <= 0 {
		fmt.Fprintf(&b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"none\" stroke=\"#e2e8f0\" stroke-width=\"%.2f\"></circle>", cx, cy, (outer+inner)/2, thickness)
	}

	start := -math.Pi / 2
	for i, s := range slices {
		if total <= 0 || s.Value == 0 {
			continue
		}
		color := colorAt(opts.Colors, i)
		fraction := s.Value / total
		if almostEqual(fraction, 1) {
			fmt.Fprintf(&b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"none\" stroke=\"%s\" stroke-width=\"%.2f\" aria-label=\"%s\"></circle>",
				cx, cy, (outer+inner)/2, color, thickness, template.HTMLEscapeString(s.Label))
			break
		}
		end := start + fraction*2*math.Pi
		fmt.Fprintf(&b, "<path d=\"%s\" fill=\"%s\" aria-label=\"%s\"></path>", arcPath(cx, cy, outer, inner, start, end), color, template.HTMLEscapeString(s.Label))
		start = end
	}

	legendX := float64(height) + 12
	for i, s := range slices {
		y := 24 + float64(i)*20
		share := 0.0
		if total > 0 {
			share = s.Value / total * 100
		}
		fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"10\" height=\"10\" rx=\"2\" fill=\"%s\"></rect>", legendX, y-9, colorAt(opts.Colors, i))
		fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" fill=\"%s\" font-size=\"11\" text-anchor=\"start\">%s %.1f%%</text>", legendX+16, y, textColor, template.HTMLEscapeString(s.Label), share)
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func arcPath(cx, cy, outer, inner, start, end float64) string {
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	point := func(r, angle float64) (float64, float64) {
		return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
	}
	x1, y1 := point(outer, start)
	x2, y2 := point(outer, end)
	x3, y3 := point(inner, end)
	x4, y4 := point(inner, start)
	return fmt.Sprintf("M%.2f %.2f A%.2f %.2f 0 %d 1 %.2f %.2f L%.2f %.2f A%.2f %.2f 0 %d 0 %.2f %.2f Z",
		x1, y1, outer, outer, large, x2, y2, x3, y3, inner, inner, large, x4, y4)
}
