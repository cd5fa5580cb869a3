package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Line renders a single series as a line, with a filled area when opts.FillColor is set.
func Line(width, height int, series []float64, labels []string, opts LineOpts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: series required")
	}
	if len(series) != len(labels) {
		return "", fmt.Errorf("svg: labels length must match series")
	}
	minVal, maxVal := bounds(series)
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor, minVal, maxVal)
	if err != nil {
		return "", err
	}
	stroke := fallback(opts.StrokeColor, Palette[0])

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "line", "Line chart", "Trend data")
	f.grid(&b)

	path := linePath(f, series)
	if opts.FillColor != "" {
		n := len(series)
		area := fmt.Sprintf("%s L%.2f %.2f L%.2f %.2f Z", path, f.x(n-1, n), f.bottom(), f.x(0, n), f.bottom())
		fmt.Fprintf(&b, "<path d=\"%s\" fill=\"%s\" stroke=\"none\" aria-hidden=\"true\"></path>", area, opts.FillColor)
	}
	writeStroke(&b, path, stroke)
	if opts.ShowDots {
		writeDots(&b, f, series, stroke)
	}
	writeLabels(&b, f, labels)
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// Lines renders several series sharing one y-axis, with a legend.
func Lines(width, height int, series []Series, labels []string, opts LineOpts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: at least one series required")
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("svg: labels required")
	}
	values := make([][]float64, 0, len(series))
	for _, s := range series {
		if len(s.Values) != len(labels) {
			return "", fmt.Errorf("svg: series %q length must match labels", s.Label)
		}
		values = append(values, s.Values)
	}
	minVal, maxVal := bounds(values...)
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor, minVal, maxVal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "lines", "Line chart", "Comparison of series")
	f.grid(&b)
	legend := make([]legendEntry, 0, len(series))
	for i, s := range series {
		color := fallback(s.Color, colorAt(nil, i))
		writeStroke(&b, linePath(f, s.Values), color)
		if opts.ShowDots {
			writeDots(&b, f, s.Values, color)
		}
		legend = append(legend, legendEntry{label: fallback(s.Label, fmt.Sprintf("Series %d", i+1)), color: color})
	}
	writeLabels(&b, f, labels)
	f.legend(&b, legend)
	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func linePath(f frame, values []float64) string {
	var path strings.Builder
	for i, value := range values {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			path.WriteByte(' ')
		}
		fmt.Fprintf(&path, "%s%.2f %.2f", cmd, f.x(i, len(values)), f.y(value))
	}
	return path.String()
}

func writeStroke(b *strings.Builder, path, color string) {
	fmt.Fprintf(b, "<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\" stroke-linejoin=\"round\" stroke-linecap=\"round\"></path>", path, color)
}

func writeDots(b *strings.Builder, f frame, values []float64, color string) {
	for i, value := range values {
		fmt.Fprintf(b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"3\" fill=\"%s\"></circle>", f.x(i, len(values)), f.y(value), color)
	}
}

// writeLabels thins x-axis labels so that at most about ten are drawn.
func writeLabels(b *strings.Builder, f frame, labels []string) {
	every := 1
	if n := len(labels); n > 10 {
		every = (n + 9) / 10
	}
	for i, label := range labels {
		if i%every != 0 && i != len(labels)-1 {
			continue
		}
		f.label(b, f.x(i, len(labels)), label)
	}
}
