package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Bars renders a bar chart. With both series present bars are grouped in pairs;
// either series may be empty for a single-series chart.
func Bars(width, height int, seriesA, seriesB []float64, labels []string, opts BarOpts) (template.HTML, error) {
	if len(seriesA) == 0 && len(seriesB) == 0 {
		return "", fmt.Errorf("svg: at least one series required")
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("svg: labels required")
	}
	if len(seriesA) > 0 && len(seriesA) != len(labels) {
		return "", fmt.Errorf("svg: seriesA length must match labels")
	}
	if len(seriesB) > 0 && len(seriesB) != len(labels) {
		return "", fmt.Errorf("svg: seriesB length must match labels")
	}
	minVal, maxVal := bounds(seriesA, seriesB)
	f, err := newFrame(width, height, opts.Padding, opts.TickCount, opts.AxisColor, opts.GridColor, minVal, maxVal)
	if err != nil {
		return "", err
	}

	colorA := fallback(opts.ColorA, Palette[0])
	colorB := fallback(opts.ColorB, Palette[1])
	labelA := fallback(opts.SeriesALabel, "Series A")
	labelB := fallback(opts.SeriesBLabel, "Series B")

	var b strings.Builder
	f.open(&b, opts.Title, opts.Description, "bar", "Bar chart", "Bar comparison")
	f.grid(&b)

	active := make([]barSeries, 0, 2)
	if len(seriesA) > 0 {
		active = append(active, barSeries{values: seriesA, color: colorA, label: labelA})
	}
	if len(seriesB) > 0 {
		active = append(active, barSeries{values: seriesB, color: colorB, label: labelB})
	}

	groupWidth := f.chartWidth / float64(len(labels))
	barWidth := groupWidth * 0.7 / float64(len(active))
	inset := groupWidth * 0.15
	for i, label := range labels {
		baseX := f.padding + float64(i)*groupWidth
		for j, s := range active {
			y, h := barPosition(f, s.values[i])
			fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" rx=\"3\" fill=\"%s\" aria-label=\"%s %s\"></rect>",
				baseX+inset+float64(j)*barWidth, y, barWidth, h, s.color,
				template.HTMLEscapeString(s.label), template.HTMLEscapeString(label))
		}
		f.label(&b, baseX+groupWidth/2, label)
	}

	if len(active) > 1 {
		legend := make([]legendEntry, 0, len(active))
		for _, s := range active {
			legend = append(legend, legendEntry{label: s.label, color: s.color})
		}
		f.legend(&b, legend)
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

type barSeries struct {
	values []float64
	color  string
	label  string
}

// barPosition clamps a bar to the plot area, growing up from zero for positive values.
func barPosition(f frame, value float64) (float64, float64) {
	zero := f.y(0)
	height := math.Abs(value * f.scale)
	y := zero
	if value >= 0 {
		y = zero - height
		if y < f.padding {
			height -= f.padding - y
			y = f.padding
		}
	} else if y+height > f.bottom() {
		height = f.bottom() - y
	}
	return y, math.Max(height, 0)
}
