package svg

// LineOpts customises the line and area chart renderers.
type LineOpts struct {
	Title       string
	Description string
	StrokeColor string
	// FillColor paints the area under a single series. Empty disables the area.
	FillColor string
	AxisColor string
	GridColor string
	Padding   float64
	ShowDots  bool
	TickCount int
}

// Series is one named line in a multi-series chart.
type Series struct {
	Label  string
	Values []float64
	Color  string
}

// BarOpts customises the bar chart renderer.
type BarOpts struct {
	Title        string
	Description  string
	SeriesALabel string
	SeriesBLabel string
	ColorA       string
	ColorB       string
	AxisColor    string
	GridColor    string
	Padding      float64
	TickCount    int
}

// Slice is one segment of a donut chart.
type Slice struct {
	Label string
	Value float64
}

// DonutOpts customises the donut renderer.
type DonutOpts struct {
	Title       string
	Description string
	Colors      []string
	TextColor   string
	// Thickness is the ring width in viewBox units.
	Thickness float64
}

// Defaults for the dashboard charts.
const (
	DefaultWidth     = 720
	DefaultHeight    = 260
	DefaultPadding   = 36.0
	DefaultTicks     = 5
	DefaultThickness = 36.0
)

// Palette is the campaign colour cycle shared by bars, lines and the donut.
var Palette = []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#06b6d4"}
