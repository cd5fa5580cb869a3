package ui

import (
	"html/template"
	"time"

	"github.com/admybrand/insights/internal/marketing"
	"github.com/admybrand/insights/internal/marketing/svg"
	"github.com/admybrand/insights/internal/shared"
)

// MetricCard is one headline figure with its growth badge.
type MetricCard struct {
	Title    string
	Value    string
	Change   string
	Positive bool
	Icon     string
}

// CampaignRow is a formatted campaign table row.
type CampaignRow struct {
	Campaign    string
	Revenue     string
	Users       string
	Conversions string
	CTR         string
	Cost        string
}

// SortLink describes a clickable table header.
type SortLink struct {
	Label  string
	Field  string
	Active bool
	Dir    string
	Href   string
}

// DashboardViewModel combines all dashboard data for rendering.
type DashboardViewModel struct {
	DatasetID       string
	Theme           string
	Live            bool
	RefreshSeconds  int
	GeneratedAt     time.Time
	LastUpdated     time.Time
	Cards           []MetricCard
	Summary         marketing.SummaryMetrics
	Growth          marketing.GrowthSet
	Daily           []marketing.DailyPoint
	Distribution    []marketing.CampaignShare
	Query           marketing.CampaignQuery
	Rows            []CampaignRow
	Sort            []SortLink
	Pagination      shared.Pagination
	PrevHref        string
	NextHref        string
	ExportHref      string
	RevenueSVG      template.HTML
	CampaignSVG     template.HTML
	DistributionSVG template.HTML
	EngagementSVG   template.HTML
}

// LineRenderer abstracts SVG line chart rendering for the dashboard.
type LineRenderer interface {
	Line(width, height int, series []float64, labels []string, opts svg.LineOpts) (template.HTML, error)
	Lines(width, height int, series []svg.Series, labels []string, opts svg.LineOpts) (template.HTML, error)
}

// BarRenderer abstracts SVG bar chart rendering for the dashboard.
type BarRenderer interface {
	Bars(width, height int, seriesA, seriesB []float64, labels []string, opts svg.BarOpts) (template.HTML, error)
}

// DonutRenderer abstracts SVG donut rendering for the dashboard.
type DonutRenderer interface {
	Donut(width, height int, slices []svg.Slice, opts svg.DonutOpts) (template.HTML, error)
}

// SummaryCards builds the four headline cards in display order.
func SummaryCards(summary marketing.SummaryMetrics, growth marketing.GrowthSet) []MetricCard {
	return []MetricCard{
		card("Total Revenue", Currency(float64(summary.TotalRevenue)), growth.Revenue, "revenue"),
		card("Total Users", Number(summary.TotalUsers), growth.Users, "users"),
		card("Conversions", Number(summary.TotalConversions), growth.Conversions, "conversions"),
		card("Conversion Rate", Percent(summary.ConversionRate), growth.ConversionRate, "rate"),
	}
}

func card(title, value string, change float64, icon string) MetricCard {
	return MetricCard{Title: title, Value: value, Change: Change(change), Positive: change >= 0, Icon: icon}
}

// ToCampaignRows formats campaign summaries for the table.
func ToCampaignRows(rows []marketing.CampaignSummary) []CampaignRow {
	out := make([]CampaignRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, CampaignRow{
			Campaign:    string(row.Campaign),
			Revenue:     Currency(float64(row.Revenue)),
			Users:       Number(row.Users),
			Conversions: Number(row.Conversions),
			CTR:         Percent(row.CTR),
			Cost:        Currency(float64(row.Cost)),
		})
	}
	return out
}

// DayLabels renders chart axis labels such as "Jan 2".
func DayLabels(points []marketing.DailyPoint) []string {
	labels := make([]string, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Date.Format("Jan 2"))
	}
	return labels
}
