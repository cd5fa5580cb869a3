package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/admybrand/insights/internal/marketing"
)

// WriteCampaignsCSV serialises campaign table rows. Campaign names are the only text column.
func WriteCampaignsCSV(w io.Writer, rows []marketing.CampaignSummary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"campaign", "revenue", "users", "conversions", "ctr", "cost"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write([]string{
			string(row.Campaign),
			formatInt(row.Revenue),
			formatInt(row.Users),
			formatInt(row.Conversions),
			formatFloat(row.CTR),
			formatInt(row.Cost),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteDailyCSV emits the daily rollup, oldest day first.
func WriteDailyCSV(w io.Writer, points []marketing.DailyPoint) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "revenue", "users", "conversions"}); err != nil {
		return err
	}
	for _, point := range points {
		if err := writer.Write([]string{
			point.Date.String(),
			formatInt(point.Revenue),
			formatInt(point.Users),
			formatInt(point.Conversions),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummaryCSV prints the headline metrics with their growth estimates.
func WriteSummaryCSV(w io.Writer, summary marketing.SummaryMetrics, growth marketing.GrowthSet) error {
	writer := csv.NewWriter(w)
	records := [][]string{
		{"metric", "value", "growth"},
		{"totalRevenue", formatInt(summary.TotalRevenue), formatFloat(growth.Revenue)},
		{"totalUsers", formatInt(summary.TotalUsers), formatFloat(growth.Users)},
		{"totalConversions", formatInt(summary.TotalConversions), formatFloat(growth.Conversions)},
		{"averageOrderValue", formatFloat(summary.AverageOrderValue), ""},
		{"conversionRate", formatFloat(summary.ConversionRate), formatFloat(growth.ConversionRate)},
	}
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
