package marketing

// Baseline fractions standing in for a previous period until real history exists.
const (
	RevenueBaseline        = 0.90
	UsersBaseline          = 0.85
	ConversionsBaseline    = 0.95
	ConversionRateBaseline = 0.88
)

// Growth returns the percentage change of current against baseline, or 0 when
// baseline is 0.
func Growth(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}

// EstimateGrowth derives card growth figures from fixed baseline fractions.
func EstimateGrowth(summary SummaryMetrics) GrowthSet {
	revenue := float64(summary.TotalRevenue)
	users := float64(summary.TotalUsers)
	conversions := float64(summary.TotalConversions)
	return GrowthSet{
		Revenue:        Growth(revenue, revenue*RevenueBaseline),
		Users:          Growth(users, users*UsersBaseline),
		Conversions:    Growth(conversions, conversions*ConversionsBaseline),
		ConversionRate: Growth(summary.ConversionRate, summary.ConversionRate*ConversionRateBaseline),
	}
}
