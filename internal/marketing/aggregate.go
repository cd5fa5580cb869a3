package marketing

import (
	"fmt"
	"math"
	"slices"
)

// Synthetic efficiency ranges for the campaign table. Upper bounds are exclusive.
const (
	minCTR       = 2.0
	ctrSpan      = 5.0
	minCostShare = 0.2
	costSpan     = 0.3
)

// DefaultTrendDays is the trailing window shown on the trend charts.
const DefaultTrendDays = 14

// Sampler is the random source used for synthetic campaign metrics.
type Sampler interface {
	Float64() float64
}

// AggregateCampaigns reduces records into one row per campaign, in enumeration order.
// Records naming a campaign outside the enumeration are rejected.
func AggregateCampaigns(records []RawRecord, campaigns []Campaign, rnd Sampler) ([]CampaignSummary, error) {
	if rnd == nil {
		rnd = NewSeededRand(0)
	}
	index := make(map[Campaign]int, len(campaigns))
	rows := make([]CampaignSummary, len(campaigns))
	for i, campaign := range campaigns {
		index[campaign] = i
		rows[i].Campaign = campaign
	}
	for _, record := range records {
		i, ok := index[record.Campaign]
		if !ok {
			return nil, fmt.Errorf("%w: unknown campaign %q on %s", ErrInvalidInput, record.Campaign, record.Date)
		}
		rows[i].Revenue += record.Revenue
		rows[i].Users += record.Users
		rows[i].Conversions += record.Conversions
	}
	for i := range rows {
		rows[i].CTR = minCTR + rnd.Float64()*ctrSpan
		rows[i].Cost = int64(math.Floor(float64(rows[i].Revenue) * (minCostShare + rnd.Float64()*costSpan)))
	}
	return rows, nil
}

// Summarize computes whole-dataset totals. Ratios fall back to zero when their divisor is zero.
func Summarize(records []RawRecord) SummaryMetrics {
	var summary SummaryMetrics
	for _, record := range records {
		summary.TotalRevenue += record.Revenue
		summary.TotalUsers += record.Users
		summary.TotalConversions += record.Conversions
	}
	summary.AverageOrderValue = safeDiv(float64(summary.TotalRevenue), float64(summary.TotalConversions))
	summary.ConversionRate = safeDiv(float64(summary.TotalConversions), float64(summary.TotalUsers)) * 100
	return summary
}

// RollupAll groups records by calendar day across campaigns, oldest first.
func RollupAll(records []RawRecord) []DailyPoint {
	byDay := make(map[int64]int)
	points := make([]DailyPoint, 0)
	for _, record := range records {
		key := record.Date.Unix()
		i, ok := byDay[key]
		if !ok {
			i = len(points)
			byDay[key] = i
			points = append(points, DailyPoint{Date: record.Date})
		}
		points[i].Revenue += record.Revenue
		points[i].Users += record.Users
		points[i].Conversions += record.Conversions
	}
	slices.SortFunc(points, func(a, b DailyPoint) int { return a.Date.Compare(b.Date.Time) })
	return points
}

// DailyRollup returns the last days points of RollupAll. A non-positive days
// selects DefaultTrendDays.
func DailyRollup(records []RawRecord, days int) []DailyPoint {
	if days <= 0 {
		days = DefaultTrendDays
	}
	points := RollupAll(records)
	if len(points) > days {
		points = points[len(points)-days:]
	}
	return points
}

// Distribution computes each campaign's share of total conversions.
func Distribution(rows []CampaignSummary) []CampaignShare {
	var total int64
	for _, row := range rows {
		total += row.Conversions
	}
	shares := make([]CampaignShare, 0, len(rows))
	for _, row := range rows {
		shares = append(shares, CampaignShare{
			Campaign:    row.Campaign,
			Conversions: row.Conversions,
			Share:       safeDiv(float64(row.Conversions), float64(total)) * 100,
		})
	}
	return shares
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
