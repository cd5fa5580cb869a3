package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admybrand/insights/internal/marketing"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$1,234,568", Currency(1234567.6))
	assert.Equal(t, "$0", Currency(0))
	assert.Equal(t, "-$50", Currency(-50))
	assert.Equal(t, "12,345", Number(12345))
	assert.Equal(t, "4.6%", Percent(4.56))
	assert.Equal(t, "▲ 11.1%", Change(11.11))
	assert.Equal(t, "▼ 3.0%", Change(-3))
}

func TestSummaryCards(t *testing.T) {
	cards := SummaryCards(marketing.SummaryMetrics{
		TotalRevenue:     45000,
		TotalUsers:       1200,
		TotalConversions: 90,
		ConversionRate:   7.5,
	}, marketing.GrowthSet{Revenue: 11.1, Users: -2})
	require.Len(t, cards, 4)
	assert.Equal(t, "$45,000", cards[0].Value)
	assert.True(t, cards[0].Positive)
	assert.False(t, cards[1].Positive)
	assert.Equal(t, "7.5%", cards[3].Value)
}

func TestToCampaignRowsAndLabels(t *testing.T) {
	rows := ToCampaignRows([]marketing.CampaignSummary{{Campaign: marketing.CampaignEmail, Revenue: 2500, Users: 1000, Conversions: 80, CTR: 3.26, Cost: 900}})
	require.Len(t, rows, 1)
	assert.Equal(t, CampaignRow{Campaign: "Email", Revenue: "$2,500", Users: "1,000", Conversions: "80", CTR: "3.3%", Cost: "$900"}, rows[0])

	labels := DayLabels([]marketing.DailyPoint{{Date: marketing.MustDate("2025-01-02")}})
	assert.Equal(t, []string{"Jan 2"}, labels)
}
