package marketing

import (
	"errors"
	"time"

	"github.com/goccy/go-json"
)

// ErrInvalidInput marks records or queries the aggregators refuse to process.
var ErrInvalidInput = errors.New("marketing: invalid input")

const dateLayout = "2006-01-02"

// Campaign names a marketing channel used as the grouping key.
type Campaign string

// Channels tracked by the dashboard.
const (
	CampaignSearch  Campaign = "Search"
	CampaignSocial  Campaign = "Social"
	CampaignDisplay Campaign = "Display"
	CampaignEmail   Campaign = "Email"
)

// DefaultCampaigns is the fixed enumeration in display order.
var DefaultCampaigns = []Campaign{CampaignSearch, CampaignSocial, CampaignDisplay, CampaignEmail}

// Date is a calendar day without a time component.
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// MustDate is ParseDate for fixtures; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String formats the day as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON emits the ISO calendar day.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the ISO calendar day.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// RawRecord is one observation for one campaign on one day.
type RawRecord struct {
	Date        Date     `json:"date"`
	Campaign    Campaign `json:"campaign"`
	Users       int64    `json:"users"`
	Conversions int64    `json:"conversions"`
	Revenue     int64    `json:"revenue"`
}

// CampaignSummary is the per-campaign rollup rendered in the campaign table.
type CampaignSummary struct {
	Campaign    Campaign `json:"campaign"`
	Revenue     int64    `json:"revenue"`
	Users       int64    `json:"users"`
	Conversions int64    `json:"conversions"`
	CTR         float64  `json:"ctr"`
	Cost        int64    `json:"cost"`
}

// SummaryMetrics holds whole-dataset totals and derived ratios.
type SummaryMetrics struct {
	TotalRevenue      int64   `json:"totalRevenue"`
	TotalUsers        int64   `json:"totalUsers"`
	TotalConversions  int64   `json:"totalConversions"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	ConversionRate    float64 `json:"conversionRate"`
}

// DailyPoint sums all campaigns for one calendar day.
type DailyPoint struct {
	Date        Date  `json:"date"`
	Revenue     int64 `json:"revenue"`
	Users       int64 `json:"users"`
	Conversions int64 `json:"conversions"`
}

// GrowthSet carries one growth percentage per tracked summary scalar.
type GrowthSet struct {
	Revenue        float64 `json:"revenue"`
	Users          float64 `json:"users"`
	Conversions    float64 `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
}

// CampaignShare is a campaign's slice of total conversions.
type CampaignShare struct {
	Campaign    Campaign `json:"campaign"`
	Conversions int64    `json:"conversions"`
	Share       float64  `json:"share"`
}

// Dataset is the immutable record set produced once by the Generator.
type Dataset struct {
	id          string
	generatedAt time.Time
	campaigns   []Campaign
	records     []RawRecord
	days        int
}

// NewDataset wraps records into an immutable Dataset. The slices are copied.
func NewDataset(id string, generatedAt time.Time, campaigns []Campaign, records []RawRecord) Dataset {
	dates := make(map[Date]struct{})
	for _, r := range records {
		dates[r.Date] = struct{}{}
	}
	return Dataset{
		id:          id,
		generatedAt: generatedAt,
		campaigns:   append([]Campaign(nil), campaigns...),
		records:     append([]RawRecord(nil), records...),
		days:        len(dates),
	}
}

// Days returns the number of distinct dates covered by the records.
func (d Dataset) Days() int { return d.days }

// ID identifies the dataset in cache keys.
func (d Dataset) ID() string { return d.id }

// GeneratedAt reports when the dataset was synthesized.
func (d Dataset) GeneratedAt() time.Time { return d.generatedAt }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Records returns a copy of the record sequence.
func (d Dataset) Records() []RawRecord {
	return append([]RawRecord(nil), d.records...)
}

// Campaigns returns a copy of the campaign enumeration.
func (d Dataset) Campaigns() []Campaign {
	return append([]Campaign(nil), d.campaigns...)
}
