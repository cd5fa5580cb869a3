package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/admybrand/insights/internal/marketing"
)

// DashboardPayload aggregates shaped dashboard data destined for PDF rendering.
type DashboardPayload struct {
	GeneratedAt  time.Time
	Summary      marketing.SummaryMetrics
	Growth       marketing.GrowthSet
	Campaigns    []marketing.CampaignSummary
	Daily        []marketing.DailyPoint
	Distribution []marketing.CampaignShare
}

// PDFExporter wraps Gotenberg interactions for dashboard exports.
type PDFExporter struct {
	Endpoint string
	Client   *http.Client
}

// RenderDashboard sends HTML content to Gotenberg and returns the PDF bytes.
func (p *PDFExporter) RenderDashboard(ctx context.Context, payload DashboardPayload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("export: pdf exporter not initialised")
	}
	endpoint := strings.TrimRight(p.Endpoint, "/")
	if endpoint == "" {
		return nil, fmt.Errorf("export: gotenberg endpoint required")
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	html, err := BuildHTML(payload)
	if err != nil {
		return nil, err
	}
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("files", "index.html")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(html); err != nil {
		return nil, err
	}
	if err := writer.WriteField("printBackground", "true"); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("export: gotenberg request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("export: gotenberg response %d: %s", resp.StatusCode, string(data))
	}
	return io.ReadAll(resp.Body)
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"day":   func(d marketing.Date) string { return d.String() },
	"money": func(v int64) string { return formatInt(v) },
	"pct":   func(v float64) string { return formatFloat(v) + "%" },
	"num":   formatFloat,
}).Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Marketing Insights</title><style>
body{font-family:sans-serif;margin:24px;color:#0f172a}h1{font-size:20px}h2{font-size:15px;margin-top:24px}
table{width:100%;border-collapse:collapse}th,td{border:1px solid #e2e8f0;padding:6px;text-align:right}
th{background:#f8fafc}td.label,th.label{text-align:left}
</style></head><body>
<h1>Marketing Insights</h1>
<p>Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}}</p>
<h2>Summary</h2>
<table><thead><tr><th class="label">Metric</th><th>Value</th><th>Growth</th></tr></thead><tbody>
<tr><td class="label">Total Revenue</td><td>{{money .Summary.TotalRevenue}}</td><td>{{pct .Growth.Revenue}}</td></tr>
<tr><td class="label">Total Users</td><td>{{money .Summary.TotalUsers}}</td><td>{{pct .Growth.Users}}</td></tr>
<tr><td class="label">Conversions</td><td>{{money .Summary.TotalConversions}}</td><td>{{pct .Growth.Conversions}}</td></tr>
<tr><td class="label">Average Order Value</td><td>{{num .Summary.AverageOrderValue}}</td><td></td></tr>
<tr><td class="label">Conversion Rate</td><td>{{pct .Summary.ConversionRate}}</td><td>{{pct .Growth.ConversionRate}}</td></tr>
</tbody></table>
{{if .Campaigns}}<h2>Campaigns</h2>
<table><thead><tr><th class="label">Campaign</th><th>Revenue</th><th>Users</th><th>Conversions</th><th>CTR</th><th>Cost</th></tr></thead><tbody>
{{range .Campaigns}}<tr><td class="label">{{.Campaign}}</td><td>{{money .Revenue}}</td><td>{{money .Users}}</td><td>{{money .Conversions}}</td><td>{{pct .CTR}}</td><td>{{money .Cost}}</td></tr>
{{end}}</tbody></table>{{end}}
{{if .Distribution}}<h2>Conversion Distribution</h2>
<table><tbody>{{range .Distribution}}<tr><td class="label">{{.Campaign}}</td><td>{{money .Conversions}}</td><td>{{pct .Share}}</td></tr>
{{end}}</tbody></table>{{end}}
{{if .Daily}}<h2>Daily Trend</h2>
<table><thead><tr><th class="label">Date</th><th>Revenue</th><th>Users</th><th>Conversions</th></tr></thead><tbody>
{{range .Daily}}<tr><td class="label">{{day .Date}}</td><td>{{money .Revenue}}</td><td>{{money .Users}}</td><td>{{money .Conversions}}</td></tr>
{{end}}</tbody></table>{{end}}
</body></html>`))

// BuildHTML renders the printable report that is sent to Gotenberg.
func BuildHTML(payload DashboardPayload) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, payload); err != nil {
		return nil, fmt.Errorf("export: render report: %w", err)
	}
	return buf.Bytes(), nil
}
