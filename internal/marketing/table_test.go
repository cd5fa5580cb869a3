package marketing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableRows() []CampaignSummary {
	return []CampaignSummary{
		{Campaign: CampaignSearch, Revenue: 4000, Users: 900, Conversions: 120, CTR: 3.1, Cost: 1200},
		{Campaign: CampaignSocial, Revenue: 2500, Users: 1100, Conversions: 90, CTR: 6.2, Cost: 900},
		{Campaign: CampaignDisplay, Revenue: 1500, Users: 700, Conversions: 40, CTR: 2.4, Cost: 600},
		{Campaign: CampaignEmail, Revenue: 3000, Users: 400, Conversions: 100, CTR: 4.8, Cost: 700},
	}
}

func campaignsOf(rows []CampaignSummary) []Campaign {
	out := make([]Campaign, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Campaign)
	}
	return out
}

func int64Ptr(v int64) *int64 { return &v }

func TestQueryCampaignsDefaultsToRevenueDesc(t *testing.T) {
	page, err := QueryCampaigns(tableRows(), CampaignQuery{})
	require.NoError(t, err)
	assert.Equal(t, []Campaign{CampaignSearch, CampaignEmail, CampaignSocial, CampaignDisplay}, campaignsOf(page.Rows))
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.PerPage)
	assert.Equal(t, 4, page.Pagination.Total)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestQueryCampaignsSortColumns(t *testing.T) {
	cases := []struct {
		field string
		dir   string
		want  []Campaign
	}{
		{SortCampaign, SortAsc, []Campaign{CampaignDisplay, CampaignEmail, CampaignSearch, CampaignSocial}},
		{SortUsers, SortDesc, []Campaign{CampaignSocial, CampaignSearch, CampaignDisplay, CampaignEmail}},
		{SortConversions, SortAsc, []Campaign{CampaignDisplay, CampaignSocial, CampaignEmail, CampaignSearch}},
		{SortCTR, SortDesc, []Campaign{CampaignSocial, CampaignEmail, CampaignSearch, CampaignDisplay}},
		{SortCost, SortAsc, []Campaign{CampaignDisplay, CampaignEmail, CampaignSocial, CampaignSearch}},
	}
	for _, tc := range cases {
		t.Run(tc.field+"_"+tc.dir, func(t *testing.T) {
			page, err := QueryCampaigns(tableRows(), CampaignQuery{SortField: tc.field, SortDir: tc.dir})
			require.NoError(t, err)
			assert.Equal(t, tc.want, campaignsOf(page.Rows))
		})
	}
}

func TestQueryCampaignsFilters(t *testing.T) {
	page, err := QueryCampaigns(tableRows(), CampaignQuery{Search: "  AI "})
	require.NoError(t, err)
	assert.Equal(t, []Campaign{CampaignEmail}, campaignsOf(page.Rows))

	page, err = QueryCampaigns(tableRows(), CampaignQuery{MinRevenue: int64Ptr(2500), MaxRevenue: int64Ptr(3000), SortDir: SortAsc})
	require.NoError(t, err)
	assert.Equal(t, []Campaign{CampaignSocial, CampaignEmail}, campaignsOf(page.Rows))
}

func TestQueryCampaignsPaginates(t *testing.T) {
	page, err := QueryCampaigns(tableRows(), CampaignQuery{PerPage: 3, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, []Campaign{CampaignDisplay}, campaignsOf(page.Rows))
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasPrev())
	assert.False(t, page.Pagination.HasNext())

	page, err = QueryCampaigns(tableRows(), CampaignQuery{PerPage: 3, Page: 9})
	require.NoError(t, err)
	assert.Empty(t, page.Rows)
}

func TestQueryCampaignsDoesNotMutateInput(t *testing.T) {
	rows := tableRows()
	_, err := QueryCampaigns(rows, CampaignQuery{SortField: SortCampaign, SortDir: SortAsc})
	require.NoError(t, err)
	assert.Equal(t, tableRows(), rows)
}

func TestQueryCampaignsLastAllowedPageIsEmpty(t *testing.T) {
	page, err := QueryCampaigns(tableRows(), CampaignQuery{Page: MaxPage, PerPage: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Rows) != 0 || page.Pagination.Page != MaxPage {
		t.Fatalf("expected empty page %d, got %+v", MaxPage, page)
	}
}

func TestQueryCampaignsValidation(t *testing.T) {
	invalid := []CampaignQuery{
		{SortField: "roi"},
		{SortDir: "sideways"},
		{PerPage: 500},
		{Page: MaxPage + 1},
		{Page: 922337203685477582},
		{MinRevenue: int64Ptr(-1)},
		{MinRevenue: int64Ptr(10), MaxRevenue: int64Ptr(5)},
	}
	for _, q := range invalid {
		if _, err := QueryCampaigns(tableRows(), q); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", q, err)
		}
	}
}
