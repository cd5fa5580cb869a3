package marketing

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/admybrand/insights/internal/shared"
)

// Sortable campaign table columns.
const (
	SortCampaign    = "campaign"
	SortRevenue     = "revenue"
	SortUsers       = "users"
	SortConversions = "conversions"
	SortCTR         = "ctr"
	SortCost        = "cost"

	SortAsc  = "asc"
	SortDesc = "desc"

	// MaxPage bounds the page number accepted by CampaignQuery.
	MaxPage = 100000
)

// CampaignQuery filters, sorts and pages the campaign table.
type CampaignQuery struct {
	Search     string `json:"search" validate:"max=64"`
	MinRevenue *int64 `json:"minRevenue" validate:"omitempty,gte=0"`
	MaxRevenue *int64 `json:"maxRevenue" validate:"omitempty,gte=0"`
	SortField  string `json:"sortField" validate:"omitempty,oneof=campaign revenue users conversions ctr cost"`
	SortDir    string `json:"sortDir" validate:"omitempty,oneof=asc desc"`
	Page       int    `json:"page" validate:"gte=0,lte=100000"`
	PerPage    int    `json:"perPage" validate:"gte=0,lte=100"`
}

// CampaignPage is one page of filtered campaign rows.
type CampaignPage struct {
	Rows       []CampaignSummary `json:"rows"`
	Pagination shared.Pagination `json:"pagination"`
	Query      CampaignQuery     `json:"query"`
}

var queryValidator = validator.New(validator.WithRequiredStructEnabled())

// Normalize validates q and fills in defaults.
func (q CampaignQuery) Normalize() (CampaignQuery, error) {
	if err := queryValidator.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return q, fmt.Errorf("%w: %s failed %s", ErrInvalidInput, strings.ToLower(verrs[0].Field()), verrs[0].Tag())
		}
		return q, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if q.MinRevenue != nil && q.MaxRevenue != nil && *q.MinRevenue > *q.MaxRevenue {
		return q, fmt.Errorf("%w: minRevenue exceeds maxRevenue", ErrInvalidInput)
	}
	q.Search = strings.TrimSpace(q.Search)
	if q.SortField == "" {
		q.SortField = SortRevenue
	}
	if q.SortDir == "" {
		q.SortDir = SortDesc
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = shared.DefaultPerPage
	}
	return q, nil
}

// QueryCampaigns applies q to rows. The input slice is not modified.
func QueryCampaigns(rows []CampaignSummary, q CampaignQuery) (CampaignPage, error) {
	q, err := q.Normalize()
	if err != nil {
		return CampaignPage{}, err
	}
	needle := strings.ToLower(q.Search)
	filtered := make([]CampaignSummary, 0, len(rows))
	for _, row := range rows {
		if needle != "" && !strings.Contains(strings.ToLower(string(row.Campaign)), needle) {
			continue
		}
		if q.MinRevenue != nil && row.Revenue < *q.MinRevenue {
			continue
		}
		if q.MaxRevenue != nil && row.Revenue > *q.MaxRevenue {
			continue
		}
		filtered = append(filtered, row)
	}

	compare := columnComparator(q.SortField)
	slices.SortStableFunc(filtered, func(a, b CampaignSummary) int {
		if q.SortDir == SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})

	pagination := shared.NewPagination(q.Page, q.PerPage, len(filtered))
	start, end := pagination.Window()
	return CampaignPage{
		Rows:       filtered[start:end],
		Pagination: pagination,
		Query:      q,
	}, nil
}

func columnComparator(field string) func(a, b CampaignSummary) int {
	switch field {
	case SortCampaign:
		return func(a, b CampaignSummary) int { return cmp.Compare(a.Campaign, b.Campaign) }
	case SortUsers:
		return func(a, b CampaignSummary) int { return cmp.Compare(a.Users, b.Users) }
	case SortConversions:
		return func(a, b CampaignSummary) int { return cmp.Compare(a.Conversions, b.Conversions) }
	case SortCTR:
		return func(a, b CampaignSummary) int { return cmp.Compare(a.CTR, b.CTR) }
	case SortCost:
		return func(a, b CampaignSummary) int { return cmp.Compare(a.Cost, b.Cost) }
	default:
		return func(a, b CampaignSummary) int { return cmp.Compare(a.Revenue, b.Revenue) }
	}
}
