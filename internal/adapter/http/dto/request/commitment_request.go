package request

import (
	"net/url"

	"recurring_dashboard/internal/usecase/query"
)

// ListCommitmentsRequest documents the list query string. Binding goes
// through url.Values so that a supplied but empty limit or page is kept
// apart from an absent one.
type ListCommitmentsRequest struct {
	Statuses      string `form:"statuses" example:"ACTIVE,STOPPED"`
	SortField     string `form:"sortField" example:"amountPaidToDate"`
	SortDirection string `form:"sortDirection" example:"DSC"`
	Limit         string `form:"limit" example:"10"`
	Page          string `form:"page" example:"0"`
	Search        string `form:"search" example:"smith"`
}

func ListParamsFromQuery(values url.Values) query.RawParams {
	return query.RawParamsFromValues(values)
}

// GenerateRequest optionally overrides how many commitments /generate builds.
type GenerateRequest struct {
	Count *int `form:"count" binding:"omitempty,min=1,max=10000"`
}

func (r GenerateRequest) ResolveCount(fallback int) int {
	if r.Count != nil {
		return *r.Count
	}
	return fallback
}
