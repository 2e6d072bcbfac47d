package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"recurring_dashboard/internal/domain/entities"
)

type Direction string

const (
	DirectionAsc Direction = "ASC"
	DirectionDsc Direction = "DSC"
)

var directions = []Direction{DirectionAsc, DirectionDsc}

// Query parameter names accepted by the commitments list.
const (
	ParamStatuses      = "statuses"
	ParamSortField     = "sortField"
	ParamSortDirection = "sortDirection"
	ParamLimit         = "limit"
	ParamPage          = "page"
	ParamSearch        = "search"
)

// RawParams is the untrusted list input as received. Limit and Page are
// pointers because an empty value is still a supplied (and invalid) number.
type RawParams struct {
	Statuses      string
	SortField     string
	SortDirection string
	Limit         *string
	Page          *string
	Search        string
}

// Params is the normalized form produced by Validate.
type Params struct {
	Statuses      []entities.CommitmentStatus
	SortField     string
	SortDirection Direction
	Limit         *int
	Page          *int
	Search        string
}

// Validation carries every problem found in a RawParams, not just the first.
type Validation struct {
	Valid  bool
	Errors []string
	Params Params
}

func RawParamsFromValues(v url.Values) RawParams {
	raw := RawParams{
		Statuses:      v.Get(ParamStatuses),
		SortField:     v.Get(ParamSortField),
		SortDirection: v.Get(ParamSortDirection),
		Search:        v.Get(ParamSearch),
	}
	if v.Has(ParamLimit) {
		s := v.Get(ParamLimit)
		raw.Limit = &s
	}
	if v.Has(ParamPage) {
		s := v.Get(ParamPage)
		raw.Page = &s
	}
	return raw
}

// Values is the inverse of RawParamsFromValues; absent fields are omitted.
func (r RawParams) Values() url.Values {
	v := url.Values{}
	if r.Statuses != "" {
		v.Set(ParamStatuses, r.Statuses)
	}
	if r.SortField != "" {
		v.Set(ParamSortField, r.SortField)
	}
	if r.SortDirection != "" {
		v.Set(ParamSortDirection, r.SortDirection)
	}
	if r.Limit != nil {
		v.Set(ParamLimit, *r.Limit)
	}
	if r.Page != nil {
		v.Set(ParamPage, *r.Page)
	}
	if r.Search != "" {
		v.Set(ParamSearch, r.Search)
	}
	return v
}

func Validate(raw RawParams) Validation {
	res := Validation{Errors: []string{}}

	if raw.Statuses != "" {
		for _, token := range strings.Split(raw.Statuses, ",") {
			status := entities.CommitmentStatus(token)
			if !status.IsFilterable() {
				res.Errors = append(res.Errors, fmt.Sprintf("Invalid filter status: %q.  Must be one of %s", token, joinStatuses(entities.FilterableStatuses)))
			}
			res.Params.Statuses = append(res.Params.Statuses, status)
		}
	}

	if raw.SortField != "" {
		if _, ok := lookupSortField(raw.SortField); !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("Invalid sort field %q.  Must be one of %s", raw.SortField, strings.Join(SortFieldNames(), ",")))
		}
		res.Params.SortField = raw.SortField
	}

	if raw.SortDirection != "" {
		dir := Direction(raw.SortDirection)
		if dir != DirectionAsc && dir != DirectionDsc {
			res.Errors = append(res.Errors, fmt.Sprintf("Invalid sort direction %q.  Must be one of %s", raw.SortDirection, joinDirections()))
		}
		res.Params.SortDirection = dir
	}

	if raw.Limit != nil {
		limit, err := strconv.Atoi(strings.TrimSpace(*raw.Limit))
		switch {
		case err != nil:
			res.Errors = append(res.Errors, "Limit must be a number.")
		case limit < 0:
			res.Errors = append(res.Errors, "Limit must not be negative.")
		default:
			res.Params.Limit = &limit
		}
	}

	if raw.Page != nil {
		page, err := strconv.Atoi(strings.TrimSpace(*raw.Page))
		switch {
		case err != nil:
			res.Errors = append(res.Errors, "Page must be a number.")
		case page < 0:
			res.Errors = append(res.Errors, "Page must not be negative.")
		default:
			res.Params.Page = &page
		}
	}

	if l, p := res.Params.Limit, res.Params.Page; l != nil && p != nil && *l > 0 && *p > (math.MaxInt-*l)/(*l) {
		res.Errors = append(res.Errors, "Page is out of range.")
	}

	res.Params.Search = raw.Search
	res.Valid = len(res.Errors) == 0
	return res
}

func joinStatuses(statuses []entities.CommitmentStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

func joinDirections() string {
	parts := make([]string, len(directions))
	for i, d := range directions {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}
