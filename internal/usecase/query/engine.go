package query

import (
	"cmp"
	"slices"
	"strings"

	"recurring_dashboard/internal/domain/entities"
)

type sortField struct {
	name    string
	compare func(a, b entities.Commitment) int
}

// sortFields lists the scalar attributes that are always populated on a
// commitment, in the order they appear on a record.
var sortFields = []sortField{
	{"organizationId", func(a, b entities.Commitment) int { return cmp.Compare(a.OrganizationID, b.OrganizationID) }},
	{"id", func(a, b entities.Commitment) int { return strings.Compare(a.ID, b.ID) }},
	{"creationTimestamp", func(a, b entities.Commitment) int { return a.CreationTimestamp.Compare(b.CreationTimestamp) }},
	{"startedTimestamp", func(a, b entities.Commitment) int { return a.StartedTimestamp.Compare(b.StartedTimestamp) }},
	{"firstName", func(a, b entities.Commitment) int { return strings.Compare(a.FirstName, b.FirstName) }},
	{"lastName", func(a, b entities.Commitment) int { return strings.Compare(a.LastName, b.LastName) }},
	{"email", func(a, b entities.Commitment) int { return strings.Compare(a.Email, b.Email) }},
	{"amountPaidToDate", func(a, b entities.Commitment) int { return cmp.Compare(a.AmountPaidToDate, b.AmountPaidToDate) }},
	{"currency", func(a, b entities.Commitment) int { return strings.Compare(a.Currency, b.Currency) }},
	{"status", func(a, b entities.Commitment) int { return strings.Compare(string(a.Status), string(b.Status)) }},
}

func lookupSortField(name string) (sortField, bool) {
	for _, f := range sortFields {
		if f.name == name {
			return f, true
		}
	}
	return sortField{}, false
}

// SortFieldNames returns the accepted sortField values.
func SortFieldNames() []string {
	names := make([]string, len(sortFields))
	for i, f := range sortFields {
		names[i] = f.name
	}
	return names
}

type Pagination struct {
	TotalCount int  `json:"totalCount"`
	PageStart  *int `json:"pageStart,omitempty"`
	PageEnd    *int `json:"pageEnd,omitempty"`
}

type Result struct {
	Pagination  Pagination
	Commitments []entities.Commitment
	Errors      []string
}

// Run validates raw and, when valid, executes it over commitments.
// An invalid request yields zeroed pagination, no records and every
// validation error.
func Run(commitments []entities.Commitment, raw RawParams) Result {
	v := Validate(raw)
	if !v.Valid {
		zero := 0
		return Result{
			Pagination:  Pagination{TotalCount: 0, PageStart: &zero, PageEnd: &zero},
			Commitments: []entities.Commitment{},
			Errors:      v.Errors,
		}
	}
	return Execute(commitments, v.Params)
}

// Execute applies sort, status filter, search and pagination in that order.
// The input slice is never reordered.
func Execute(commitments []entities.Commitment, p Params) Result {
	out := slices.Clone(commitments)

	if p.SortField != "" {
		out = Sort(out, p.SortField, p.SortDirection)
	}
	if len(p.Statuses) > 0 {
		out = FilterByStatus(out, p.Statuses)
	}
	if p.Search != "" {
		out = Search(out, p.Search)
	}

	res := Result{
		Pagination: Pagination{TotalCount: len(out)},
		Errors:     []string{},
	}

	if p.Limit == nil {
		end := res.Pagination.TotalCount - 1
		res.Pagination.PageEnd = &end
		res.Commitments = out
		return res
	}

	limit := *p.Limit
	page := 0
	if p.Page != nil {
		page = *p.Page
	}
	start := limit * page
	end := start + limit - 1
	res.Pagination.PageStart = &start
	res.Pagination.PageEnd = &end
	res.Commitments = slicePage(out, start, limit)
	return res
}

// Sort returns a sorted copy. Absent direction sorts ascending; equal values
// keep their collection order.
func Sort(commitments []entities.Commitment, field string, dir Direction) []entities.Commitment {
	out := slices.Clone(commitments)
	f, ok := lookupSortField(field)
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b entities.Commitment) int {
		c := f.compare(a, b)
		if dir == DirectionDsc {
			return -c
		}
		return c
	})
	return out
}

func FilterByStatus(commitments []entities.Commitment, statuses []entities.CommitmentStatus) []entities.Commitment {
	out := make([]entities.Commitment, 0, len(commitments))
	for _, c := range commitments {
		if slices.Contains(statuses, c.Status) {
			out = append(out, c)
		}
	}
	return out
}

// Search keeps commitments whose first name, last name or email contains
// term, ignoring case.
func Search(commitments []entities.Commitment, term string) []entities.Commitment {
	needle := strings.ToUpper(term)
	out := make([]entities.Commitment, 0, len(commitments))
	for _, c := range commitments {
		if strings.Contains(strings.ToUpper(c.FirstName), needle) ||
			strings.Contains(strings.ToUpper(c.LastName), needle) ||
			strings.Contains(strings.ToUpper(c.Email), needle) {
			out = append(out, c)
		}
	}
	return out
}

func slicePage(commitments []entities.Commitment, start, limit int) []entities.Commitment {
	if start >= len(commitments) || limit == 0 {
		return []entities.Commitment{}
	}
	end := start + limit
	if end > len(commitments) {
		end = len(commitments)
	}
	return commitments[start:end]
}
