package response

import (
	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase/query"
)

type PaginationResponse struct {
	TotalCount int  `json:"totalCount"`
	PageStart  *int `json:"pageStart,omitempty"`
	PageEnd    *int `json:"pageEnd,omitempty"`
}

// CommitmentListResponse is the body of GET /commitments for both the
// success and the validation failure case.
type CommitmentListResponse struct {
	Pagination  PaginationResponse    `json:"pagination"`
	Commitments []entities.Commitment `json:"commitments"`
	Errors      []string              `json:"errors"`
}

func FromQueryResult(res query.Result) CommitmentListResponse {
	out := CommitmentListResponse{
		Pagination: PaginationResponse{
			TotalCount: res.Pagination.TotalCount,
			PageStart:  res.Pagination.PageStart,
			PageEnd:    res.Pagination.PageEnd,
		},
		Commitments: res.Commitments,
		Errors:      res.Errors,
	}
	if out.Commitments == nil {
		out.Commitments = []entities.Commitment{}
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	return out
}

type GenerateResponse struct {
	Commitments []entities.Commitment `json:"commitments"`
}

func FromGenerated(commitments []entities.Commitment) GenerateResponse {
	if commitments == nil {
		commitments = []entities.Commitment{}
	}
	return GenerateResponse{Commitments: commitments}
}
