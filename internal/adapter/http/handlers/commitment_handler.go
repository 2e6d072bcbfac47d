package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	request "recurring_dashboard/internal/adapter/http/dto/request"
	response "recurring_dashboard/internal/adapter/http/dto/response"
	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase"
	"recurring_dashboard/internal/usecase/interfaces"
	"recurring_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGeneratePayload = pkg.NewDomainErrorSimple("INVALID_GENERATE_INPUT", "count must be a number between 1 and 10000", http.StatusBadRequest)
)

// CommitmentHandler serves the commitment list, lookups, stop/refund
// transitions and the demo data regeneration.
type CommitmentHandler struct {
	usecase       usecase.ICommitmentUseCase
	generateCount int
}

func NewCommitmentHandler(uc usecase.ICommitmentUseCase, generateCount int) *CommitmentHandler {
	return &CommitmentHandler{usecase: uc, generateCount: generateCount}
}

// ListCommitments godoc
// @Summary      List commitments
// @Description  Validates the query, then sorts, filters, searches and paginates the commitments.
// @Tags         commitments
// @Produce      json
// @Param        statuses       query  string  false  "Comma separated statuses (ACTIVE,CANCELED,STOPPED)"
// @Param        sortField      query  string  false  "Commitment attribute to sort by"
// @Param        sortDirection  query  string  false  "ASC or DSC"
// @Param        limit          query  int     false  "Page size"
// @Param        page           query  int     false  "Zero based page"
// @Param        search         query  string  false  "Case insensitive match on first name, last name or email"
// @Success      200  {object}  response.CommitmentListResponse
// @Failure      400  {object}  response.CommitmentListResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /commitments [get]
func (h *CommitmentHandler) ListCommitments(c *gin.Context) {
	raw := request.ListParamsFromQuery(c.Request.URL.Query())

	res, err := h.usecase.List(c.Request.Context(), raw)
	if err != nil {
		appErr := mapCommitmentError(err, "")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if len(res.Errors) > 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, response.FromQueryResult(res))
}

// GetCommitment godoc
// @Summary      Get a commitment
// @Tags         commitments
// @Produce      json
// @Param        id   path  string  true  "Commitment id"
// @Success      200  {object}  entities.Commitment
// @Failure      404  {object}  pkg.HTTPError
// @Router       /commitment/{id} [get]
func (h *CommitmentHandler) GetCommitment(c *gin.Context) {
	id := c.Param("id")

	commitment, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCommitmentError(err, id)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, commitment)
}

// StopCommitment godoc
// @Summary      Stop a commitment
// @Tags         commitments
// @Produce      json
// @Param        id   path  string  true  "Commitment id"
// @Success      200  {object}  entities.Commitment
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /commitment/{id} [post]
func (h *CommitmentHandler) StopCommitment(c *gin.Context) {
	h.transition(c, h.usecase.Stop)
}

// RefundCommitment godoc
// @Summary      Refund a commitment
// @Tags         commitments
// @Produce      json
// @Param        id   path  string  true  "Commitment id"
// @Success      200  {object}  entities.Commitment
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /commitment/refund/{id} [post]
func (h *CommitmentHandler) RefundCommitment(c *gin.Context) {
	h.transition(c, h.usecase.Refund)
}

func (h *CommitmentHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Commitment, error),
) {
	id := c.Param("id")

	commitment, err := apply(c.Request.Context(), id)
	if err != nil {
		appErr := mapCommitmentError(err, id)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, commitment)
}

// Regenerate godoc
// @Summary      Regenerate demo data
// @Description  Discards both collections and replaces them with freshly generated records.
// @Tags         admin
// @Produce      json
// @Param        count  query  int  false  "Number of commitments (default GENERATE_COUNT)"
// @Success      200  {object}  response.GenerateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /generate [get]
func (h *CommitmentHandler) Regenerate(c *gin.Context) {
	var payload request.GenerateRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidGeneratePayload.HTTPStatus, errInvalidGeneratePayload.ToHTTPError())
		return
	}

	commitments, err := h.usecase.Regenerate(c.Request.Context(), payload.ResolveCount(h.generateCount))
	if err != nil {
		appErr := mapCommitmentError(err, "")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGenerated(commitments))
}

func mapCommitmentError(err error, id string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCommitmentID), errors.Is(err, usecase.ErrInvalidGenerateCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommitmentNotFound):
		return pkg.NewDomainErrorSimple("COMMITMENT_NOT_FOUND", fmt.Sprintf("No match found for commitment id: %s", id), http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommitmentAlreadyStopped):
		return pkg.NewDomainErrorSimple("COMMITMENT_ALREADY_STOPPED", "Specified commitment has already been stopped.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommitmentAlreadyRefunded):
		return pkg.NewDomainErrorSimple("COMMITMENT_ALREADY_REFUNDED", "Specified commitment has already been refunded.", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Commitment records could not be read", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
