package handlers

import (
	"errors"
	"fmt"
	"net/http"

	response "recurring_dashboard/internal/adapter/http/dto/response"
	"recurring_dashboard/internal/usecase"
	"recurring_dashboard/internal/usecase/interfaces"
	"recurring_dashboard/pkg"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// GetTransaction godoc
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Param        id   path  string  true  "Transaction id"
// @Success      200  {object}  entities.Transaction
// @Failure      404  {object}  pkg.HTTPError
// @Router       /transaction/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")

	tx, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err, id)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, tx)
}

// ListCommitmentTransactions godoc
// @Summary      List the transactions of a commitment
// @Tags         transactions
// @Produce      json
// @Param        id   path  string  true  "Commitment id"
// @Success      200  {object}  response.TransactionListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /commitment/{id}/transactions [get]
func (h *TransactionHandler) ListCommitmentTransactions(c *gin.Context) {
	id := c.Param("id")

	txs, err := h.usecase.ListByCommitmentID(c.Request.Context(), id)
	if err != nil {
		appErr := mapTransactionError(err, id)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(id, txs))
}

func mapTransactionError(err error, id string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID), errors.Is(err, usecase.ErrInvalidCommitmentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", fmt.Sprintf("No match found for transaction id: %s", id), http.StatusNotFound)
	case errors.Is(err, interfaces.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Transaction records could not be read", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
