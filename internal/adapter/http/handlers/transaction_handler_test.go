package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recurring_dashboard/internal/adapter/http/handlers/mocks"
	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTransactionHandler_GetTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(h *TransactionHandler) *gin.Engine {
		r := gin.New()
		r.GET("/transaction/:id", h.GetTransaction)
		r.GET("/transactions/:id", h.GetTransaction)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := build(NewTransactionHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "tx-9").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/transaction/tx-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "No match found for transaction id: tx-9" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("legacy path success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		r := build(NewTransactionHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1", Amount: 5000, Status: entities.TransactionStatusCaptured}, nil)

		req := httptest.NewRequest(http.MethodGet, "/transactions/tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "tx-1" || body["amount"] != float64(5000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTransactionHandler_ListCommitmentTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.GET("/commitment/:id/transactions", h.ListCommitmentTransactions)

		cid := "c-1"
		uc.EXPECT().ListByCommitmentID(gomock.Any(), "c-1").Return([]entities.Transaction{{ID: "tx-1", CommitmentID: &cid}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/commitment/c-1/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			CommitmentID string           `json:"commitmentId"`
			Transactions []map[string]any `json:"transactions"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.CommitmentID != "c-1" || len(body.Transactions) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.GET("/commitment/:id/transactions", h.ListCommitmentTransactions)

		uc.EXPECT().ListByCommitmentID(gomock.Any(), " ").Return(nil, usecase.ErrInvalidCommitmentID)

		req := httptest.NewRequest(http.MethodGet, "/commitment/%20/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", Ping)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
