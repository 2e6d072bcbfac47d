package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"recurring_dashboard/internal/adapter/persistence/repository"
	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/infrastructure/config"
	"recurring_dashboard/internal/infrastructure/generator"
	"recurring_dashboard/internal/infrastructure/logger"
	"recurring_dashboard/internal/infrastructure/metrics"
	"recurring_dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listBody struct {
	Pagination struct {
		TotalCount int  `json:"totalCount"`
		PageStart  *int `json:"pageStart"`
		PageEnd    *int `json:"pageEnd"`
	} `json:"pagination"`
	Commitments []entities.Commitment `json:"commitments"`
	Errors      []string              `json:"errors"`
}

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	commitmentsFile := filepath.Join(dir, "commitments.json")
	commitmentRepo := repository.NewCommitmentFileRepository(commitmentsFile)
	transactionRepo := repository.NewTransactionFileRepository(filepath.Join(dir, "transactions.json"))

	uc := usecase.NewCommitmentUseCase(commitmentRepo, transactionRepo, generator.New(7), logger.Nop())
	seeded, err := uc.EnsureSeeded(context.Background(), 100)
	require.NoError(t, err)
	require.True(t, seeded)

	reg := prometheus.NewRegistry()
	router := NewRouter(RouterDeps{
		CommitmentUseCase:  uc,
		TransactionUseCase: usecase.NewTransactionUseCase(transactionRepo),
		GenerateCount:      100,
		Logger:             logger.Nop(),
		Metrics:            metrics.NewHTTPMetrics(reg),
		Gatherer:           reg,
	})
	return router, commitmentsFile
}

func do(t *testing.T, r http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestRouter_ListScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/commitments?statuses=ACTIVE,STOPPED&sortField=amountPaidToDate&sortDirection=DSC&limit=5&page=0")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.LessOrEqual(t, len(body.Commitments), 5)
	assert.Empty(t, body.Errors)
	for i, c := range body.Commitments {
		assert.Contains(t, []entities.CommitmentStatus{entities.CommitmentStatusActive, entities.CommitmentStatusStopped}, c.Status)
		if i > 0 {
			assert.GreaterOrEqual(t, body.Commitments[i-1].AmountPaidToDate, c.AmountPaidToDate)
		}
	}
	require.NotNil(t, body.Pagination.PageStart)
	assert.Equal(t, 0, *body.Pagination.PageStart)
	assert.Equal(t, 4, *body.Pagination.PageEnd)
}

func TestRouter_InvalidSortField(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/v1/commitments?sortField=doesNotExist")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Commitments)
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0], "doesNotExist")
	assert.Equal(t, 0, body.Pagination.TotalCount)
}

func TestRouter_StopTwiceAndPersist(t *testing.T) {
	r, commitmentsFile := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/commitments?statuses=ACTIVE&limit=1")
	require.Equal(t, http.StatusOK, w.Code)
	var list listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.NotEmpty(t, list.Commitments)
	id := list.Commitments[0].ID

	w = do(t, r, http.MethodPost, "/commitment/"+id)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var stopped entities.Commitment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stopped))
	assert.Equal(t, entities.CommitmentStatusStopped, stopped.Status)

	w = do(t, r, http.MethodPost, "/commitment/"+id)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already been stopped.")

	w = do(t, r, http.MethodPost, "/commitment/refund/"+id)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already been refunded.")

	// A fresh store over the same file sees the mutation.
	fresh := repository.NewCommitmentFileRepository(commitmentsFile)
	got, err := fresh.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entities.CommitmentStatusStopped, got.Status)
}

func TestRouter_TransactionsDrillDown(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/commitments?limit=1")
	var list listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Commitments, 1)
	c := list.Commitments[0]
	require.NotEmpty(t, c.Installments)

	w = do(t, r, http.MethodGet, "/transaction/"+c.Installments[0].TransactionID)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/transactions/"+c.Installments[0].TransactionID)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/commitment/"+c.ID+"/transactions")
	require.Equal(t, http.StatusOK, w.Code)
	var txs struct {
		Transactions []entities.Transaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &txs))
	assert.Len(t, txs.Transactions, len(c.Installments))

	w = do(t, r, http.MethodGet, "/transaction/unknown")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No match found for transaction id: unknown")
}

func TestRouter_GenerateAndOperationalRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/generate?count=3")
	require.Equal(t, http.StatusOK, w.Code)
	var gen struct {
		Commitments []entities.Commitment `json:"commitments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &gen))
	assert.Len(t, gen.Commitments, 3)

	w = do(t, r, http.MethodGet, "/commitments")
	var list listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 3, list.Pagination.TotalCount)
	assert.Nil(t, list.Pagination.PageStart)
	require.NotNil(t, list.Pagination.PageEnd)
	assert.Equal(t, 2, *list.Pagination.PageEnd)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/ping").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/v1/ping").Code)

	w = do(t, r, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestBuildRepositories_File(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:           config.StoreDriverFile,
		CommitmentsFile:  filepath.Join(dir, "c.json"),
		TransactionsFile: filepath.Join(dir, "t.json"),
	}}

	c, tx, err := buildRepositories(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &repository.CommitmentRepository{}, c)
	assert.IsType(t, &repository.TransactionRepository{}, tx)
}
