package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu     sync.Mutex
	hits   map[string]int
	status entities.CommitmentStatus
}

func (f *fakeAPI) hit(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hits[key]++
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	api := &fakeAPI{hits: make(map[string]int), status: entities.CommitmentStatusActive}

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /commitments", func(w http.ResponseWriter, r *http.Request) {
		api.hit("list")
		if r.URL.Query().Get("sortField") == "doesNotExist" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"pagination":  map[string]int{"totalCount": 0, "pageStart": 0, "pageEnd": 0},
				"commitments": []any{},
				"errors":      []string{`Invalid sort field "doesNotExist".`},
			})
			return
		}
		api.mu.Lock()
		status := api.status
		api.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{
			"pagination":  map[string]int{"totalCount": 1, "pageEnd": 0},
			"commitments": []entities.Commitment{{ID: "c-1", Status: status}},
			"errors":      []string{},
		})
	})
	mux.HandleFunc("GET /commitment/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.hit("get:" + r.PathValue("id"))
		if r.PathValue("id") != "c-1" {
			writeJSON(w, http.StatusNotFound, map[string]string{"code": "COMMITMENT_NOT_FOUND", "message": "No match found for commitment id: " + r.PathValue("id")})
			return
		}
		api.mu.Lock()
		status := api.status
		api.mu.Unlock()
		writeJSON(w, http.StatusOK, entities.Commitment{ID: "c-1", Status: status})
	})
	mux.HandleFunc("POST /commitment/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.hit("stop")
		api.mu.Lock()
		api.status = entities.CommitmentStatusStopped
		api.mu.Unlock()
		writeJSON(w, http.StatusOK, entities.Commitment{ID: r.PathValue("id"), Status: entities.CommitmentStatusStopped})
	})
	mux.HandleFunc("POST /commitment/refund/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.hit("refund")
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "COMMITMENT_ALREADY_REFUNDED", "message": "Specified commitment has already been refunded."})
	})
	mux.HandleFunc("GET /transaction/{id}", func(w http.ResponseWriter, r *http.Request) {
		api.hit("tx")
		writeJSON(w, http.StatusOK, entities.Transaction{ID: r.PathValue("id"), Status: entities.TransactionStatusCaptured})
	})
	mux.HandleFunc("GET /commitment/{id}/transactions", func(w http.ResponseWriter, r *http.Request) {
		api.hit("txs")
		id := r.PathValue("id")
		writeJSON(w, http.StatusOK, map[string]any{
			"commitmentId": id,
			"transactions": []entities.Transaction{{ID: "tx-1", CommitmentID: &id}},
		})
	})
	mux.HandleFunc("GET /generate", func(w http.ResponseWriter, r *http.Request) {
		api.hit("generate:" + r.URL.Query().Get("count"))
		writeJSON(w, http.StatusOK, map[string]any{"commitments": []entities.Commitment{{ID: "n-1"}, {ID: "n-2"}}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api, srv
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(baseURL+"/", WithTimeout(2*time.Second))
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("  ")
	require.Error(t, err)

	_, err = New("::not-a-url")
	require.Error(t, err)
}

func TestClient_ListIsCachedUntilMutation(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()
	limit := "5"
	params := query.RawParams{Statuses: "ACTIVE", Limit: &limit}

	page, err := c.ListCommitments(ctx, params)
	require.NoError(t, err)
	assert.False(t, page.FromCache)
	require.Len(t, page.Commitments, 1)

	page, err = c.ListCommitments(ctx, params)
	require.NoError(t, err)
	assert.True(t, page.FromCache)
	assert.Equal(t, 1, api.count("list"))

	_, err = c.GetCommitment(ctx, "c-1")
	require.NoError(t, err)
	_, err = c.GetCommitment(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("get:c-1"))

	stopped, err := c.StopCommitment(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, entities.CommitmentStatusStopped, stopped.Status)

	page, err = c.ListCommitments(ctx, params)
	require.NoError(t, err)
	assert.False(t, page.FromCache)
	assert.Equal(t, entities.CommitmentStatusStopped, page.Commitments[0].Status)
	assert.Equal(t, 2, api.count("list"))

	got, err := c.GetCommitment(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, entities.CommitmentStatusStopped, got.Status)
	assert.Equal(t, 2, api.count("get:c-1"))
}

func TestClient_ErrorsAreNotCached(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.ListCommitments(ctx, query.RawParams{SortField: "doesNotExist"})
		require.ErrorIs(t, err, ErrRequestFailed)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, []string{`Invalid sort field "doesNotExist".`}, apiErr.Errors)
	}
	assert.Equal(t, 2, api.count("list"))

	_, err := c.GetCommitment(ctx, "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "COMMITMENT_NOT_FOUND", apiErr.Code)

	_, err = c.RefundCommitment(ctx, "c-1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "COMMITMENT_ALREADY_REFUNDED", apiErr.Code)
}

func TestClient_Transactions(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	tx, err := c.GetTransaction(ctx, "tx-9")
	require.NoError(t, err)
	assert.Equal(t, "tx-9", tx.ID)
	_, err = c.GetTransaction(ctx, "tx-9")
	require.NoError(t, err)
	assert.Equal(t, 1, api.count("tx"))

	txs, err := c.ListCommitmentTransactions(ctx, "c-1")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].BelongsTo("c-1"))
}

func TestClient_RegenerateDropsEverything(t *testing.T) {
	api, srv := newFakeAPI(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.ListCommitments(ctx, query.RawParams{})
	require.NoError(t, err)
	_, err = c.GetTransaction(ctx, "tx-1")
	require.NoError(t, err)

	generated, err := c.Regenerate(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, generated, 2)
	assert.Equal(t, 1, api.count("generate:2"))

	keys, err := c.Cache().store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestClient_NetworkFailure(t *testing.T) {
	_, srv := newFakeAPI(t)
	c := newTestClient(t, srv.URL)
	srv.Close()

	_, err := c.ListCommitments(context.Background(), query.RawParams{})
	require.ErrorIs(t, err, ErrRequestFailed)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))

	state, err := c.Cache().State(context.Background(), CacheKey(KindList, "/commitments", nil))
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, state)
}
