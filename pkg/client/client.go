package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"recurring_dashboard/internal/adapter/http/dto/response"
	"recurring_dashboard/internal/domain/entities"
	"recurring_dashboard/internal/usecase/query"
)

const (
	KindList         = "LIST"
	KindCommitment   = "COMMITMENT"
	KindTransaction  = "TRANSACTION"
	KindTransactions = "TRANSACTIONS"

	defaultTimeout = 10 * time.Second
	errorBodyLimit = 64 * 1024
)

// APIError describes a non-2xx answer from the dashboard API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api status %d: %s", e.StatusCode, strings.Join(e.Errors, "; "))
	}
	if e.Code != "" {
		return fmt.Sprintf("api status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api status %d", e.StatusCode)
}

// Client talks to the dashboard API. Reads go through the RequestCache;
// mutations bypass it and drop the entries they make stale.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *RequestCache
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

func WithCache(cache *RequestCache) Option {
	return func(c *Client) {
		if cache != nil {
			c.cache = cache
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("api base url is required")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}

	c := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.cache == nil {
		c.cache = NewRequestCache(NewMemoryStore(), CacheOptions{})
	}
	return c, nil
}

func (c *Client) Cache() *RequestCache {
	return c.cache
}

// CommitmentPage is one page of the commitments list.
type CommitmentPage struct {
	response.CommitmentListResponse
	FromCache bool
}

func (c *Client) ListCommitments(ctx context.Context, params query.RawParams) (CommitmentPage, error) {
	var page CommitmentPage
	fromCache, err := c.cachedGet(ctx, KindList, "/commitments", params.Values(), &page.CommitmentListResponse)
	if err != nil {
		return CommitmentPage{}, err
	}
	page.FromCache = fromCache
	return page, nil
}

func (c *Client) GetCommitment(ctx context.Context, id string) (entities.Commitment, error) {
	var commitment entities.Commitment
	if _, err := c.cachedGet(ctx, KindCommitment, commitmentPath(id), nil, &commitment); err != nil {
		return entities.Commitment{}, err
	}
	return commitment, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (entities.Transaction, error) {
	var tx entities.Transaction
	if _, err := c.cachedGet(ctx, KindTransaction, "/transaction/"+url.PathEscape(id), nil, &tx); err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (c *Client) ListCommitmentTransactions(ctx context.Context, commitmentID string) ([]entities.Transaction, error) {
	var body response.TransactionListResponse
	if _, err := c.cachedGet(ctx, KindTransactions, commitmentPath(commitmentID)+"/transactions", nil, &body); err != nil {
		return nil, err
	}
	return body.Transactions, nil
}

func (c *Client) StopCommitment(ctx context.Context, id string) (entities.Commitment, error) {
	return c.mutateCommitment(ctx, id, commitmentPath(id))
}

func (c *Client) RefundCommitment(ctx context.Context, id string) (entities.Commitment, error) {
	return c.mutateCommitment(ctx, id, "/commitment/refund/"+url.PathEscape(id))
}

// Regenerate replaces the server's data set, so every cached entry goes.
func (c *Client) Regenerate(ctx context.Context, count int) ([]entities.Commitment, error) {
	params := url.Values{}
	if count > 0 {
		params.Set("count", strconv.Itoa(count))
	}

	body, err := c.send(ctx, http.MethodGet, "/generate", params)
	if err != nil {
		return nil, err
	}
	var generated response.GenerateResponse
	if err := json.Unmarshal(body, &generated); err != nil {
		return nil, fmt.Errorf("decode generate response: %w", err)
	}
	if err := c.cache.InvalidateAll(ctx); err != nil {
		return nil, fmt.Errorf("invalidate cache: %w", err)
	}
	return generated.Commitments, nil
}

func (c *Client) mutateCommitment(ctx context.Context, id, path string) (entities.Commitment, error) {
	body, err := c.send(ctx, http.MethodPost, path, nil)
	if err != nil {
		return entities.Commitment{}, err
	}
	var commitment entities.Commitment
	if err := json.Unmarshal(body, &commitment); err != nil {
		return entities.Commitment{}, fmt.Errorf("decode commitment: %w", err)
	}

	if err := c.cache.Invalidate(ctx, CacheKey(KindCommitment, commitmentPath(id), nil)); err != nil {
		return entities.Commitment{}, fmt.Errorf("invalidate cache: %w", err)
	}
	if err := c.cache.InvalidatePrefix(ctx, KindList+"/"); err != nil {
		return entities.Commitment{}, fmt.Errorf("invalidate cache: %w", err)
	}
	return commitment, nil
}

func (c *Client) cachedGet(ctx context.Context, kind, path string, params url.Values, out any) (bool, error) {
	key := CacheKey(kind, path, params)
	res, err := c.cache.Do(ctx, key, func(ctx context.Context) ([]byte, error) {
		return c.send(ctx, http.MethodGet, path, params)
	})
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", strings.ToLower(kind), err)
	}
	return res.FromCache, nil
}

// send performs one request. Every failure, including non-2xx answers,
// wraps ErrRequestFailed.
func (c *Client) send(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	target := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, decodeAPIError(resp))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}
	return body, nil
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var envelope struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	if json.Unmarshal(raw, &envelope) == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
		apiErr.Errors = envelope.Errors
	}
	return apiErr
}

func commitmentPath(id string) string {
	return "/commitment/" + url.PathEscape(id)
}
