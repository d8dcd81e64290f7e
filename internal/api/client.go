// Package api implements the REST boundary to the money-manager backend.
//
// The client is a pure request/response mapper: no retries, no caching,
// no logging. Failures propagate to the caller as *gateway.Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"moneymgr/internal/gateway"
)

// DefaultBaseURL matches the backend's default local address.
const DefaultBaseURL = "http://localhost:5000/api"

func init() {
	// The backend speaks bare JSON numbers for amounts, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Client groups the two backend resource APIs behind one base URL.
type Client struct {
	baseURL string
	httpc   *http.Client

	Transactions TransactionAPI
	Accounts     AccountAPI
}

// interface checks
var (
	_ gateway.TransactionGateway = TransactionAPI{}
	_ gateway.AccountGateway     = AccountAPI{}
)

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
	c.Transactions = TransactionAPI{c: c}
	c.Accounts = AccountAPI{c: c}
	return c
}

// Ping checks backend reachability. Used only by the startup probe.
func (c *Client) Ping(ctx context.Context) error {
	var out []json.RawMessage
	return c.do(ctx, http.MethodGet, "/accounts", nil, nil, &out, "Backend is not reachable.")
}

// do issues one HTTP request. A non-2xx status is mapped to *gateway.Error,
// using the body's "message" field when present and fallback otherwise.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &gateway.Error{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(data, fallback),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// extractMessage pulls the optional "message" field out of an error body.
func extractMessage(data []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && strings.TrimSpace(body.Message) != "" {
		return body.Message
	}
	return fallback
}
