// Package gateway is the typed HTTP client for the exam backend. One method
// per backend capability, one HTTP call per method: no retries, no batching,
// no caching. The bearer token is attached whenever the caller holds one.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"examgen_client/listquery"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs one call and decodes the JSON response into out (out may be
// nil for endpoints whose body the caller does not need).
func (c *Client) do(ctx context.Context, op, method, path, token string, query url.Values, body, out any) error {
	data, err := c.doRaw(ctx, op, method, path, token, query, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: ErrorKindDecode, Op: op, Err: err}
	}
	return nil
}

// doRaw performs one call and returns the raw response body. Error statuses
// are mapped to ErrorKindBackend with the backend's message when the body
// carries one.
func (c *Client) doRaw(ctx context.Context, op, method, path, token string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Kind: ErrorKindDecode, Op: op, Err: fmt.Errorf("encoding request: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrorKindTransport, Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Kind:           ErrorKindBackend,
			Op:             op,
			StatusCode:     resp.StatusCode,
			BackendMessage: backendMessage(data),
		}
	}
	return data, nil
}

// backendMessage digs the human-readable reason out of an error body. The
// backend is not consistent about the field name.
func backendMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Details != "" {
		return body.Details
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// listParams translates a list query into the backend's SFWP parameter set.
// Unset fields are omitted, matching what the browser client sent.
func listParams(q listquery.Query) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("pageSize", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		params.Set("sortOrder", q.SortOrder)
	}
	for _, name := range []string{listquery.FilterLevel, listquery.FilterSubject, listquery.FilterDate} {
		if v := q.Filter(name); v != "" {
			params.Set(name, v)
		}
	}
	return params
}
