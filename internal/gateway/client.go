// Package gateway binds the booking backend's REST surface, one method
// per endpoint. Calls are independent and at-most-once: no retries, no
// caching, no client-side timeout beyond the transport default.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

// Client talks to the booking backend.
type Client struct {
	base   string
	http   *http.Client
	logger *zap.Logger
}

// New constructs a Client for the given base URL.
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		http:   &http.Client{},
		logger: logger,
	}
}

// do issues one request and decodes a 2xx JSON body into out (when out is
// non-nil). Non-2xx responses become typed backend errors carrying the
// upstream status.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend unreachable", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, appErrors.ErrBackend.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("backend error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return &appErrors.Error{
			Code:    appErrors.ErrBackend.Code,
			Status:  resp.StatusCode,
			Message: backendMessage(resp.StatusCode, snippet),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackend.Code, appErrors.ErrBackend.Status, "decode response")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// backendMessage prefers the backend's plain-language message when the
// body carries one, falling back to a generic status line.
func backendMessage(status int, snippet []byte) string {
	var probe struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(snippet, &probe); err == nil {
		for _, m := range []string{probe.Message, probe.Error, probe.Detail} {
			if m != "" {
				return m
			}
		}
	}
	return fmt.Sprintf("booking service returned status %d", status)
}
