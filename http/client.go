// Package http implements the refdeck remote service interfaces against the
// Research Bookmarks JSON API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/jbartnik/refdeck"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond limits client-side request rate against the API.
// Burst of 1: interactive commands issue a handful of calls, no bursting.
const DefaultRequestsPerSecond = 5.0

// Client talks to the Research Bookmarks API. It implements every remote
// service interface in the refdeck package; a single instance is shared by
// all commands.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit sets the client-side requests-per-second limit.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one API request and decodes the JSON response into out when out
// is non-nil. Request bodies are JSON-encoded from in when in is non-nil.
// Failures are mapped onto the refdeck error taxonomy; the server's detail
// message is preserved where one is supplied.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return mapTransportError(err)
	}

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return refdeck.Errorf(refdeck.EINTERNAL, "malformed response from server: %v", err)
	}
	return nil
}

// mapTransportError turns connection and timeout failures into EUNAVAILABLE
// so commands can present them as a retryable condition.
func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return refdeck.Errorf(refdeck.EUNAVAILABLE, "request timed out")
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return refdeck.Errorf(refdeck.EUNAVAILABLE, "request timed out")
	}
	return refdeck.Errorf(refdeck.EUNAVAILABLE, "cannot reach server: %v", err)
}

// errorBody is the FastAPI error envelope. Detail is either a plain string
// or an object; conflict responses nest the already-saved article.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type conflictDetail struct {
	Error           string `json:"error"`
	ExistingArticle struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		CreatedAt string `json:"created_at"`
	} `json:"existing_article"`
}

// decodeError maps a non-2xx response onto the error taxonomy.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	detail := decodeDetail(raw)

	switch resp.StatusCode {
	case http.StatusNotFound:
		if detail == "" {
			detail = "not found"
		}
		return refdeck.Errorf(refdeck.ENOTFOUND, "%s", detail)
	case http.StatusConflict:
		if detail == "" {
			detail = "already saved"
		}
		return refdeck.Errorf(refdeck.ECONFLICT, "%s", detail)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if detail == "" {
			detail = "invalid request"
		}
		return refdeck.Errorf(refdeck.EINVALID, "%s", detail)
	default:
		if detail == "" {
			detail = fmt.Sprintf("server returned HTTP %d", resp.StatusCode)
		}
		return refdeck.Errorf(refdeck.EINTERNAL, "%s", detail)
	}
}

// decodeDetail extracts a printable message from the error envelope.
func decodeDetail(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var cd conflictDetail
	if err := json.Unmarshal(body.Detail, &cd); err == nil && cd.Error != "" {
		if cd.ExistingArticle.ID != "" {
			title := cd.ExistingArticle.Title
			if title == "" {
				title = cd.ExistingArticle.ID
			}
			return fmt.Sprintf("%s (saved as %q)", cd.Error, title)
		}
		return cd.Error
	}

	return string(body.Detail)
}
