package polygon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// requestTimeout bounds every upstream call; there is no retry policy.
const requestTimeout = 20 * time.Second

// ErrNoCredential reports a missing API key at invocation time.
var ErrNoCredential = errors.New("POLYGON_API_KEY environment variable is not set")

// Request describes one upstream GET: a path and its query parameters.
// Built fresh per invocation and discarded after the call completes.
type Request struct {
	Path  string
	Query url.Values
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError reports a malformed JSON body from the upstream.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode upstream response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client issues authenticated GET requests against the Polygon REST API.
//
// The credential is appended to the encoded query exactly once, as the
// final parameter, and never written to logs or error messages.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger
}

// New creates a Polygon client. An empty apiKey is legal here; it becomes
// an error on the first Get.
func New(baseURL string, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: requestTimeout},
		logger:  logger.With("component", "polygon_client"),
	}
}

// Get performs the request and decodes the JSON body. Numbers are decoded
// as json.Number so payloads re-serialize without precision drift.
func (c *Client) Get(ctx context.Context, req *Request) (any, error) {
	if c.apiKey == "" {
		return nil, ErrNoCredential
	}

	query := req.Query.Encode()
	if query != "" {
		query += "&"
	}
	query += "apiKey=" + url.QueryEscape(c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+req.Path+"?"+query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", c.redact(err))
	}
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("polygon_request", "path", req.Path)

	start := time.Now()
	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, c.redact(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, &DecodeError{Err: err}
	}

	c.logger.Debug("polygon_response",
		"path", req.Path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	return payload, nil
}

// redact strips the credential from error text. Transport errors embed the
// full request URL, which carries the apiKey parameter.
func (c *Client) redact(err error) error {
	if c.apiKey == "" {
		return err
	}
	msg := strings.ReplaceAll(err.Error(), c.apiKey, "REDACTED")
	return errors.New(msg)
}
