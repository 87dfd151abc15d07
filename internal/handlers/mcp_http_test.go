package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polygonmcp/internal/instrumentation"
	"polygonmcp/internal/mcp"
	"polygonmcp/internal/polygon"
	"polygonmcp/internal/tickerindex"
	"polygonmcp/internal/tools"
)

// stubGetter satisfies tools.Getter with a canned payload or error.
type stubGetter struct {
	payload any
	err     error
}

func (g *stubGetter) Get(_ context.Context, _ *polygon.Request) (any, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.payload, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, stub *stubGetter) *mcp.Server {
	t.Helper()
	logger := discardLogger()
	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())

	registry, err := tools.NewDefaultRegistry(stub, metrics)
	require.NoError(t, err)

	index, err := tickerindex.NewIndex(tickerindex.SeedCatalog(), logger)
	require.NoError(t, err)

	return mcp.NewServer(registry, index, metrics, "test", logger)
}

// decodeSSE extracts the JSON-RPC response from a single SSE frame.
func decodeSSE(t *testing.T, body string) *mcp.JSONRPCResponse {
	t.Helper()
	require.True(t, strings.HasPrefix(body, "data: "), "not an SSE frame: %q", body)
	require.True(t, strings.HasSuffix(body, "\n\n"), "unterminated SSE frame: %q", body)

	payload := strings.TrimSuffix(strings.TrimPrefix(body, "data: "), "\n\n")
	var resp mcp.JSONRPCResponse
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&resp))
	return &resp
}

func TestMCPHandlerAnswersOverSSE(t *testing.T) {
	handler := NewMCPHandler(newTestServer(t, &stubGetter{}), discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.True(t, rec.Flushed, "SSE events flush immediately")

	resp := decodeSSE(t, rec.Body.String())
	assert.Nil(t, resp.Error)
	assert.Equal(t, json.Number("1"), resp.ID)
}

func TestMCPHandlerToolCall(t *testing.T) {
	stub := &stubGetter{payload: map[string]any{"market": "open"}}
	handler := NewMCPHandler(newTestServer(t, stub), discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		strings.NewReader(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"get_market_status"}}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := decodeSSE(t, rec.Body.String())
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(map[string]any)
	require.True(t, ok)
	content := result["content"].([]any)
	first := content[0].(map[string]any)
	assert.JSONEq(t, `{"market":"open"}`, first["text"].(string))
	_, isError := result["isError"]
	assert.False(t, isError, "isError is omitted on success")
}

func TestMCPHandlerRejectsNonPOST(t *testing.T) {
	handler := NewMCPHandler(newTestServer(t, &stubGetter{}), discardLogger())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/mcp", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
	}
}

func TestMCPHandlerNotificationsGet202(t *testing.T) {
	handler := NewMCPHandler(newTestServer(t, &stubGetter{}), discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		strings.NewReader(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Zero(t, rec.Body.Len(), "notifications carry no event stream")
	assert.NotEqual(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

func TestMCPHandlerMalformedJSON(t *testing.T) {
	handler := NewMCPHandler(newTestServer(t, &stubGetter{}), discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, "parse errors ride the SSE stream")
	resp := decodeSSE(t, rec.Body.String())
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.ParseError, resp.Error.Code)
}

func TestMCPHandlerInvalidVersion(t *testing.T) {
	handler := NewMCPHandler(newTestServer(t, &stubGetter{}), discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		strings.NewReader(`{"jsonrpc":"1.0","id":1,"method":"ping"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := decodeSSE(t, rec.Body.String())
	require.NotNil(t, resp.Error)
	assert.Equal(t, mcp.InvalidRequest, resp.Error.Code)
}

func TestMCPHandlerFlushesThroughMiddleware(t *testing.T) {
	// The SSE writer reaches Flush via http.ResponseController, which must
	// unwrap the logging middleware's response writer.
	handler := NewMCPHandler(newTestServer(t, &stubGetter{}), discardLogger())
	wrapped := LoggingMiddleware(discardLogger())(handler)

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, rec.Flushed, "flush must reach the recorder through the wrapper")
	resp := decodeSSE(t, rec.Body.String())
	assert.Nil(t, resp.Error)
}
