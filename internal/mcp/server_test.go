package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polygonmcp/internal/instrumentation"
	"polygonmcp/internal/polygon"
	"polygonmcp/internal/tickerindex"
	"polygonmcp/internal/tools"
)

// stubGetter satisfies tools.Getter with a canned payload or error.
type stubGetter struct {
	payload any
	err     error
	lastReq *polygon.Request
}

func (g *stubGetter) Get(_ context.Context, req *polygon.Request) (any, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.payload, nil
}

func newTestServer(t *testing.T, stub *stubGetter) (*Server, *instrumentation.Metrics) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := instrumentation.NewMetrics(prometheus.NewRegistry())

	registry, err := tools.NewDefaultRegistry(stub, metrics)
	require.NoError(t, err)

	index, err := tickerindex.NewIndex(tickerindex.SeedCatalog(), logger)
	require.NoError(t, err)

	return NewServer(registry, index, metrics, "1.2.3", logger), metrics
}

func request(id any, method string, params string) *JSONRPCRequest {
	req := &JSONRPCRequest{JSONRPC: "2.0", ID: id, Method: method}
	if params != "" {
		req.Params = json.RawMessage(params)
	}
	return req
}

func TestHandleInitialize(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(1, "initialize", ""))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)
	assert.Equal(t, 1, resp.ID)

	result, ok := resp.Result.(InitializeResult)
	require.True(t, ok)
	assert.Equal(t, "2024-11-05", result.ProtocolVersion)
	assert.Equal(t, "polygonserver", result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", result.ServerInfo.Version)
	assert.NotNil(t, result.Capabilities.Tools)
	assert.NotNil(t, result.Capabilities.Resources)
	assert.NotNil(t, result.Capabilities.Prompts)
}

func TestHandlePing(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request("ping-1", "ping", ""))
	require.NotNil(t, resp)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "ping-1", resp.ID)
}

func TestHandleToolsList(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	for _, method := range []string{"tools/list", "list_tools"} {
		resp := server.Handle(context.Background(), request(2, method, ""))
		require.NotNil(t, resp, method)
		require.Nil(t, resp.Error, method)

		result, ok := resp.Result.(ListToolsResult)
		require.True(t, ok)
		assert.Len(t, result.Tools, 31)
		assert.Equal(t, "stock_price", result.Tools[0].Name)
		assert.NotNil(t, result.Tools[0].InputSchema)
	}
}

func TestHandleToolCallSuccess(t *testing.T) {
	stub := &stubGetter{payload: map[string]any{
		"results": map[string]any{"name": "NVIDIA Corporation", "ticker": "NVDA"},
	}}
	server, metrics := newTestServer(t, stub)

	resp := server.Handle(context.Background(), request(3, "tools/call",
		`{"name":"stock_info","arguments":{"stock_ticker":"nvda"}}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(CallToolResult)
	require.True(t, ok)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	assert.JSONEq(t, `{"name":"NVIDIA Corporation","ticker":"NVDA"}`, result.Content[0].Text)

	assert.Equal(t, "/v3/reference/tickers/NVDA", stub.lastReq.Path)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.InvocationsTotal.WithLabelValues("stock_info")))
}

func TestHandleToolCallAlias(t *testing.T) {
	stub := &stubGetter{payload: map[string]any{"market": "open"}}
	server, _ := newTestServer(t, stub)

	resp := server.Handle(context.Background(), request(4, "call_tool",
		`{"name":"get_market_status"}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(CallToolResult)
	assert.False(t, result.IsError)
}

func TestHandleToolCallFailureRidesInResult(t *testing.T) {
	stub := &stubGetter{err: &polygon.StatusError{StatusCode: 502, Body: "bad gateway"}}
	server, _ := newTestServer(t, stub)

	resp := server.Handle(context.Background(), request(5, "tools/call",
		`{"name":"get_market_status"}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error, "tool-level failures are not protocol errors")

	result := resp.Result.(CallToolResult)
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: upstream returned status 502: bad gateway", result.Content[0].Text)
}

func TestHandleToolCallMissingArgument(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(6, "tools/call",
		`{"name":"get_previous_close","arguments":{}}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(CallToolResult)
	assert.True(t, result.IsError)
	assert.Equal(t, `Error: missing required argument "ticker"`, result.Content[0].Text)
}

func TestHandleToolCallUnknownTool(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(7, "tools/call",
		`{"name":"no_such_tool"}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, MethodNotFound, resp.Error.Code)
	assert.Equal(t, "Unknown tool", resp.Error.Message)
	assert.Equal(t, "no_such_tool", resp.Error.Data)
}

func TestHandleToolCallBadParams(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(8, "tools/call", ""))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, InvalidParams, resp.Error.Code)

	resp = server.Handle(context.Background(), request(9, "tools/call", `{"arguments":{}}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, InvalidParams, resp.Error.Code)
}

func TestHandleNotificationsProduceNoResponse(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	assert.Nil(t, server.Handle(context.Background(), request(nil, "notifications/initialized", "")))
	assert.Nil(t, server.Handle(context.Background(), request(nil, "notifications/cancelled", `{"requestId":1}`)))
}

func TestHandleUnknownMethod(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(10, "tools/destroy", ""))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, MethodNotFound, resp.Error.Code)
	assert.Equal(t, "Method not found: tools/destroy", resp.Error.Message)
}

func TestHandleResourcesList(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(11, "resources/list", ""))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(ListResourcesResult)
	assert.NotNil(t, result.Resources, "empty list, not null")
	assert.Empty(t, result.Resources)
}

func TestHandleResourceTemplatesList(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(12, "resources/templates/list", ""))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(ListResourceTemplatesResult)
	require.Len(t, result.ResourceTemplates, 1)
	assert.Equal(t, "tickers://search/{stock_name}", result.ResourceTemplates[0].URITemplate)
	assert.Equal(t, "ticker_search", result.ResourceTemplates[0].Name)
	assert.Equal(t, "application/json", result.ResourceTemplates[0].MimeType)
}

func TestHandleResourceRead(t *testing.T) {
	server, metrics := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(13, "resources/read",
		`{"uri":"tickers://search/Nvidia"}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(ReadResourceResult)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "tickers://search/Nvidia", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MimeType)

	var match struct {
		Query    string  `json:"query"`
		Ticker   string  `json:"ticker"`
		Name     string  `json:"name"`
		Distance float64 `json:"distance"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &match))
	assert.Equal(t, "Nvidia", match.Query)
	assert.Equal(t, "NVDA", match.Ticker)
	assert.NotEmpty(t, match.Name)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.IndexQueries))
}

func TestHandleResourceReadUnescapesName(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(14, "resources/read",
		`{"uri":"tickers://search/Bank%20of%20America"}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(ReadResourceResult)
	assert.Contains(t, result.Contents[0].Text, `"ticker":"BAC"`)
}

func TestHandleResourceReadUnknownScheme(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(15, "resources/read",
		`{"uri":"file:///etc/passwd"}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ResourceNotFound, resp.Error.Code)
	assert.Equal(t, "Resource not found", resp.Error.Message)
}

func TestHandleResourceReadEmptyName(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(16, "resources/read",
		`{"uri":"tickers://search/%20%20"}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, InvalidParams, resp.Error.Code)
	assert.Equal(t, "Empty stock name in resource URI", resp.Error.Message)
}

func TestHandleResourceReadMissingURI(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(17, "resources/read", `{}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, InvalidParams, resp.Error.Code)
}

func TestHandlePromptsList(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(18, "prompts/list", ""))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(ListPromptsResult)
	require.Len(t, result.Prompts, 1)
	assert.Equal(t, "stock_summary", result.Prompts[0].Name)
	require.Len(t, result.Prompts[0].Arguments, 1)
	assert.Equal(t, "stock_data", result.Prompts[0].Arguments[0].Name)
	assert.True(t, result.Prompts[0].Arguments[0].Required)
}

func TestHandlePromptGet(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(19, "prompts/get",
		`{"name":"stock_summary","arguments":{"stock_data":"NVDA closed at 481.68"}}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result := resp.Result.(GetPromptResult)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "user", result.Messages[0].Role)
	assert.Equal(t, "text", result.Messages[0].Content.Type)
	assert.Contains(t, result.Messages[0].Content.Text, "helpful financial assistant")
	assert.Contains(t, result.Messages[0].Content.Text, "NVDA closed at 481.68")
}

func TestHandlePromptGetUnknownName(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(20, "prompts/get",
		`{"name":"weather_report","arguments":{"stock_data":"x"}}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, InvalidParams, resp.Error.Code)
	assert.Equal(t, "Unknown prompt: weather_report", resp.Error.Message)
}

func TestHandlePromptGetMissingData(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	resp := server.Handle(context.Background(), request(21, "prompts/get",
		`{"name":"stock_summary"}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, InvalidParams, resp.Error.Code)
	assert.Equal(t, "Missing required argument 'stock_data'", resp.Error.Message)
}

func TestToolsExposeSchemas(t *testing.T) {
	server, _ := newTestServer(t, &stubGetter{})

	toolList := server.Tools()
	require.Len(t, toolList, 31)
	for _, tool := range toolList {
		assert.Equal(t, "object", tool.InputSchema["type"], "tool %s", tool.Name)
	}
}
