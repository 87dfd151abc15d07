package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"polygonmcp/internal/instrumentation"
	"polygonmcp/internal/tickerindex"
	"polygonmcp/internal/tools"
)

// serverName identifies this implementation in the initialize handshake.
const serverName = "polygonserver"

// tickerSearchTemplate is the advertised resource URI template; reads match
// its tickerSearchPrefix.
const (
	tickerSearchTemplate = "tickers://search/{stock_name}"
	tickerSearchPrefix   = "tickers://search/"
)

const stockSummaryPrompt = "stock_summary"

// TickerSearcher answers nearest-name ticker lookups. *tickerindex.Index
// satisfies it.
type TickerSearcher interface {
	Nearest(text string) (tickerindex.Match, error)
}

// Server dispatches MCP methods to the tool registry and the ticker index.
// It is transport-agnostic: HTTP and stdio front ends both feed requests
// through Handle.
type Server struct {
	registry *tools.Registry
	index    TickerSearcher
	metrics  *instrumentation.Metrics
	version  string
	logger   *slog.Logger
}

// NewServer wires the protocol layer to its collaborators.
func NewServer(registry *tools.Registry, index TickerSearcher, metrics *instrumentation.Metrics, version string, logger *slog.Logger) *Server {
	return &Server{
		registry: registry,
		index:    index,
		metrics:  metrics,
		version:  version,
		logger:   logger,
	}
}

// Tools returns the advertised tool catalog in registration order.
func (s *Server) Tools() []Tool {
	descriptors := s.registry.Descriptors()
	out := make([]Tool, len(descriptors))
	for i, d := range descriptors {
		out[i] = Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: d.InputSchema(),
		}
	}
	return out
}

// Handle processes one JSON-RPC request and returns its response.
// Notifications return nil: they have no response by definition. The legacy
// method names list_tools and call_tool are accepted as aliases.
func (s *Server) Handle(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	if strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "ping":
		return NewJSONRPCResult(req.ID, struct{}{})
	case "tools/list", "list_tools":
		return NewJSONRPCResult(req.ID, ListToolsResult{Tools: s.Tools()})
	case "tools/call", "call_tool":
		return s.handleToolCall(ctx, req)
	case "resources/list":
		return NewJSONRPCResult(req.ID, ListResourcesResult{Resources: []Resource{}})
	case "resources/templates/list":
		return NewJSONRPCResult(req.ID, ListResourceTemplatesResult{
			ResourceTemplates: s.resourceTemplates(),
		})
	case "resources/read":
		return s.handleResourceRead(ctx, req)
	case "prompts/list":
		return NewJSONRPCResult(req.ID, ListPromptsResult{Prompts: s.prompts()})
	case "prompts/get":
		return s.handlePromptGet(req)
	default:
		return NewJSONRPCError(req.ID, MethodNotFound,
			fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

func (s *Server) handleInitialize(req *JSONRPCRequest) *JSONRPCResponse {
	return NewJSONRPCResult(req.ID, InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Tools:     &ToolsCapability{},
			Resources: &ResourcesCapability{},
			Prompts:   &PromptsCapability{},
		},
		ServerInfo: ServerInfo{
			Name:    serverName,
			Version: s.version,
		},
	})
}

// handleToolCall runs a tool and wraps its result as MCP content. Tool-level
// failures ride inside the result with isError set; only an unknown tool
// name is a protocol fault.
func (s *Server) handleToolCall(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	params, perr := ParseCallToolParams(req.Params)
	if perr != nil {
		return responseFromError(req.ID, perr)
	}

	LogToolRequest(ctx, s.logger, params.Name)
	start := time.Now()

	result, err := s.registry.Invoke(ctx, params.Name, params.Arguments)
	if err != nil {
		var unknown *tools.UnknownToolError
		if errors.As(err, &unknown) {
			LogToolError(ctx, s.logger, params.Name, "protocol", err.Error())
			return NewJSONRPCError(req.ID, MethodNotFound, "Unknown tool", params.Name)
		}
		LogToolError(ctx, s.logger, params.Name, "internal", err.Error())
		return NewJSONRPCError(req.ID, InternalError, err.Error(), nil)
	}

	if result.OK {
		LogToolSuccess(ctx, s.logger, params.Name, time.Since(start).Milliseconds())
	} else {
		LogToolError(ctx, s.logger, params.Name, string(result.Kind), result.Message)
	}

	return NewJSONRPCResult(req.ID, CallToolResult{
		Content: []TextContent{{Type: "text", Text: result.Text()}},
		IsError: !result.OK,
	})
}

func (s *Server) resourceTemplates() []ResourceTemplate {
	return []ResourceTemplate{
		{
			URITemplate: tickerSearchTemplate,
			Name:        "ticker_search",
			Description: "Find a stock ticker by passing through a stock name, e.g. Google or Bank of America. Returns the nearest match from a similarity search.",
			MimeType:    "application/json",
		},
	}
}

type tickerSearchResult struct {
	Query    string  `json:"query"`
	Ticker   string  `json:"ticker"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

func (s *Server) handleResourceRead(ctx context.Context, req *JSONRPCRequest) *JSONRPCResponse {
	params, perr := ParseReadResourceParams(req.Params)
	if perr != nil {
		return responseFromError(req.ID, perr)
	}

	raw, ok := strings.CutPrefix(params.URI, tickerSearchPrefix)
	if !ok {
		return NewJSONRPCError(req.ID, ResourceNotFound, "Resource not found", params.URI)
	}
	name, err := url.PathUnescape(raw)
	if err != nil {
		return NewJSONRPCError(req.ID, InvalidParams, "Invalid resource URI encoding", err.Error())
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return NewJSONRPCError(req.ID, InvalidParams, "Empty stock name in resource URI", params.URI)
	}

	s.metrics.RecordIndexQuery()
	match, err := s.index.Nearest(name)
	if err != nil {
		s.logger.ErrorContext(ctx, "ticker_search_failed",
			"component", "mcp-server",
			"query", name,
			"correlation_id", CorrelationID(ctx),
			"error_message", err.Error(),
		)
		return NewJSONRPCError(req.ID, InternalError,
			fmt.Sprintf("Ticker search failed: %s", err), nil)
	}

	payload, err := json.Marshal(tickerSearchResult{
		Query:    name,
		Ticker:   match.Ticker,
		Name:     match.Name,
		Distance: match.Distance,
	})
	if err != nil {
		return NewJSONRPCError(req.ID, InternalError, err.Error(), nil)
	}

	return NewJSONRPCResult(req.ID, ReadResourceResult{
		Contents: []ResourceContents{
			{URI: params.URI, MimeType: "application/json", Text: string(payload)},
		},
	})
}

func (s *Server) prompts() []Prompt {
	return []Prompt{
		{
			Name:        stockSummaryPrompt,
			Description: "Prompt template for summarising stock price",
			Arguments: []PromptArgument{
				{Name: "stock_data", Description: "Stock data to summarise", Required: true},
			},
		},
	}
}

func (s *Server) handlePromptGet(req *JSONRPCRequest) *JSONRPCResponse {
	params, perr := ParseGetPromptParams(req.Params)
	if perr != nil {
		return responseFromError(req.ID, perr)
	}

	if params.Name != stockSummaryPrompt {
		return NewJSONRPCError(req.ID, InvalidParams,
			fmt.Sprintf("Unknown prompt: %s", params.Name), nil)
	}
	stockData := params.Arguments["stock_data"]
	if stockData == "" {
		return NewJSONRPCError(req.ID, InvalidParams,
			"Missing required argument 'stock_data'", nil)
	}

	text := fmt.Sprintf("You are a helpful financial assistant designed to summarise stock data.\n"+
		"Using the information below, summarise the pertinent points relevant to stock price movement\n"+
		"Data %s", stockData)

	return NewJSONRPCResult(req.ID, GetPromptResult{
		Description: "Prompt template for summarising stock price",
		Messages: []PromptMessage{
			{Role: "user", Content: TextContent{Type: "text", Text: text}},
		},
	})
}

// responseFromError converts a parser error to a JSON-RPC response,
// preserving the code when the error is already an RPCError.
func responseFromError(id interface{}, err error) *JSONRPCResponse {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return &JSONRPCResponse{JSONRPC: "2.0", ID: id, Error: rpcErr}
	}
	return NewJSONRPCError(id, InternalError, err.Error(), nil)
}
