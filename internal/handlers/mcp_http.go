package handlers

import (
	"log/slog"
	"net/http"

	"polygonmcp/internal/mcp"
)

// MCPHandler answers MCP JSON-RPC requests over SSE transport: one request
// per POST, one response event per request.
type MCPHandler struct {
	server *mcp.Server
	logger *slog.Logger
}

// NewMCPHandler creates the POST /mcp handler.
func NewMCPHandler(server *mcp.Server, logger *slog.Logger) *MCPHandler {
	return &MCPHandler{
		server: server,
		logger: logger,
	}
}

// ServeHTTP handles POST /mcp requests.
func (h *MCPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	correlationID := mcp.CorrelationID(r.Context())

	// Parse before committing to SSE: notifications acknowledge with a bare
	// 202 and no event stream.
	req, err := mcp.ParseJSONRPCRequest(r.Body)
	if err != nil {
		sseWriter, sseErr := mcp.NewSSEWriter(w)
		if sseErr != nil {
			h.logger.Error("sse_init_failed", "error", sseErr, "correlation_id", correlationID)
			http.Error(w, "SSE initialization failed", http.StatusInternalServerError)
			return
		}
		if rpcErr, ok := err.(*mcp.RPCError); ok {
			sseWriter.SendError(nil, rpcErr.Code, rpcErr.Message, rpcErr.Data)
			return
		}
		sseWriter.SendError(nil, mcp.ParseError, "Invalid request", err.Error())
		return
	}

	resp := h.server.Handle(r.Context(), req)
	if resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	sseWriter, err := mcp.NewSSEWriter(w)
	if err != nil {
		h.logger.Error("sse_init_failed", "error", err, "correlation_id", correlationID)
		http.Error(w, "SSE initialization failed", http.StatusInternalServerError)
		return
	}
	if err := sseWriter.SendEvent(resp); err != nil {
		h.logger.Error("sse_send_failed",
			"error", err,
			"method", req.Method,
			"correlation_id", correlationID,
		)
	}
}
