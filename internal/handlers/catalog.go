package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"polygonmcp/internal/mcp"
)

// CatalogHandler handles GET /mcp/tools requests: the advertised tool
// catalog as plain JSON, for human and ops inspection outside the MCP
// session flow.
type CatalogHandler struct {
	server *mcp.Server
	logger *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(server *mcp.Server, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		server: server,
		logger: logger.With("handler", "catalog"),
	}
}

// ServeHTTP handles the catalog request.
func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET requests are supported")
		return
	}

	tools := h.server.Tools()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mcp.ListToolsResult{Tools: tools}); err != nil {
		h.logger.Error("json_encode_failed", "error", err)
		return
	}

	h.logger.Debug("catalog_served", "tools", len(tools), "remote_addr", r.RemoteAddr)
}

// errorResponse is the JSON error body for the plain-HTTP endpoints.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// sendError sends a JSON error response.
func (h *CatalogHandler) sendError(w http.ResponseWriter, statusCode int, errorCode string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{
		Error:   errorCode,
		Message: message,
	})
}
