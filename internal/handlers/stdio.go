package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"polygonmcp/internal/mcp"
)

// StdioServer runs the MCP session over a reader/writer pair as
// newline-delimited JSON-RPC: one message per line in, one response per
// request out. Notifications produce no output.
type StdioServer struct {
	server *mcp.Server
	logger *slog.Logger
}

// NewStdioServer creates the stdio transport front end.
func NewStdioServer(server *mcp.Server, logger *slog.Logger) *StdioServer {
	return &StdioServer{
		server: server,
		logger: logger,
	}
}

// Serve processes requests until EOF, which ends the session cleanly.
// Malformed JSON gets a ParseError response and ends the session, because
// message framing can no longer be trusted afterward.
func (s *StdioServer) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	enc := json.NewEncoder(w)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var req mcp.JSONRPCRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.logger.Error("stdio_decode_failed", "error", err)
			enc.Encode(mcp.NewJSONRPCError(nil, mcp.ParseError, "Invalid JSON", err.Error()))
			return err
		}

		if req.JSONRPC != "2.0" || req.Method == "" {
			if err := enc.Encode(mcp.NewJSONRPCError(req.ID, mcp.InvalidRequest, "Invalid JSON-RPC request", nil)); err != nil {
				return err
			}
			continue
		}

		resp := s.server.Handle(ctx, &req)
		if resp == nil {
			continue
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
}
