package mcp

import (
	"context"
	"log/slog"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context carrying the request correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID extracts the request correlation ID, or "" when none is set.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

// LogToolRequest logs an incoming tool invocation with structured fields
func LogToolRequest(ctx context.Context, logger *slog.Logger, tool string) {
	logger.InfoContext(ctx, "tool_request",
		"component", "mcp-server",
		"tool_name", tool,
		"correlation_id", CorrelationID(ctx),
	)
}

// LogToolSuccess logs successful tool execution with latency
func LogToolSuccess(ctx context.Context, logger *slog.Logger, tool string, latencyMS int64) {
	logger.InfoContext(ctx, "tool_success",
		"component", "mcp-server",
		"tool_name", tool,
		"correlation_id", CorrelationID(ctx),
		"latency_ms", latencyMS,
	)
}

// LogToolError logs a failed tool execution with its failure kind
func LogToolError(ctx context.Context, logger *slog.Logger, tool string, kind string, errorMsg string) {
	logger.ErrorContext(ctx, "tool_error",
		"component", "mcp-server",
		"tool_name", tool,
		"correlation_id", CorrelationID(ctx),
		"error_kind", kind,
		"error_message", errorMsg,
	)
}
