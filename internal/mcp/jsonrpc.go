package mcp

import (
	"bytes"
	"encoding/json"
	"io"
)

// ParseJSONRPCRequest parses a JSON-RPC 2.0 request from a reader
// Returns error for invalid JSON or malformed JSON-RPC requests
func ParseJSONRPCRequest(r io.Reader) (*JSONRPCRequest, error) {
	var req JSONRPCRequest
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return nil, &RPCError{
			Code:    ParseError,
			Message: "Invalid JSON",
			Data:    err.Error(),
		}
	}

	// Validate JSON-RPC 2.0 format
	if req.JSONRPC != "2.0" {
		return nil, &RPCError{
			Code:    InvalidRequest,
			Message: "Invalid JSON-RPC version (must be '2.0')",
			Data:    req.JSONRPC,
		}
	}

	if req.Method == "" {
		return nil, &RPCError{
			Code:    InvalidRequest,
			Message: "Missing 'method' field",
		}
	}

	return &req, nil
}

// ParseCallToolParams extracts tools/call parameters from JSON-RPC params.
// Numbers decode as json.Number so large values survive coercion unchanged.
func ParseCallToolParams(params json.RawMessage) (*CallToolParams, error) {
	if len(params) == 0 {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Missing parameters for tools/call",
		}
	}

	var toolParams CallToolParams
	dec := json.NewDecoder(bytes.NewReader(params))
	dec.UseNumber()
	if err := dec.Decode(&toolParams); err != nil {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Invalid tools/call parameters",
			Data:    err.Error(),
		}
	}

	if toolParams.Name == "" {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Missing 'name' field in tools/call parameters",
		}
	}

	return &toolParams, nil
}

// ParseReadResourceParams extracts resources/read parameters from JSON-RPC params
func ParseReadResourceParams(params json.RawMessage) (*ReadResourceParams, error) {
	if len(params) == 0 {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Missing parameters for resources/read",
		}
	}

	var readParams ReadResourceParams
	if err := json.Unmarshal(params, &readParams); err != nil {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Invalid resources/read parameters",
			Data:    err.Error(),
		}
	}

	if readParams.URI == "" {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Missing 'uri' field in resources/read parameters",
		}
	}

	return &readParams, nil
}

// ParseGetPromptParams extracts prompts/get parameters from JSON-RPC params
func ParseGetPromptParams(params json.RawMessage) (*GetPromptParams, error) {
	if len(params) == 0 {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Missing parameters for prompts/get",
		}
	}

	var promptParams GetPromptParams
	if err := json.Unmarshal(params, &promptParams); err != nil {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Invalid prompts/get parameters",
			Data:    err.Error(),
		}
	}

	if promptParams.Name == "" {
		return nil, &RPCError{
			Code:    InvalidParams,
			Message: "Missing 'name' field in prompts/get parameters",
		}
	}

	return &promptParams, nil
}

// NewJSONRPCError creates a JSON-RPC error response
func NewJSONRPCError(id interface{}, code int, message string, data interface{}) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// NewJSONRPCResult creates a JSON-RPC success response
func NewJSONRPCResult(id interface{}, result interface{}) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}
