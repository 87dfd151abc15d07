package tools

import "encoding/json"

// Result is the tagged outcome of a tool invocation. Success carries the
// decoded payload; failure carries an error kind and a message. Neither
// shape propagates as a fault out of the dispatcher.
type Result struct {
	OK      bool
	Value   any
	Kind    ErrKind
	Message string
}

// Success wraps a payload in a successful result.
func Success(value any) Result {
	return Result{OK: true, Value: value}
}

// Failure wraps an error kind and message in a failed result.
func Failure(kind ErrKind, message string) Result {
	return Result{OK: false, Kind: kind, Message: message}
}

// Text flattens the result for transports that carry a single string
// payload: pretty-printed JSON on success, an "Error: " prefixed message
// on failure.
func (r Result) Text() string {
	if !r.OK {
		return "Error: " + r.Message
	}
	data, err := json.MarshalIndent(r.Value, "", "  ")
	if err != nil {
		return "Error: failed to serialize result: " + err.Error()
	}
	return string(data)
}
