package tools

import "fmt"

// ErrKind classifies a failed invocation in the result envelope.
type ErrKind string

const (
	// ErrConfiguration marks a missing credential at invocation time.
	ErrConfiguration ErrKind = "configuration"
	// ErrArgument marks a bad or missing caller argument.
	ErrArgument ErrKind = "argument"
	// ErrUpstream marks a non-2xx status, timeout, or connection failure.
	ErrUpstream ErrKind = "upstream"
	// ErrDecode marks a malformed or unexpected upstream payload.
	ErrDecode ErrKind = "decode"
)

// UnknownToolError is the fault returned by Invoke for a name that was
// never registered. It is the one per-invocation error that does not
// convert into a result envelope.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Name)
}

// DuplicateNameError is the registration fault for a reused tool name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("tool %q is already registered", e.Name)
}

// MissingArgumentError marks a required argument the caller did not supply.
// It surfaces to callers inside an argument-kind result envelope.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Name)
}
