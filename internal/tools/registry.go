package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"polygonmcp/internal/instrumentation"
	"polygonmcp/internal/polygon"
)

// Getter performs upstream market-data requests. *polygon.Client satisfies
// it; tests substitute stubs.
type Getter interface {
	Get(ctx context.Context, req *polygon.Request) (any, error)
}

// Registry holds the tool catalog and dispatches invocations. Descriptors
// are validated once at registration; invocation only coerces arguments.
type Registry struct {
	order   []*Descriptor
	tools   map[string]*Descriptor
	client  Getter
	metrics *instrumentation.Metrics
}

// NewRegistry returns an empty registry backed by the given upstream client.
func NewRegistry(client Getter, metrics *instrumentation.Metrics) *Registry {
	return &Registry{
		tools:   make(map[string]*Descriptor),
		client:  client,
		metrics: metrics,
	}
}

// Register adds a descriptor after validating its parameter contract and
// compiling its generated input schema. Names must be unique.
func (r *Registry) Register(d *Descriptor) error {
	if d.Name == "" {
		return errors.New("descriptor has no name")
	}
	if _, exists := r.tools[d.Name]; exists {
		return &DuplicateNameError{Name: d.Name}
	}
	if err := validateDescriptor(d); err != nil {
		return fmt.Errorf("tool %q: %w", d.Name, err)
	}
	if err := compileSchema(d.Name, d.InputSchema()); err != nil {
		return fmt.Errorf("tool %q: %w", d.Name, err)
	}
	r.tools[d.Name] = d
	r.order = append(r.order, d)
	return nil
}

func validateDescriptor(d *Descriptor) error {
	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if p.Name == "" {
			return errors.New("parameter has no name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate parameter %q", p.Name)
		}
		seen[p.Name] = true
		switch p.Type {
		case TypeString, TypeInteger, TypeNumber, TypeBoolean, TypeDate, TypeEnum:
		default:
			return fmt.Errorf("parameter %q has unknown type %q", p.Name, p.Type)
		}
		if p.Type == TypeEnum && len(p.Enum) == 0 {
			return fmt.Errorf("enum parameter %q has no values", p.Name)
		}
		if p.Type != TypeEnum && len(p.Enum) > 0 {
			return fmt.Errorf("parameter %q declares enum values but is not an enum", p.Name)
		}
		if p.Default != "" && p.Required {
			return fmt.Errorf("parameter %q is required and cannot carry a default", p.Name)
		}
		if d.Local == nil && d.Build == nil {
			switch p.In {
			case InPath:
				if !p.Required {
					return fmt.Errorf("path parameter %q must be required", p.Name)
				}
				if !strings.Contains(d.Path, "{"+p.Name+"}") {
					return fmt.Errorf("path %q has no placeholder for %q", d.Path, p.Name)
				}
			case InQuery:
			default:
				return fmt.Errorf("parameter %q has unknown placement %q", p.Name, p.In)
			}
		}
	}
	if d.Local == nil && d.Build == nil {
		if d.Path == "" {
			return errors.New("descriptor has no path")
		}
		if unresolved := unresolvedPlaceholders(d); len(unresolved) > 0 {
			return fmt.Errorf("path placeholders %v have no parameter", unresolved)
		}
	}
	return nil
}

// unresolvedPlaceholders lists {segments} in the path template with no
// matching path parameter.
func unresolvedPlaceholders(d *Descriptor) []string {
	pathParams := make(map[string]bool)
	for _, p := range d.Params {
		if p.In == InPath {
			pathParams[p.Name] = true
		}
	}
	var unresolved []string
	rest := d.Path
	for {
		start := strings.Index(rest, "{")
		if start < 0 {
			break
		}
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			unresolved = append(unresolved, rest[start:])
			break
		}
		name := rest[start+1 : start+end]
		if !pathParams[name] {
			unresolved = append(unresolved, name)
		}
		rest = rest[start+end+1:]
	}
	return unresolved
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.tools[name]
	return d, ok
}

// Descriptors returns the catalog in registration order.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Invoke runs a tool by name against raw call arguments. Tool-level problems
// (bad arguments, upstream failures) come back inside the Result; only an
// unknown name is a protocol fault and returns an error.
func (r *Registry) Invoke(ctx context.Context, name string, raw map[string]any) (Result, error) {
	d, ok := r.tools[name]
	if !ok {
		return Result{}, &UnknownToolError{Name: name}
	}
	r.metrics.RecordInvocation(name)

	args, err := d.coerceArgs(raw)
	if err != nil {
		return r.fail(name, ErrArgument, err), nil
	}

	if d.Local != nil {
		value, err := d.Local(args)
		if err != nil {
			return r.fail(name, ErrArgument, err), nil
		}
		return Success(value), nil
	}

	req, err := d.request(args)
	if err != nil {
		return r.fail(name, ErrArgument, err), nil
	}

	start := time.Now()
	payload, err := r.client.Get(ctx, req)
	r.metrics.RecordUpstreamLatency(name, time.Since(start).Seconds())
	if err != nil {
		return r.fail(name, classify(err), err), nil
	}

	if d.Transform != nil {
		payload, err = d.Transform(payload, args)
		if err != nil {
			return r.fail(name, ErrDecode, err), nil
		}
	}
	return Success(payload), nil
}

// classify maps an upstream error to its failure kind. Anything
// unrecognized counts as upstream: status errors, transport failures,
// timeouts, and cancellations all land there.
func classify(err error) ErrKind {
	if errors.Is(err, polygon.ErrNoCredential) {
		return ErrConfiguration
	}
	var decodeErr *polygon.DecodeError
	if errors.As(err, &decodeErr) {
		return ErrDecode
	}
	return ErrUpstream
}

func (r *Registry) fail(name string, kind ErrKind, err error) Result {
	r.metrics.RecordError(name, string(kind))
	return Failure(kind, err.Error())
}
