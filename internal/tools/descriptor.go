package tools

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"polygonmcp/internal/polygon"
)

// Type is the semantic type of a tool parameter. It drives both coercion and
// the generated JSON schema.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeDate    Type = "date"
	TypeEnum    Type = "enum"
)

// Placement of a parameter in the upstream request.
const (
	InPath  = "path"
	InQuery = "query"
)

// Param declares one tool parameter: its name, type, placement, and the
// handling rules the registry applies before any request is built.
type Param struct {
	Name        string
	Key         string // upstream query key when it differs from Name
	Type        Type
	Description string
	Required    bool
	Default     string // transport-form default, sent whenever omitted
	Enum        []string
	In          string
	Uppercase   bool
}

// queryKey is the key used in the upstream query string.
func (p Param) queryKey() string {
	if p.Key != "" {
		return p.Key
	}
	return p.Name
}

// Descriptor declares one tool. Most tools are fully declarative: a path
// template plus parameter placements. Build overrides request construction,
// Transform post-processes the decoded payload, and Local answers without an
// upstream call at all.
type Descriptor struct {
	Name        string
	Description string
	Path        string
	Params      []Param
	FixedQuery  url.Values
	Build       func(args Args) (*polygon.Request, error)
	Transform   func(payload any, args Args) (any, error)
	Local       func(args Args) (any, error)
}

// request renders an upstream request from coerced arguments. Path
// placeholders are substituted positionally by name; query parameters are
// included only when present in args, so omitted optionals never reach the
// wire. Fixed query pairs are always sent.
func (d *Descriptor) request(args Args) (*polygon.Request, error) {
	if d.Build != nil {
		return d.Build(args)
	}
	path := d.Path
	query := url.Values{}
	for key, values := range d.FixedQuery {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	for _, p := range d.Params {
		value, ok := args[p.Name]
		if !ok {
			continue
		}
		switch p.In {
		case InPath:
			placeholder := "{" + p.Name + "}"
			if !strings.Contains(path, placeholder) {
				return nil, fmt.Errorf("path %q has no placeholder for %q", d.Path, p.Name)
			}
			path = strings.ReplaceAll(path, placeholder, url.PathEscape(value))
		case InQuery:
			query.Set(p.queryKey(), value)
		default:
			return nil, fmt.Errorf("parameter %q has unknown placement %q", p.Name, p.In)
		}
	}
	return &polygon.Request{Path: path, Query: query}, nil
}

// InputSchema generates the JSON schema advertised for this tool. The
// required list follows declaration order.
func (d *Descriptor) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Params))
	required := []string{}
	for _, p := range d.Params {
		prop := map[string]any{
			"type":        jsonType(p.Type),
			"description": p.Description,
		}
		if p.Type == TypeDate {
			prop["format"] = "date"
		}
		if len(p.Enum) > 0 {
			enum := make([]any, len(p.Enum))
			for i, v := range p.Enum {
				enum[i] = v
			}
			prop["enum"] = enum
		}
		if p.Default != "" {
			prop["default"] = defaultValue(p)
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func jsonType(t Type) string {
	switch t {
	case TypeDate, TypeEnum:
		return "string"
	default:
		return string(t)
	}
}

// defaultValue renders a transport-form default in its JSON type so the
// advertised schema stays honest about what the server sends.
func defaultValue(p Param) any {
	switch p.Type {
	case TypeBoolean:
		return p.Default == "true"
	case TypeInteger:
		if i, err := strconv.ParseInt(p.Default, 10, 64); err == nil {
			return i
		}
		return p.Default
	case TypeNumber:
		if f, err := strconv.ParseFloat(p.Default, 64); err == nil {
			return f
		}
		return p.Default
	default:
		return p.Default
	}
}
