package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Args holds coerced arguments in transport form, keyed by parameter name.
// Values are the exact strings placed into the request path or query.
type Args map[string]string

// coerceArgs applies the declared parameter contract to raw call arguments.
// Required-and-absent is an error; omitted optionals stay absent (absence is
// not false or empty); declared defaults are always filled in.
func (d *Descriptor) coerceArgs(raw map[string]any) (Args, error) {
	args := make(Args, len(d.Params))
	for _, p := range d.Params {
		value, ok := raw[p.Name]
		if !ok || value == nil {
			if p.Required {
				return nil, &MissingArgumentError{Name: p.Name}
			}
			if p.Default != "" {
				args[p.Name] = p.Default
			}
			continue
		}
		coerced, err := p.coerce(value)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", p.Name, err)
		}
		args[p.Name] = coerced
	}
	return args, nil
}

// coerce converts one raw argument to its transport string per the declared
// semantic type.
func (p Param) coerce(value any) (string, error) {
	switch p.Type {
	case TypeString:
		s, err := asString(value)
		if err != nil {
			return "", err
		}
		if p.Uppercase {
			s = strings.ToUpper(s)
		}
		return s, nil
	case TypeInteger:
		return asIntString(value)
	case TypeNumber:
		return asNumberString(value)
	case TypeBoolean:
		return asBoolString(value)
	case TypeDate:
		return asDateString(value)
	case TypeEnum:
		s, err := asString(value)
		if err != nil {
			return "", err
		}
		for _, allowed := range p.Enum {
			if strings.EqualFold(s, allowed) {
				return allowed, nil
			}
		}
		return "", fmt.Errorf("invalid value %q, must be one of: %s", s, strings.Join(p.Enum, ", "))
	default:
		return "", fmt.Errorf("unsupported parameter type %q", p.Type)
	}
}

func asString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("expected a string, got %T", value)
	}
}

func asIntString(value any) (string, error) {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		return "", fmt.Errorf("expected an integer, got %s", v.String())
	case float64:
		if v != math.Trunc(v) {
			return "", fmt.Errorf("expected an integer, got %v", v)
		}
		return strconv.FormatInt(int64(v), 10), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case string:
		if _, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return "", fmt.Errorf("expected an integer, got %q", v)
		}
		return strings.TrimSpace(v), nil
	default:
		return "", fmt.Errorf("expected an integer, got %T", value)
	}
}

func asNumberString(value any) (string, error) {
	switch v := value.(type) {
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return "", fmt.Errorf("expected a number, got %q", v)
		}
		return trimmed, nil
	default:
		return "", fmt.Errorf("expected a number, got %T", value)
	}
}

// asBoolString serializes booleans as lowercase "true"/"false" for transport.
func asBoolString(value any) (string, error) {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return "", fmt.Errorf("expected a boolean, got %q", v)
		}
		return strconv.FormatBool(parsed), nil
	default:
		return "", fmt.Errorf("expected a boolean, got %T", value)
	}
}

// asDateString normalizes ISO-8601 strings and epoch values to YYYY-MM-DD.
// Instants normalize to their UTC calendar date.
func asDateString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return parseDateString(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return epochToTime(i).Format(dateLayout), nil
		}
		f, err := v.Float64()
		if err != nil {
			return "", fmt.Errorf("expected a date, got %s", v.String())
		}
		return epochToTime(int64(f)).Format(dateLayout), nil
	case float64:
		return epochToTime(int64(v)).Format(dateLayout), nil
	case int:
		return epochToTime(int64(v)).Format(dateLayout), nil
	case int64:
		return epochToTime(v).Format(dateLayout), nil
	default:
		return "", fmt.Errorf("expected a date, got %T", value)
	}
}

func parseDateString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty date")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return epochToTime(n).Format(dateLayout), nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(dateLayout), nil
		}
	}
	return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD or an epoch value", s)
}

// epochThreshold separates epoch seconds from epoch milliseconds: values at
// or above 1e11 cannot be plausible second counts (year 5138) and are read
// as milliseconds.
const epochThreshold = int64(1e11)

func epochToTime(n int64) time.Time {
	if n >= epochThreshold || n <= -epochThreshold {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

// parseInstant accepts epoch seconds or milliseconds, or an ISO-8601
// timestamp, and returns the instant it names.
func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return epochToTime(n), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return epochToTime(int64(f)), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q, want epoch seconds or ISO-8601", s)
}

// asInt64 reads a numeric payload field decoded with json.Decoder.UseNumber.
func asInt64(value any) (int64, error) {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}
