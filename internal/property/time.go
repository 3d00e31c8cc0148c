package property

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/imamik/gcontainer/internal/util/ptr"
)

// ErrInvalidTime is returned when a value cannot be interpreted as a timestamp.
var ErrInvalidTime = errors.New("invalid timestamp")

// TimeFromAPI parses a timestamp field of an API response.
// The API emits RFC 3339 strings, optionally with fractional seconds.
func TimeFromAPI(raw any) (*time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return ptr.Time(*v), nil
	case string:
		if v == "" {
			return nil, nil
		}
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidTime, v, err)
		}
		return &t, nil
	default:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidTime, raw)
	}
}

// TimeFromCatalog parses a timestamp field of a catalog entry.
// YAML timestamps arrive as time.Time already; strings in any layout
// understood by cast and integer unix seconds are accepted too.
func TimeFromCatalog(raw any) (*time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return ptr.Time(*v), nil
	case string:
		if v == "" {
			return nil, nil
		}
	case map[string]any, []any:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidTime, raw)
	}

	t, err := cast.ToTimeE(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTime, err)
	}
	return &t, nil
}
