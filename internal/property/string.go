package property

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/imamik/gcontainer/internal/util/ptr"
)

// ErrInvalidString is returned when a value has no scalar string form.
var ErrInvalidString = errors.New("invalid string")

// StringFromAPI parses a string field of an API response.
func StringFromAPI(raw any) (*string, error) {
	return parseString(raw)
}

// StringFromCatalog parses a string field of a catalog entry. Unquoted YAML
// scalars such as numbers and booleans are converted to their string form.
func StringFromCatalog(raw any) (*string, error) {
	return parseString(raw)
}

func parseString(raw any) (*string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return &v, nil
	case *string:
		if v == nil {
			return nil, nil
		}
		return ptr.String(*v), nil
	case time.Time:
		// YAML resolves unquoted dates before the field is seen.
		return ptr.String(v.Format(time.RFC3339Nano)), nil
	case map[string]any, []any:
		return nil, fmt.Errorf("%w: unexpected type %T", ErrInvalidString, raw)
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidString, err)
	}
	return &s, nil
}
