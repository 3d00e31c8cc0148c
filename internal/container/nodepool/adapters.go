package nodepool

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/imamik/gcontainer/internal/property"
)

// ErrUnsupportedPayload is returned by the parse functions for input kinds
// that are neither a payload nor an already parsed record.
var ErrUnsupportedPayload = errors.New("upgrade options: unsupported payload")

// FromAPIPayload builds a record from a decoded API response. Errors from
// the field parsers are returned as is.
func FromAPIPayload(payload map[string]any) (*UpgradeOptions, error) {
	start, err := property.TimeFromAPI(payload[APIFieldAutoUpgradeStartTime])
	if err != nil {
		return nil, err
	}
	description, err := property.StringFromAPI(payload[APIFieldDescription])
	if err != nil {
		return nil, err
	}
	return NewUpgradeOptions(start, description), nil
}

// FromCatalogPayload builds a record from a decoded catalog entry. Errors
// from the field parsers are returned as is.
func FromCatalogPayload(payload map[string]any) (*UpgradeOptions, error) {
	start, err := property.TimeFromCatalog(payload[CatalogFieldAutoUpgradeStartTime])
	if err != nil {
		return nil, err
	}
	description, err := property.StringFromCatalog(payload[CatalogFieldDescription])
	if err != nil {
		return nil, err
	}
	return NewUpgradeOptions(start, description), nil
}

// ParseFromAPI normalizes v into a record. v may be nil, an already parsed
// record, a decoded API payload or raw JSON. A nil input yields a nil
// record and a parsed record is returned unchanged.
func ParseFromAPI(v any) (*UpgradeOptions, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case *UpgradeOptions:
		return p, nil
	case UpgradeOptions:
		return &p, nil
	case map[string]any:
		if p == nil {
			return nil, nil
		}
		return FromAPIPayload(p)
	case json.RawMessage:
		return ParseFromAPI([]byte(p))
	case []byte:
		var payload map[string]any
		if err := json.Unmarshal(p, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode upgrade options: %w", err)
		}
		return ParseFromAPI(payload)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPayload, v)
	}
}

// ParseFromCatalog normalizes v into a record. v may be nil, an already
// parsed record, a decoded catalog entry or raw YAML.
func ParseFromCatalog(v any) (*UpgradeOptions, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case *UpgradeOptions:
		return p, nil
	case UpgradeOptions:
		return &p, nil
	case map[string]any:
		if p == nil {
			return nil, nil
		}
		return FromCatalogPayload(p)
	case []byte:
		var doc yaml.Node
		if err := yaml.Unmarshal(p, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode upgrade options: %w", err)
		}
		payload, err := decodeCatalogNode(&doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode upgrade options: %w", err)
		}
		return ParseFromCatalog(payload)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPayload, v)
	}
}

// Coerce returns the catalog parser as a standalone conversion function for
// configuration decoders.
func Coerce() func(any) (*UpgradeOptions, error) {
	return func(v any) (*UpgradeOptions, error) {
		return ParseFromCatalog(v)
	}
}

// UnmarshalJSON decodes an API payload.
func (u *UpgradeOptions) UnmarshalJSON(data []byte) error {
	parsed, err := ParseFromAPI(data)
	if err != nil {
		return err
	}
	if parsed == nil {
		return nil
	}
	*u = *parsed
	return nil
}

// UnmarshalYAML decodes a catalog entry.
func (u *UpgradeOptions) UnmarshalYAML(node *yaml.Node) error {
	payload, err := decodeCatalogNode(node)
	if err != nil {
		return fmt.Errorf("failed to decode upgrade options: %w", err)
	}
	parsed, err := FromCatalogPayload(payload)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
