package nodepool

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/imamik/gcontainer/internal/util/ptr"
)

// ErrIncomparable is returned by Compare when the other side is not an
// upgrade options record.
var ErrIncomparable = errors.New("upgrade options: incomparable values")

// API field names.
const (
	APIFieldAutoUpgradeStartTime = "autoUpgradeStartTime"
	APIFieldDescription          = "description"
)

// Catalog field names.
const (
	CatalogFieldAutoUpgradeStartTime = "auto_upgrade_start_time"
	CatalogFieldDescription          = "description"
)

// UpgradeOptions is the immutable record of a node pool's auto-upgrade
// options. Both fields are optional; an unset field is distinct from an
// empty one.
type UpgradeOptions struct {
	autoUpgradeStartTime *time.Time
	description          *string
}

// NewUpgradeOptions builds a record from already parsed field values.
// Nil arguments leave the corresponding field unset.
func NewUpgradeOptions(autoUpgradeStartTime *time.Time, description *string) *UpgradeOptions {
	u := &UpgradeOptions{}
	if autoUpgradeStartTime != nil {
		u.autoUpgradeStartTime = ptr.Time(*autoUpgradeStartTime)
	}
	if description != nil {
		u.description = ptr.String(*description)
	}
	return u
}

// AutoUpgradeStartTime returns the start of the auto-upgrade window and
// whether it is set.
func (u *UpgradeOptions) AutoUpgradeStartTime() (time.Time, bool) {
	if u == nil || u.autoUpgradeStartTime == nil {
		return time.Time{}, false
	}
	return *u.autoUpgradeStartTime, true
}

// Description returns the upgrade description and whether it is set.
func (u *UpgradeOptions) Description() (string, bool) {
	if u == nil {
		return "", false
	}
	return ptr.Deref(u.description, ""), u.description != nil
}

// Serialize returns the record in API shape. Unset fields are omitted
// rather than mapped to nil.
func (u *UpgradeOptions) Serialize() map[string]any {
	out := make(map[string]any, 2)
	if u == nil {
		return out
	}
	if u.autoUpgradeStartTime != nil {
		out[APIFieldAutoUpgradeStartTime] = u.autoUpgradeStartTime.Format(time.RFC3339Nano)
	}
	if u.description != nil {
		out[APIFieldDescription] = *u.description
	}
	return out
}

// MarshalJSON encodes the record in API shape.
func (u *UpgradeOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Serialize())
}

// String renders the record as "auto_upgrade_start_time: <v>, description: <v>".
// Unset fields, and a nil record, render as empty strings.
func (u *UpgradeOptions) String() string {
	var start string
	if t, ok := u.AutoUpgradeStartTime(); ok {
		start = t.Format(time.RFC3339)
	}
	description, _ := u.Description()
	return fmt.Sprintf("%s: %s, %s: %s",
		CatalogFieldAutoUpgradeStartTime, start,
		CatalogFieldDescription, description)
}

// Equal reports whether no field set on both sides differs.
// A nil other is never equal.
func (u *UpgradeOptions) Equal(other *UpgradeOptions) bool {
	if u == nil || other == nil {
		return false
	}
	for _, cmp := range u.compareFields(other) {
		if cmp.skip {
			continue
		}
		if cmp.order() != 0 {
			return false
		}
	}
	return true
}

// Compare orders two records by the first field that is set on both sides
// and differs, in field order autoUpgradeStartTime, description. It returns
// -1, 0 or +1. When either record is nil there is no ordering and
// ErrIncomparable is returned.
func (u *UpgradeOptions) Compare(other *UpgradeOptions) (int, error) {
	if u == nil || other == nil {
		return 0, ErrIncomparable
	}
	for _, cmp := range u.compareFields(other) {
		if cmp.skip {
			continue
		}
		if result := cmp.order(); result != 0 {
			return result, nil
		}
	}
	return 0, nil
}

type fieldComparison struct {
	skip  bool
	order func() int
}

func (u *UpgradeOptions) compareFields(other *UpgradeOptions) []fieldComparison {
	return []fieldComparison{
		{
			skip: u.autoUpgradeStartTime == nil || other.autoUpgradeStartTime == nil,
			order: func() int {
				return u.autoUpgradeStartTime.Compare(*other.autoUpgradeStartTime)
			},
		},
		{
			skip: u.description == nil || other.description == nil,
			order: func() int {
				return strings.Compare(*u.description, *other.description)
			},
		},
	}
}
