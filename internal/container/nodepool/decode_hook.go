package nodepool

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var (
	upgradeOptionsType    = reflect.TypeOf(UpgradeOptions{})
	upgradeOptionsPtrType = reflect.TypeOf(&UpgradeOptions{})
)

// DecodeHook converts catalog entries into UpgradeOptions while a catalog
// document is decoded with mapstructure. Other target types are left alone.
func DecodeHook() mapstructure.DecodeHookFuncType {
	coerce := Coerce()
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != upgradeOptionsType && to != upgradeOptionsPtrType {
			return data, nil
		}

		parsed, err := coerce(data)
		if err != nil {
			return nil, err
		}
		switch {
		case to == upgradeOptionsPtrType && parsed == nil:
			return nil, nil
		case to == upgradeOptionsPtrType:
			return parsed, nil
		case parsed == nil:
			return UpgradeOptions{}, nil
		default:
			return *parsed, nil
		}
	}
}
