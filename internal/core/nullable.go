// AngelaMos | 2026
// nullable.go

package core

import (
	"encoding/json"
	"reflect"
)

// NullableString tells an absent JSON field apart from an explicit null
// in partial updates.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// Apply overwrites dst only when the field was present in the request.
func (n NullableString) Apply(dst **string) {
	if n.Set {
		*dst = n.Value
	}
}

func nullableStringValue(field reflect.Value) any {
	n, ok := field.Interface().(NullableString)
	if !ok || n.Value == nil {
		return nil
	}
	return *n.Value
}
