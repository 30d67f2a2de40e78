// internal/services/nullable.go
package services

import (
	"encoding/json"
)

// NullableString records whether a JSON key was present at all, so partial
// updates can tell "key absent" (leave the column alone) from an explicit
// null (clear it). encoding/json cannot make that distinction with a plain
// pointer field.
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
	return json.Unmarshal(data, &n.Value)
}
