package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the concrete type stored in a JSONValue.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// String returns the JSON type name used in shape errors.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// JSONValue holds a decoded JSON document without resorting to empty interfaces.
type JSONValue struct {
	Kind   Kind
	Str    string
	Number float64
	Bool   bool
	Object map[string]JSONValue
	Array  []JSONValue
}

// UnmarshalJSON decodes any JSON value into its typed form.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	*v = JSONValue{}
	switch trimmed[0] {
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = KindObject
		v.Object = make(map[string]JSONValue, len(raw))
		for key, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Object[key] = child
		}
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = KindArray
		v.Array = make([]JSONValue, 0, len(raw))
		for _, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Array = append(v.Array, child)
		}
	case '"':
		v.Kind = KindString
		return json.Unmarshal(trimmed, &v.Str)
	case 't', 'f':
		v.Kind = KindBool
		return json.Unmarshal(trimmed, &v.Bool)
	case 'n':
		if string(trimmed) != "null" {
			return fmt.Errorf("invalid json literal")
		}
		v.Kind = KindNull
	default:
		v.Kind = KindNumber
		return json.Unmarshal(trimmed, &v.Number)
	}
	return nil
}

// MarshalJSON encodes the value back into JSON.
func (v JSONValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToInterface())
}

// Field returns the member stored under key, or a null value when v is not
// an object or has no such member.
func (v JSONValue) Field(key string) JSONValue {
	if v.Kind != KindObject {
		return JSONValue{}
	}
	return v.Object[key]
}

// StringOr returns the string payload, or def for any other kind.
func (v JSONValue) StringOr(def string) string {
	if v.Kind != KindString {
		return def
	}
	return v.Str
}

// ToInterface converts the value into the types produced by encoding/json.
func (v JSONValue) ToInterface() interface{} {
	switch v.Kind {
	case KindObject:
		out := make(map[string]interface{}, len(v.Object))
		for key, value := range v.Object {
			out[key] = value.ToInterface()
		}
		return out
	case KindArray:
		out := make([]interface{}, 0, len(v.Array))
		for _, value := range v.Array {
			out = append(out, value.ToInterface())
		}
		return out
	case KindString:
		return v.Str
	case KindNumber:
		return v.Number
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}

// String builds a string value.
func String(s string) JSONValue {
	return JSONValue{Kind: KindString, Str: s}
}

// Object builds an object value from members.
func Object(members map[string]JSONValue) JSONValue {
	if members == nil {
		members = map[string]JSONValue{}
	}
	return JSONValue{Kind: KindObject, Object: members}
}

// Array builds an array value from items.
func Array(items ...JSONValue) JSONValue {
	if items == nil {
		items = []JSONValue{}
	}
	return JSONValue{Kind: KindArray, Array: items}
}
