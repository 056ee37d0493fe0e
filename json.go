package tmj

import (
	"bytes"
	"encoding/json"
)

// object is one JSON object from the map document with its location, so
// field errors can name the exact path that failed.
type object struct {
	path   string
	fields map[string]json.RawMessage
}

func decodeObject(raw []byte, p string) (object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return object{}, invalid(p, "expected an object: %v", err)
	}
	if fields == nil {
		return object{}, invalid(p, "expected an object, got null")
	}
	return object{path: p, fields: fields}, nil
}

// fieldSpec pairs a JSON key with the value it decodes into.
type fieldSpec struct {
	key string
	dst any
}

func field[T any](key string, dst *T) fieldSpec {
	return fieldSpec{key: key, dst: dst}
}

func (o object) at(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

// require decodes every field, failing on the first that is absent, null, or
// of the wrong JSON type.
func (o object) require(specs ...fieldSpec) error {
	for _, s := range specs {
		raw, ok := o.fields[s.key]
		if !ok || isNull(raw) {
			return missing(o.at(s.key))
		}
		if err := json.Unmarshal(raw, s.dst); err != nil {
			return invalid(o.at(s.key), "%v", err)
		}
	}
	return nil
}

// optionalFields decodes the fields that are present and leaves the others
// untouched. A present field of the wrong type is still an error.
func (o object) optionalFields(specs ...fieldSpec) error {
	for _, s := range specs {
		raw, ok := o.fields[s.key]
		if !ok || isNull(raw) {
			continue
		}
		if err := json.Unmarshal(raw, s.dst); err != nil {
			return invalid(o.at(s.key), "%v", err)
		}
	}
	return nil
}

// optional returns the raw value of key, or nil.
func (o object) optional(key string) json.RawMessage {
	return o.fields[key]
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
