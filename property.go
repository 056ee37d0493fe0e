package tmj

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// PropertyKind identifies which variant a PropertyValue holds.
type PropertyKind uint8

const (
	KindString PropertyKind = iota
	KindInt
	KindFloat
	KindBool
)

// PropertyValue is a custom property value: exactly one of int, float,
// bool or string. The zero value is the empty string.
type PropertyValue struct {
	kind PropertyKind
	i    int
	f    float64
	b    bool
	s    string
}

// IntValue, FloatValue, BoolValue and StringValue build a PropertyValue of
// the matching kind.
func IntValue(v int) PropertyValue { return PropertyValue{kind: KindInt, i: v} }

func FloatValue(v float64) PropertyValue { return PropertyValue{kind: KindFloat, f: v} }

func BoolValue(v bool) PropertyValue { return PropertyValue{kind: KindBool, b: v} }

func StringValue(v string) PropertyValue { return PropertyValue{kind: KindString, s: v} }

// Kind reports which variant v holds.
func (v PropertyValue) Kind() PropertyKind { return v.kind }

// Int returns the value as an int. Floats are truncated; other kinds
// return 0.
func (v PropertyValue) Int() int {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return int(v.f)
	}
	return 0
}

// Float returns the value as a float64. Ints are widened; other kinds
// return 0.
func (v PropertyValue) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	}
	return 0
}

// Bool returns the value if it is a bool, false otherwise.
func (v PropertyValue) Bool() bool {
	return v.kind == KindBool && v.b
}

// String formats any variant as text.
func (v PropertyValue) String() string {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return v.s
}

// Properties is a bag of named custom properties.
type Properties map[string]PropertyValue

// Get returns the named value and whether it exists.
func (p Properties) Get(name string) (PropertyValue, bool) {
	v, ok := p[name]
	return v, ok
}

// GetString returns the named value as text, or "" if absent.
func (p Properties) GetString(name string) string {
	if v, ok := p[name]; ok {
		return v.String()
	}
	return ""
}

// GetInt returns the named value as an int, or 0 if absent.
func (p Properties) GetInt(name string) int { return p[name].Int() }

// GetFloat returns the named value as a float64, or 0 if absent.
func (p Properties) GetFloat(name string) float64 { return p[name].Float() }

// GetBool returns the named value if it is a bool, false otherwise.
func (p Properties) GetBool(name string) bool { return p[name].Bool() }

// --- JSON decoding ---

type jsonProperty struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// parseProperties accepts both encodings Tiled has used: the legacy
// object form {"name": value} and the array form
// [{"name": ..., "type": ..., "value": ...}].
func parseProperties(raw json.RawMessage, path string) (Properties, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '{':
		var bag map[string]json.RawMessage
		if err := json.Unmarshal(raw, &bag); err != nil {
			return nil, invalid(path, "%v", err)
		}
		props := make(Properties, len(bag))
		for name, v := range bag {
			pv, err := decodeValue(v, "", path+"."+name)
			if err != nil {
				return nil, err
			}
			props[name] = pv
		}
		return props, nil
	case '[':
		var list []jsonProperty
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, invalid(path, "%v", err)
		}
		props := make(Properties, len(list))
		for i, jp := range list {
			if jp.Name == "" {
				return nil, missing(path + "[" + strconv.Itoa(i) + "].name")
			}
			pv, err := decodeValue(jp.Value, jp.Type, path+"."+jp.Name)
			if err != nil {
				return nil, err
			}
			props[jp.Name] = pv
		}
		return props, nil
	}
	return nil, invalid(path, "properties must be an object or array")
}

// decodeValue converts a scalar JSON value into a PropertyValue. typ is
// the Tiled type hint from the array encoding, or "" for the legacy form.
func decodeValue(raw json.RawMessage, typ, path string) (PropertyValue, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return PropertyValue{}, invalid(path, "%v", err)
	}

	switch x := v.(type) {
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case json.Number:
		if typ == "float" {
			f, err := x.Float64()
			if err != nil {
				return PropertyValue{}, invalid(path, "%v", err)
			}
			return FloatValue(f), nil
		}
		if n, err := strconv.Atoi(x.String()); err == nil {
			return IntValue(n), nil
		}
		if typ == "int" || typ == "object" {
			return PropertyValue{}, invalid(path, "%s is not an integer", x)
		}
		f, err := x.Float64()
		if err != nil {
			return PropertyValue{}, invalid(path, "%v", err)
		}
		return FloatValue(f), nil
	}
	return PropertyValue{}, invalid(path, "unsupported property value %s", raw)
}
