package dump

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies the shape of a Value.
type Kind uint8

const (
	// Scalar is a leaf rendered by its text form: strings, numbers, nil and
	// anything without structure.
	Scalar Kind = iota
	// Boolean is a true/false leaf.
	Boolean
	// Sequence is an index-ordered container.
	Sequence
	// Mapping is a key-ordered container with keys of any comparable type.
	Mapping
	// Composite is an object: field names to field values.
	Composite
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Boolean:
		return "boolean"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	case Composite:
		return "composite"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Entry is a keyed child of a container Value.
type Entry struct {
	Key   any
	Value Value
}

// Value is the printable form of an arbitrary runtime value.
//
// Containers keep their entry count even when their children were not
// materialized because conversion stopped at the depth limit.
type Value struct {
	kind     Kind
	raw      any
	text     string
	null     bool
	b        bool
	count    int
	entries  []Entry
	typeName string
}

// Null returns the nil scalar.
func Null() Value {
	return Value{kind: Scalar, null: true}
}

// ScalarOf returns a leaf holding v. Its text form follows scalarText.
func ScalarOf(v any) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: Scalar, raw: v, text: scalarText(v)}
}

// Str returns a string scalar.
func Str(s string) Value {
	return Value{kind: Scalar, raw: s, text: s}
}

// Bool returns a boolean leaf.
func Bool(b bool) Value {
	return Value{kind: Boolean, raw: b, b: b}
}

// Seq returns a sequence of items keyed by their index.
func Seq(items ...Value) Value {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Key: i, Value: item}
	}
	return Value{kind: Sequence, count: len(items), entries: entries}
}

// Map returns a mapping with entries in the given order.
func Map(entries ...Entry) Value {
	return Value{kind: Mapping, count: len(entries), entries: entries}
}

// Object returns a composite with fields in the given order. typeName is
// used by print_r style output and may be empty.
func Object(typeName string, fields ...Entry) Value {
	return Value{kind: Composite, count: len(fields), entries: fields, typeName: typeName}
}

func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the nil scalar.
func (v Value) IsNull() bool { return v.kind == Scalar && v.null }

// Text returns the text form of a scalar or boolean.
func (v Value) Text() string {
	if v.kind == Boolean {
		return strconv.FormatBool(v.b)
	}
	return v.text
}

// Len returns the number of entries of a container, including children
// that were not materialized.
func (v Value) Len() int { return v.count }

// Entries returns the materialized children of a container.
func (v Value) Entries() []Entry { return v.entries }

// Truncated reports whether a container has fewer materialized children
// than entries.
func (v Value) Truncated() bool { return len(v.entries) < v.count }

// TypeName returns the type name recorded for a composite.
func (v Value) TypeName() string { return v.typeName }

// Interface converts v back to plain Go data: scalars to their raw value,
// sequences to []any, composites and string-keyed mappings to
// map[string]any and other mappings to map[any]any.
func (v Value) Interface() any {
	switch v.kind {
	case Boolean:
		return v.b
	case Sequence:
		out := make([]any, 0, len(v.entries))
		for _, e := range v.entries {
			out = append(out, e.Value.Interface())
		}
		return out
	case Mapping, Composite:
		if stringKeys(v.entries) {
			out := make(map[string]any, len(v.entries))
			for _, e := range v.entries {
				out[e.Key.(string)] = e.Value.Interface()
			}
			return out
		}
		out := make(map[any]any, len(v.entries))
		for _, e := range v.entries {
			out[e.Key] = e.Value.Interface()
		}
		return out
	default:
		if v.null {
			return nil
		}
		return v.raw
	}
}

func stringKeys(entries []Entry) bool {
	for _, e := range entries {
		if _, ok := e.Key.(string); !ok {
			return false
		}
	}
	return true
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int8:
		return strconv.FormatInt(int64(t), 10)
	case int16:
		return strconv.FormatInt(int64(t), 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint8:
		return strconv.FormatUint(uint64(t), 10)
	case uint16:
		return strconv.FormatUint(uint64(t), 10)
	case uint32:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case uintptr:
		return strconv.FormatUint(uint64(t), 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

func keyText(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return scalarText(k)
}
