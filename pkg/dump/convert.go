package dump

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// recursionMarker replaces a pointer or map that is already being expanded
// further up the current path.
const recursionMarker = "*RECURSION*"

var valueType = reflect.TypeOf(Value{})

// FromAny converts an arbitrary Go value into a Value by reflection.
//
// Pointers and interfaces are followed, slices and arrays become sequences,
// maps become mappings with keys sorted by their text form and structs
// become composites in field declaration order. Containers deeper than
// limit keep their entry count but carry no children. A Value passed in is
// returned as is.
func FromAny(v any, limit int) Value {
	if val, ok := v.(Value); ok {
		return val
	}
	c := converter{limit: limit, visiting: map[visit]struct{}{}}
	return c.convert(reflect.ValueOf(v), 0)
}

type converter struct {
	limit    int
	visiting map[visit]struct{}
}

// visit identifies a pointer or map on the current path. The type is part
// of the key since a struct and its first field share an address.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

func (c *converter) convert(rv reflect.Value, depth int) Value {
	if !rv.IsValid() {
		return Null()
	}
	if rv.Type() == valueType && rv.CanInterface() {
		return rv.Interface().(Value)
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return c.convert(rv.Elem(), depth)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null()
		}
		key := visit{ptr: rv.Pointer(), typ: rv.Type()}
		if _, ok := c.visiting[key]; ok {
			return Str(recursionMarker)
		}
		c.visiting[key] = struct{}{}
		defer delete(c.visiting, key)
		return c.convert(rv.Elem(), depth)
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return leaf(rv, rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return leaf(rv, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return leaf(rv, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32:
		return leaf(rv, strconv.FormatFloat(rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		return leaf(rv, strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		return leaf(rv, strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits()))
	case reflect.Slice:
		if rv.IsNil() {
			return Null()
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return leaf(rv, string(rv.Bytes()))
		}
		return c.sequence(rv, depth)
	case reflect.Array:
		return c.sequence(rv, depth)
	case reflect.Map:
		if rv.IsNil() {
			return Null()
		}
		key := visit{ptr: rv.Pointer(), typ: rv.Type()}
		if _, ok := c.visiting[key]; ok {
			return Str(recursionMarker)
		}
		c.visiting[key] = struct{}{}
		defer delete(c.visiting, key)
		return c.mapping(rv, depth)
	case reflect.Struct:
		if s, ok := opaqueText(rv); ok {
			return leaf(rv, s)
		}
		return c.composite(rv, depth)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return Null()
		}
		return Value{kind: Scalar, text: fmt.Sprintf("%s(%#x)", rv.Type(), rv.Pointer())}
	default:
		return Value{kind: Scalar, text: rv.Type().String()}
	}
}

// leaf keeps the original value when it can be extracted so Interface
// returns it unchanged. Unexported struct fields only expose their text.
func leaf(rv reflect.Value, text string) Value {
	v := Value{kind: Scalar, text: text}
	if rv.CanInterface() {
		v.raw = rv.Interface()
	} else {
		v.raw = text
	}
	return v
}

func (c *converter) sequence(rv reflect.Value, depth int) Value {
	n := rv.Len()
	out := Value{kind: Sequence, count: n}
	if depth >= c.limit {
		return out
	}
	out.entries = make([]Entry, n)
	for i := 0; i < n; i++ {
		out.entries[i] = Entry{Key: i, Value: c.convert(rv.Index(i), depth+1)}
	}
	return out
}

func (c *converter) mapping(rv reflect.Value, depth int) Value {
	out := Value{kind: Mapping, count: rv.Len()}
	if depth >= c.limit {
		return out
	}
	keys := rv.MapKeys()
	sortKeys(keys)
	out.entries = make([]Entry, 0, len(keys))
	for _, k := range keys {
		out.entries = append(out.entries, Entry{
			Key:   mapKey(k),
			Value: c.convert(rv.MapIndex(k), depth+1),
		})
	}
	return out
}

func (c *converter) composite(rv reflect.Value, depth int) Value {
	t := rv.Type()
	out := Value{kind: Composite, typeName: t.String()}
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Name != "_" {
			out.count++
		}
	}
	if depth >= c.limit {
		return out
	}
	out.entries = make([]Entry, 0, out.count)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		out.entries = append(out.entries, Entry{
			Key:   f.Name,
			Value: c.convert(rv.Field(i), depth+1),
		})
	}
	return out
}

// opaqueText reports the String or Error text of structs that expose no
// fields of their own, such as time.Time.
func opaqueText(rv reflect.Value) (string, bool) {
	if !rv.CanInterface() {
		return "", false
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return "", false
		}
	}
	switch s := rv.Interface().(type) {
	case error:
		return s.Error(), true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

func mapKey(k reflect.Value) any {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.CanInterface() {
		return k.Interface()
	}
	return keyString(k)
}

func keyString(k reflect.Value) string {
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(k.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(k.Bool())
	default:
		if k.CanInterface() {
			return fmt.Sprint(k.Interface())
		}
		return k.Type().String()
	}
}

// sortKeys orders map keys numerically when both are numbers and by text
// otherwise, so output does not depend on map iteration order.
func sortKeys(keys []reflect.Value) {
	sort.SliceStable(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		for a.Kind() == reflect.Interface && !a.IsNil() {
			a = a.Elem()
		}
		for b.Kind() == reflect.Interface && !b.IsNil() {
			b = b.Elem()
		}
		if isInt(a) && isInt(b) {
			return a.Int() < b.Int()
		}
		if isUint(a) && isUint(b) {
			return a.Uint() < b.Uint()
		}
		if isFloat(a) && isFloat(b) {
			return a.Float() < b.Float()
		}
		return keyString(a) < keyString(b)
	})
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}
