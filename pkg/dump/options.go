package dump

import "reflect"

const (
	optLimit  = "limit"
	optDumper = "dumper"
)

// Options configures a dump. A zero Limit or empty Mode means unset.
type Options struct {
	Limit int
	Mode  Mode
}

// DefaultOptions returns limit 100 and the var_dump mode.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit, Mode: DefaultMode}
}

// ExtractOptions separates configuration objects from the values to dump,
// starting from DefaultOptions.
func ExtractOptions(args []any) ([]any, Options) {
	return DefaultOptions().Extract(args)
}

// Extract removes configuration objects from args and applies them on top
// of o in argument order. A configuration object is an Options value or a
// string-keyed map holding a "limit" or "dumper" key. Malformed settings
// are ignored but the object is still removed.
func (o Options) Extract(args []any) ([]any, Options) {
	values := make([]any, 0, len(args))
	for _, arg := range args {
		switch opt := arg.(type) {
		case Options:
			o = o.merge(opt)
			continue
		case *Options:
			if opt != nil {
				o = o.merge(*opt)
				continue
			}
		}
		if o.applyMap(arg) {
			continue
		}
		values = append(values, arg)
	}
	return values, o
}

func (o Options) merge(other Options) Options {
	if other.Limit > 0 {
		o.Limit = other.Limit
	}
	if mode, ok := ParseMode(string(other.Mode)); ok {
		o.Mode = mode
	}
	return o
}

// applyMap applies a configuration map to o and reports whether arg was
// one.
func (o *Options) applyMap(arg any) bool {
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return false
	}
	limit, hasLimit := lookup(rv, optLimit)
	dumper, hasDumper := lookup(rv, optDumper)
	if !hasLimit && !hasDumper {
		return false
	}
	if hasLimit {
		if n, ok := asInt(limit); ok && n > 0 {
			o.Limit = n
		}
	}
	if hasDumper && dumper.Kind() == reflect.String {
		if mode, ok := ParseMode(dumper.String()); ok {
			o.Mode = mode
		}
	}
	return true
}

func lookup(m reflect.Value, key string) (reflect.Value, bool) {
	v := m.MapIndex(reflect.ValueOf(key).Convert(m.Type().Key()))
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v, true
}

func asInt(v reflect.Value) (int, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > uint64(^uint(0)>>1) {
			return 0, false
		}
		return int(v.Uint()), true
	}
	return 0, false
}
