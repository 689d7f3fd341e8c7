package dump

import (
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/pretty"
)

// Mode selects how dumped values are rendered.
type Mode string

const (
	// ModePrintR is a simple structural dump.
	ModePrintR Mode = "print_r"
	// ModeVarExport renders a re-parseable Go literal.
	ModeVarExport Mode = "var_export"
	// ModeVarDump is a typed dump and the default mode.
	ModeVarDump Mode = "var_dump"
	// ModeStructure renders with the structure printer and the configured
	// depth limit.
	ModeStructure Mode = "structure-printer"

	// DefaultMode is used when no dumper is configured.
	DefaultMode = ModeVarDump
)

// Modes lists the known modes.
var Modes = []Mode{ModePrintR, ModeVarExport, ModeVarDump, ModeStructure}

// ParseMode returns the mode named by name. "dumper" is accepted as an
// alias of the structure printer.
func ParseMode(name string) (Mode, bool) {
	switch Mode(name) {
	case ModePrintR, ModeVarExport, ModeVarDump, ModeStructure:
		return Mode(name), true
	case "dumper":
		return ModeStructure, true
	}
	return "", false
}

func (m Mode) String() string { return string(m) }

// Render returns v rendered in mode m. limit bounds the recursion of every
// mode except var_export, which follows the value to its leaves.
func (m Mode) Render(v any, limit int) string {
	switch m {
	case ModeStructure:
		return RenderAny(v, limit)
	case ModePrintR:
		return PrintR(FromAny(v, limit))
	case ModeVarExport:
		return pretty.Sprint(plain(v, limit))
	default:
		return spewConfig(limit).Sdump(plain(v, limit))
	}
}

func spewConfig(limit int) *spew.ConfigState {
	return &spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                limit,
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
}

// plain unwraps Values so the reflective dumpers see ordinary Go data.
// Data holding a Value anywhere below the top is converted as a whole, as
// Values cannot be replaced in place inside typed containers.
func plain(v any, limit int) any {
	if val, ok := v.(Value); ok {
		return val.Interface()
	}
	if holdsValue(reflect.ValueOf(v), 0, limit, map[visit]struct{}{}) {
		return FromAny(v, limit).Interface()
	}
	return v
}

func holdsValue(rv reflect.Value, depth, limit int, seen map[visit]struct{}) bool {
	if !rv.IsValid() || depth > limit {
		return false
	}
	if rv.Type() == valueType {
		return true
	}
	switch rv.Kind() {
	case reflect.Interface:
		return !rv.IsNil() && holdsValue(rv.Elem(), depth, limit, seen)
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return false
		}
		key := visit{ptr: rv.Pointer(), typ: rv.Type()}
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		if rv.Kind() == reflect.Pointer {
			return holdsValue(rv.Elem(), depth, limit, seen)
		}
		iter := rv.MapRange()
		for iter.Next() {
			if holdsValue(iter.Value(), depth+1, limit, seen) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if holdsValue(rv.Index(i), depth+1, limit, seen) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if holdsValue(rv.Field(i), depth+1, limit, seen) {
				return true
			}
		}
	}
	return false
}

func trimNewlines(s string) string {
	return strings.TrimRight(s, "\n")
}
