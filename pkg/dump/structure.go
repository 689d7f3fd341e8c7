package dump

import (
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the default recursion depth limit.
	DefaultLimit = 100

	indentUnit = "\t"

	// globalsKey names the global environment pseudo-field, which is never
	// expanded.
	globalsKey = "GLOBALS"
)

// Render returns v as an indented text tree. Containers are labelled
// "Array[<count>]" (sequences and mappings) or "Object" (composites); their
// children are expanded one per line as "<key> => <child>" while depth is
// below limit. Booleans render as true or false, other leaves as their
// quoted text form.
func Render(v Value, prefix string, depth, limit int) string {
	var b strings.Builder
	render(&b, v, prefix, depth, limit)
	return b.String()
}

// RenderAny converts v with FromAny and renders it from the top level.
func RenderAny(v any, limit int) string {
	return Render(FromAny(v, limit), "", 0, limit)
}

func render(b *strings.Builder, v Value, prefix string, depth, limit int) {
	switch v.kind {
	case Sequence, Mapping:
		b.WriteString("Array[")
		b.WriteString(strconv.Itoa(v.count))
		b.WriteByte(']')
	case Composite:
		b.WriteString("Object")
	case Boolean:
		b.WriteString(strconv.FormatBool(v.b))
		return
	default:
		b.WriteByte('"')
		b.WriteString(v.text)
		b.WriteByte('"')
		return
	}

	if depth >= limit {
		return
	}
	inner := prefix + indentUnit
	for _, e := range v.entries {
		if k, ok := e.Key.(string); ok && k == globalsKey {
			continue
		}
		b.WriteByte('\n')
		b.WriteString(inner)
		b.WriteString(keyText(e.Key))
		b.WriteString(" => ")
		render(b, e.Value, inner, depth+1, limit)
	}
}
