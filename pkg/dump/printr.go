package dump

import "strings"

const (
	printRIndent   = "    "
	printRNested   = "        "
	printRTruncate = "*MAX DEPTH*"
)

// PrintR renders v in print_r layout:
//
//	Array
//	(
//	    [0] => a
//	    [1] => Array
//	        (
//	            [0] => b
//	        )
//
//	)
//
// Booleans print as 1 or nothing, nil prints nothing.
func PrintR(v Value) string {
	var b strings.Builder
	printR(&b, v, "")
	return b.String()
}

func printR(b *strings.Builder, v Value, indent string) {
	switch v.kind {
	case Boolean:
		if v.b {
			b.WriteString("1")
		}
		return
	case Scalar:
		b.WriteString(v.text)
		return
	case Composite:
		name := v.typeName
		if name == "" {
			name = "stdClass"
		}
		b.WriteString(name)
		b.WriteString(" Object\n")
	default:
		b.WriteString("Array\n")
	}

	b.WriteString(indent)
	b.WriteString("(\n")
	for _, e := range v.entries {
		b.WriteString(indent)
		b.WriteString(printRIndent)
		b.WriteByte('[')
		b.WriteString(keyText(e.Key))
		b.WriteString("] => ")
		printR(b, e.Value, indent+printRNested)
		b.WriteByte('\n')
	}
	if v.Truncated() {
		b.WriteString(indent)
		b.WriteString(printRIndent)
		b.WriteString(printRTruncate)
		b.WriteByte('\n')
	}
	b.WriteString(indent)
	b.WriteString(")\n")
}
