package dump

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Location is the source position a dump was requested from.
type Location struct {
	File string
	Line int
}

// Here returns the location of its caller, skipping skip extra frames.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// String formats the location as "<file> : <line>". A zero line is
// omitted, an unknown location prints "unknown : 0".
func (l Location) String() string {
	if l.File == "" {
		return "unknown : 0"
	}
	if l.Line == 0 {
		return l.File
	}
	return l.File + " : " + strconv.Itoa(l.Line)
}

// Header returns the lines printed before dumped values: the caller
// location, the dumper name and, for the structure printer, the depth
// limit.
func Header(loc Location, opts Options) []string {
	lines := []string{
		"called from: " + loc.String(),
		fmt.Sprintf("[dumper function]: %q", opts.Mode.String()+"()"),
	}
	if opts.Mode == ModeStructure {
		lines = append(lines, "[nesting depth]: "+strconv.Itoa(opts.Limit))
	}
	return lines
}

// HeaderText joins Header with newlines.
func HeaderText(loc Location, opts Options) string {
	return strings.Join(Header(loc, opts), "\n")
}
