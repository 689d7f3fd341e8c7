package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// JSONPrinter prints JSON to stdout.
type JSONPrinter struct {
	Out io.Writer
}

// Print renders JSON output.
func (p JSONPrinter) Print(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, string(payload))
	return err
}
