package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"

	"github.com/mikey-austin/dumpdie/internal/core"
)

// HumanPrinter prints human-readable output.
type HumanPrinter struct {
	Out   io.Writer
	Color bool
	Quiet bool
}

// Print renders human output.
func (p HumanPrinter) Print(v any) error {
	switch data := v.(type) {
	case core.EmptyResult:
		return p.printEmpty(data)
	case core.ConfigResult:
		return p.printConfig(data)
	case core.DumpResult:
		return p.printDump(data)
	default:
		_, err := fmt.Fprintln(p.out(), "ok")
		return err
	}
}

func (p HumanPrinter) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p HumanPrinter) printEmpty(result core.EmptyResult) error {
	status := "not empty"
	color := pterm.FgYellow
	if result.Empty {
		status = "empty"
		color = pterm.FgGreen
	}
	if p.Color {
		status = color.Sprint(status)
	}
	_, err := fmt.Fprintf(p.out(), "%s\t%s\n", result.Path, status)
	return err
}

func (p HumanPrinter) printConfig(result core.ConfigResult) error {
	tw := tabwriter.NewWriter(p.out(), 0, 8, 2, ' ', 0)
	path := result.ConfigPath
	if path == "" {
		path = "(none)"
	}
	rows := [][2]string{
		{"config", path},
		{"limit", fmt.Sprint(result.Limit)},
		{"dumper", result.Dumper},
		{"format", result.Format},
		{"color", fmt.Sprint(result.Color)},
	}
	for _, row := range rows {
		key := row[0]
		if p.Color {
			key = pterm.Bold.Sprint(key)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", key, row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// printDump reports a summary of a dump that did not terminate. The values
// themselves were already written by the dumper.
func (p HumanPrinter) printDump(result core.DumpResult) error {
	if p.Quiet {
		return nil
	}
	_, err := fmt.Fprintf(p.out(), "dumped %d documents from %s\n", result.Documents, strings.Join(result.Sources, ", "))
	return err
}
