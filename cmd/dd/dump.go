package main

import (
	"github.com/spf13/cobra"

	"github.com/mikey-austin/dumpdie/internal/core"
)

func dumpCommand() *cobra.Command {
	var format string
	var noDie bool

	cmd := &cobra.Command{
		Use:   "dump [file...]",
		Short: "Dump documents and exit",
		Long: "Decode each file (stdin when none or \"-\") and dump its documents, then exit.\n" +
			"The format is taken from --format or the file extension.",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			result, err := app.service.DumpSources(cmd.Context(), core.DumpRequest{
				Sources: args,
				Format:  format,
				Die:     !noDie,
			})
			if err != nil {
				return err
			}
			if noDie {
				return app.summary.Print(result)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format (auto|json|yaml|toml)")
	cmd.Flags().BoolVar(&noDie, "no-die", false, "return after dumping instead of exiting")

	return cmd
}
