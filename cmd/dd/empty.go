package main

import (
	"github.com/spf13/cobra"

	"github.com/mikey-austin/dumpdie/internal/core"
)

func emptyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "empty <dir>",
		Short: "Check whether a directory is empty",
		Long:  "Print whether dir has entries. Exits 0 when empty and 6 when not.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fromContext(cmd)
			result, err := app.service.EmptyDir(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.printer.Print(result); err != nil {
				return err
			}
			if !result.Empty {
				return core.ErrNotEmpty
			}
			return nil
		},
	}
}
