package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newLogCmd(opts *globalOptions) *cobra.Command {
	var pos positionFlags
	var write bool

	cmd := &cobra.Command{
		Use:   "log [flags] <file>",
		Short: "Insert a console.log statement for the variable at a position",
		Long: `Insert a console.log statement on the line after the variable at the
cursor (--line/--col) or in the selection (--select).

In cursor mode a dotted chain such as user.profile.name is logged up to the
segment under the cursor. A selection must be a single identifier.

The result is printed to stdout unless --write is given.`,
		Example: `  easylog log app.ts --line 12 --col 9
  easylog log app.ts --select 12:7-12:12 --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := pos.request(args[0])
			if err != nil {
				return err
			}

			application, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			out, err := application.Log(cmd.Context(), req)
			if err != nil {
				return commandError(err)
			}

			stdout := cmd.OutOrStdout()
			switch {
			case pos.dryRun:
				_, err = io.WriteString(stdout, out.Directive.Text)
			case write:
				err = application.Save(args[0])
			default:
				_, err = io.WriteString(stdout, out.Content)
			}
			if err != nil {
				return fmt.Errorf("log: %w", err)
			}
			return nil
		},
	}

	pos.register(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&pos.dryRun, "dry-run", false, "print the statement that would be inserted")
	return cmd
}
