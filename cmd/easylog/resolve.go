package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/dshills/easylog/internal/app"
)

func newResolveCmd(opts *globalOptions) *cobra.Command {
	var pos positionFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve [flags] <file>",
		Short: "Print the variable log would use, without editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := pos.request(args[0])
			if err != nil {
				return err
			}

			application, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			out, err := application.Resolve(cmd.Context(), req)
			if err != nil {
				return commandError(err)
			}

			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), out.Target)
				return nil
			}

			doc, err := resolveJSON(args[0], out)
			if err != nil {
				return fmt.Errorf("resolve: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			return nil
		},
	}

	pos.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// resolveJSON renders a resolve outcome. Lines are 1-based.
func resolveJSON(path string, out app.Outcome) (string, error) {
	doc := "{}"
	fields := []struct {
		key   string
		value any
	}{
		{"file", path},
		{"language", out.LanguageID},
		{"mode", out.Mode},
		{"target", out.Target},
		{"insert.line", out.Directive.Line + 1},
		{"insert.statement", out.Directive.Text},
		{"invocation", out.Invocation},
	}

	var err error
	for _, f := range fields {
		if doc, err = sjson.Set(doc, f.key, f.value); err != nil {
			return "", err
		}
	}
	return doc, nil
}
