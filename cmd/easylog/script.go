package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/easylog/internal/app"
	"github.com/dshills/easylog/internal/plugin/lua"
)

func newScriptCmd(opts *globalOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "script [file.lua [args...]]",
		Short: "Run a Lua script with the easylog module",
		Long: `Run a sandboxed Lua script. The script can use the global "easylog"
module (or require("easylog")) to resolve and insert log statements. If
the script defines main(args), it is called with the remaining arguments.

Without a file, the scripts listed in plugins.scripts are run in order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.newApp(cmd)
			if err != nil {
				return err
			}

			var scripts []string
			var scriptArgs []string
			if len(args) > 0 {
				scripts = args[:1]
				scriptArgs = args[1:]
			} else {
				scripts = application.Config().Plugins().Scripts
			}
			if len(scripts) == 0 {
				return fmt.Errorf("script: no script given and plugins.scripts is empty")
			}

			errs := app.NewErrorList()
			for _, path := range scripts {
				errs.Add(runScript(cmd, application, path, scriptArgs, timeout))
			}
			return errs.AsError()
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", lua.DefaultExecutionTimeout, "time limit for each script (0 disables)")
	return cmd
}

func runScript(cmd *cobra.Command, application *app.Application, path string, args []string, timeout time.Duration) error {
	state, err := lua.NewState(
		lua.WithExecutionTimeout(timeout),
		lua.WithInstructionLimit(application.Config().Plugins().InstructionLimit),
		lua.WithOutput(cmd.OutOrStdout()),
	)
	if err != nil {
		return app.NewOperationError("script", path, err)
	}
	defer state.Close()

	if err := state.Register(lua.NewModule(cmd.Context(), application)); err != nil {
		return app.NewOperationError("script", path, err)
	}

	application.Logger().WithComponent("script").WithField("path", path).Debug("running")
	if err := state.RunScript(cmd.Context(), path, args); err != nil {
		return app.NewOperationError("script", path, err)
	}
	return nil
}
