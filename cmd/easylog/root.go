package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/easylog/internal/app"
	"github.com/dshills/easylog/internal/config"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	logLevel   string
	color      string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "easylog",
		Short: "Insert console.log statements for the variable at a position",
		Long: `easylog inserts a console.log debug statement for the JavaScript or
TypeScript variable at a cursor position or selection, on the line after it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to configuration file (.toml, .yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&opts.color, "color", "", "colorize notifications (auto|on|off)")

	root.AddCommand(newLogCmd(opts))
	root.AddCommand(newResolveCmd(opts))
	root.AddCommand(newScriptCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig applies the layers: defaults, config file, environment, flags.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loadOpts := config.Options{Path: o.configPath}
	if o.configPath == "" {
		if wd, err := os.Getwd(); err == nil {
			loadOpts.SearchDirs = []string{wd}
		}
	}

	cfg, err := config.Load(loadOpts)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Set("logging.level", o.logLevel)
	}
	if flags.Changed("color") {
		cfg.Set("notify.color", o.color)
	}
	return cfg, nil
}

// newApp builds the application with notifications on the command's
// error stream.
func (o *globalOptions) newApp(cmd *cobra.Command) (*app.Application, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	errOut := cmd.ErrOrStderr()
	loggerCfg := app.DefaultLoggerConfig()
	loggerCfg.Output = errOut
	loggerCfg.Level = app.ParseLogLevel(cfg.Logging().Level)

	return app.New(app.Options{
		Config:   cfg,
		Logger:   app.NewLogger(loggerCfg),
		Notifier: app.NewTerminalNotifier(errOut, cfg.Notify().Color),
	})
}

// commandError converts a rejected command into a silent exit; other
// errors are returned unchanged.
func commandError(err error) error {
	if errors.Is(err, app.ErrCommandFailed) {
		return &exitError{code: 1, err: err}
	}
	return err
}
