package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/validation"
)

type rootFlags struct {
	configPath string
	verbose    bool
	locale     string
}

// appContext bundles what every command builds from flags and config.
type appContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Validator *validation.Validator
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fieldkit",
		Short:         "fieldkit renders and exercises a terminal form component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runInputsDemo(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a fieldkit YAML config")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "Message locale (en, ko); overrides the config")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, err := config.ParseConfig(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Fix the file or omit --config to use the defaults.")
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return nil, newCommandError("create logger", "log level "+level, err, "Use one of trace, debug, info, warn, error.")
	}

	log.DebugFields("configuration loaded", map[string]any{
		"path":   flags.configPath,
		"locale": cfg.Locale,
	})

	return &appContext{
		Config:    cfg,
		Logger:    log,
		Validator: validation.New(cfg.Catalog()),
	}, nil
}
