// Package cli is the cvpress command line.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ByLCY/cvpress/config"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/theme"
)

type ctxKey string

const settingsKey ctxKey = "settings"

// flagKeys maps command flags onto config keys. Flags set on the command line
// win over file and environment values.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"format":    "format",
	"charset":   "charset",
	"theme":     "theme",
	"out-dir":   "out_dir",
	"debug":     "debug",
	"jobs":      "render.jobs",
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "cvpress",
		Short:         "Typeset Markdown-like resumes into paged documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(v); err != nil {
				return err
			}
			for name, key := range flagKeys {
				if f := cmd.Flags().Lookup(name); f != nil {
					if err := v.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}
			s, err := config.Resolve(v)
			if err != nil {
				return err
			}
			layout.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: s.LogLevel})))
			cmd.SetContext(context.WithValue(cmd.Context(), settingsKey, s))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml|json)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newThemeCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getSettings(cmd *cobra.Command) config.Settings {
	if s, ok := cmd.Context().Value(settingsKey).(config.Settings); ok {
		return s
	}
	return config.Settings{}
}

// loadTheme returns nil for the built-in theme.
func loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		return nil, nil
	}
	return theme.Load(path)
}
