package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cvpress/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var out string
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default config.toml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				out = filepath.Join(config.DefaultDir(), "config.toml")
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o700); err != nil {
				return err
			}
			return writeNewFile(cmd, out, config.DefaultTOML(), overwrite)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output path for config.toml")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSettings(cmd)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "theme = %q\n", s.Theme)
			fmt.Fprintf(w, "format = %q\n", s.Format)
			fmt.Fprintf(w, "charset = %q\n", s.Charset)
			fmt.Fprintf(w, "out_dir = %q\n", s.OutDir)
			fmt.Fprintf(w, "debug = %v\n", s.Debug)
			fmt.Fprintf(w, "log.level = %q\n", s.LogLevel.String())
			fmt.Fprintf(w, "render.jobs = %d\n", s.Jobs)
			return nil
		},
	}
}
