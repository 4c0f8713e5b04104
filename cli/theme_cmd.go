package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cvpress/theme"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate theme files",
	}
	cmd.AddCommand(newThemeShowCmd())
	cmd.AddCommand(newThemeCheckCmd())
	cmd.AddCommand(newThemeInitCmd())
	return cmd
}

func newThemeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Print the compiled theme as JSON (built-in theme without a file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th := theme.Default()
			if len(args) == 1 {
				var err error
				if th, err = theme.Load(args[0]); err != nil {
					return err
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(th)
		},
	}
}

func newThemeCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate theme files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				if _, err := theme.Load(path); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", okStyle.Render("ok"), path)
			}
			return errors.Join(errs...)
		},
	}
}

func newThemeInitCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the built-in theme as a starting point (stdout without a file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := io.WriteString(cmd.OutOrStdout(), theme.DefaultSource())
				return err
			}
			return writeNewFile(cmd, args[0], theme.DefaultSource(), overwrite)
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing file")
	return cmd
}

func writeNewFile(cmd *cobra.Command, path, content string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists; use --overwrite to replace it", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
