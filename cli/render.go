package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cvpress/convert"
)

func newRenderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <input>...",
		Short: "Render documents to PDF or a JSON page dump",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return errors.New("--output takes exactly one input")
			}
			s := getSettings(cmd)
			th, err := loadTheme(s.Theme)
			if err != nil {
				return err
			}
			opts := convert.Options{Theme: th, Format: s.Format, Charset: s.Charset, Debug: s.Debug}

			if len(args) == 1 {
				out := output
				if out == "" {
					out = convert.OutputPath(args[0], s.OutDir, s.Format)
				}
				rep, err := convert.ConvertFile(args[0], out, opts)
				if err != nil {
					return err
				}
				writeSummary(cmd.OutOrStdout(), args[0], out, rep)
				return nil
			}

			jobs := make([]convert.Job, len(args))
			for i, in := range args {
				jobs[i] = convert.Job{In: in, Out: convert.OutputPath(in, s.OutDir, s.Format)}
			}
			results, err := convert.ConvertAll(cmd.Context(), jobs, s.Jobs, opts)
			done := 0
			for _, r := range results {
				if r.Err == nil {
					writeSummary(cmd.OutOrStdout(), r.Job.In, r.Job.Out, r.Report)
					done++
				}
			}
			if err != nil {
				return fmt.Errorf("%d of %d documents failed: %w", len(jobs)-done, len(jobs), err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (single input only)")
	cmd.Flags().String("out-dir", "", "directory for outputs (default: next to each input)")
	cmd.Flags().StringP("format", "f", "", "backend: canvas, fpdf or json")
	cmd.Flags().String("theme", "", "theme file")
	cmd.Flags().String("charset", "", "output charset: ascii or cp1252")
	cmd.Flags().Bool("debug", false, "also write <output>.layout.json")
	cmd.Flags().IntP("jobs", "j", 0, "documents rendered at once (0: GOMAXPROCS)")
	return cmd
}
