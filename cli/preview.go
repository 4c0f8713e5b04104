package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ByLCY/cvpress/markup"
	"github.com/ByLCY/cvpress/theme"
)

func newPreviewCmd() *cobra.Command {
	var raw bool
	var width int
	cmd := &cobra.Command{
		Use:   "preview <input>",
		Short: "Show how a document is classified, rendered in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := loadTheme(getSettings(cmd).Theme)
			if err != nil {
				return err
			}
			if th == nil {
				th = theme.Default()
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			doc, err := markup.Parse(f, th.Markup)
			if err != nil {
				return err
			}

			md := previewMarkdown(doc)
			if raw {
				_, err = io.WriteString(cmd.OutOrStdout(), md)
				return err
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle("dracula"),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the normalized markdown without styling")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	cmd.Flags().String("theme", "", "theme file")
	return cmd
}

// previewMarkdown writes the classified document back as markdown, one
// construct per block, so the terminal shows what the layout will draw.
func previewMarkdown(doc *markup.Document) string {
	var b strings.Builder
	prevItem := false
	for _, blk := range doc.Blocks {
		if _, ok := blk.(markup.Spacer); ok {
			prevItem = false
			continue
		}
		item := blk.Kind() == markup.KindBulletItem || blk.Kind() == markup.KindMultiColumnRow
		// List items stay in one list; everything else is its own paragraph.
		if b.Len() > 0 && !(item && prevItem) {
			b.WriteString("\n")
		}
		prevItem = item

		switch v := blk.(type) {
		case markup.Title:
			fmt.Fprintf(&b, "# %s\n", v.Text)
		case markup.SectionHeader:
			fmt.Fprintf(&b, "## %s\n", v.Text)
		case markup.SubsectionHeader:
			fmt.Fprintf(&b, "### %s\n", v.Text)
		case markup.Field:
			fmt.Fprintf(&b, "**%s:** %s\n", v.Label, v.Value)
		case markup.BulletItem:
			fmt.Fprintf(&b, "- %s\n", v.Text)
		case markup.MultiColumnRow:
			cells := make([]string, len(v.Cells))
			for i, c := range v.Cells {
				cells[i] = c.Text
			}
			fmt.Fprintf(&b, "- %s\n", strings.Join(cells, " | "))
		case markup.EducationEntry:
			fmt.Fprintf(&b, "**%s** %s\n", v.Degree, v.InstitutionAndDate)
		case markup.Paragraph:
			fmt.Fprintf(&b, "%s\n", v.Text)
		}
	}
	return b.String()
}
