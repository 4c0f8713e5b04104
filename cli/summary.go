package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ByLCY/cvpress/layout"
)

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	issueStyle = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
)

var issueOrder = []layout.IssueKind{
	layout.IssueClassification,
	layout.IssueLayout,
	layout.IssueOverflow,
	layout.IssueEncoding,
}

// writeSummary prints one line per document plus its non-fatal issues.
func writeSummary(w io.Writer, in, out string, rep *layout.Report) {
	if rep == nil {
		return
	}
	pages := "pages"
	if rep.Pages == 1 {
		pages = "page"
	}
	blocks := 0
	for _, n := range rep.Blocks {
		blocks += n
	}
	fmt.Fprintf(w, "%s %s -> %s (%d %s, %d blocks)\n", okStyle.Render("rendered"), in, out, rep.Pages, pages, blocks)

	if len(rep.Issues) == 0 && rep.Fallbacks == 0 {
		return
	}
	var parts []string
	for _, kind := range issueOrder {
		if n := rep.Count(kind); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	if rep.Fallbacks > 0 {
		parts = append(parts, fmt.Sprintf("%d replaced characters", rep.Fallbacks))
	}
	fmt.Fprintln(w, warnStyle.Render("  "+strings.Join(parts, ", ")))
	for _, iss := range rep.Issues {
		fmt.Fprintln(w, issueStyle.Render(iss.String()))
	}
}
