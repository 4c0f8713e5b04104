package markup

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultLabelMaxLen is the exclusive upper bound on the rune length of a
	// field label. Longer text before the first colon is treated as prose.
	DefaultLabelMaxLen = 15
	// DefaultEducationSection is the section header that enables education
	// entries.
	DefaultEducationSection = "Education"

	rowSeparator = " | "
)

// Options tunes the classification heuristics.
type Options struct {
	LabelMaxLen      int
	EducationSection string
}

// DefaultOptions returns the stock heuristics.
func DefaultOptions() Options {
	return Options{
		LabelMaxLen:      DefaultLabelMaxLen,
		EducationSection: DefaultEducationSection,
	}
}

func (o Options) normalized() Options {
	if o.LabelMaxLen <= 0 {
		o.LabelMaxLen = DefaultLabelMaxLen
	}
	if o.EducationSection == "" {
		o.EducationSection = DefaultEducationSection
	}
	return o
}

// State is carried from one line to the next.
type State struct {
	// InEducation is true while the most recent section header names the
	// education section.
	InEducation bool
}

// Issue describes a line whose special-case markup could not be honoured.
type Issue struct {
	Line   int    `json:"line"`
	Rule   string `json:"rule"`
	Reason string `json:"reason"`
}

func (i Issue) Error() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Rule, i.Reason)
}

// Outcome is the result of classifying one line.
type Outcome struct {
	Block Block
	State State
	// Issue is set when the line matched a rule but degraded to a Paragraph.
	Issue *Issue
}

// Rule pairs a predicate with the constructor used when it matches.
type Rule struct {
	Name  string
	Match func(line string, st State, opts Options) bool
	Build func(src Source, st State, opts Options) Outcome
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// StripBold removes paired ** markers, keeping the enclosed text.
func StripBold(s string) string {
	if !strings.Contains(s, "**") {
		return s
	}
	return boldPattern.ReplaceAllString(s, "$1")
}

// SplitField splits text into a label and value when it contains a colon and
// the text before the first colon is shorter than maxLen runes.
func SplitField(text string, maxLen int) (label, value string, ok bool) {
	i := strings.IndexByte(text, ':')
	if i < 0 {
		return "", "", false
	}
	if utf8.RuneCountInString(text[:i]) >= maxLen {
		return "", "", false
	}
	return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:]), true
}

// Rules returns the classification rules in priority order.
func Rules() []Rule {
	return []Rule{
		{Name: "title", Match: hasPrefix("# "), Build: buildTitle},
		{Name: "section", Match: hasPrefix("## "), Build: buildSection},
		{Name: "subsection", Match: hasPrefix("### "), Build: buildSubsection},
		{Name: "education", Match: isEducation, Build: buildEducation},
		{Name: "bullet", Match: hasPrefix("- "), Build: buildBullet},
		{Name: "field", Match: isField, Build: buildField},
		{Name: "spacer", Match: isBlank, Build: buildSpacer},
		{Name: "paragraph", Match: func(string, State, Options) bool { return true }, Build: buildParagraph},
	}
}

var defaultRules = Rules()

// Classify turns one trimmed, sanitized line into a Block. It is pure: the
// section state goes in as st and comes out in the Outcome.
func Classify(src Source, st State, opts Options) Outcome {
	opts = opts.normalized()
	for _, rule := range defaultRules {
		if rule.Match(src.Raw, st, opts) {
			return rule.Build(src, st, opts)
		}
	}
	return buildParagraph(src, st, opts)
}

// ClassifyLine is Classify for a bare line with no source position.
func ClassifyLine(line string, st State, opts Options) Outcome {
	return Classify(Source{Raw: line}, st, opts)
}

func hasPrefix(prefix string) func(string, State, Options) bool {
	return func(line string, _ State, _ Options) bool { return strings.HasPrefix(line, prefix) }
}

func isEducation(line string, st State, _ Options) bool {
	return st.InEducation && strings.HasPrefix(line, "**")
}

func isField(line string, _ State, opts Options) bool {
	_, _, ok := SplitField(StripBold(line), opts.LabelMaxLen)
	return ok
}

func isBlank(line string, _ State, _ Options) bool {
	return strings.TrimSpace(line) == ""
}

func headerText(line, prefix string) string {
	return strings.TrimSpace(StripBold(strings.TrimPrefix(line, prefix)))
}

func buildTitle(src Source, st State, _ Options) Outcome {
	return Outcome{Block: Title{Source: src, Text: headerText(src.Raw, "# ")}, State: st}
}

func buildSection(src Source, _ State, opts Options) Outcome {
	text := headerText(src.Raw, "## ")
	return Outcome{
		Block: SectionHeader{Source: src, Text: text},
		State: State{InEducation: text == opts.EducationSection},
	}
}

func buildSubsection(src Source, st State, _ Options) Outcome {
	return Outcome{Block: SubsectionHeader{Source: src, Text: headerText(src.Raw, "### ")}, State: st}
}

func buildEducation(src Source, st State, opts Options) Outcome {
	degreeRaw, rest, ok := strings.Cut(src.Raw, ",")
	if !ok {
		out := buildParagraph(src, st, opts)
		out.Issue = &Issue{Line: src.Line, Rule: "education", Reason: "no comma between degree and institution"}
		return out
	}
	degree := strings.TrimSpace(StripBold(strings.Trim(strings.TrimSpace(degreeRaw), "*")))
	rest = strings.TrimSpace(strings.Trim(StripBold(strings.TrimSpace(rest)), "*"))
	if degree == "" {
		out := buildParagraph(src, st, opts)
		out.Issue = &Issue{Line: src.Line, Rule: "education", Reason: "empty degree"}
		return out
	}
	return Outcome{
		Block: EducationEntry{Source: src, Degree: degree, InstitutionAndDate: rest},
		State: st,
	}
}

func buildBullet(src Source, st State, _ Options) Outcome {
	content := strings.TrimPrefix(src.Raw, "- ")
	if !strings.Contains(content, rowSeparator) {
		return Outcome{Block: BulletItem{Source: src, Text: strings.TrimSpace(StripBold(content))}, State: st}
	}
	parts := strings.Split(content, rowSeparator)
	cells := make([]Cell, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, Cell{Text: strings.TrimSpace(StripBold(p))})
	}
	return Outcome{Block: MultiColumnRow{Source: src, Cells: cells}, State: st}
}

func buildField(src Source, st State, opts Options) Outcome {
	label, value, _ := SplitField(StripBold(src.Raw), opts.LabelMaxLen)
	return Outcome{Block: Field{Source: src, Label: label, Value: value}, State: st}
}

func buildSpacer(src Source, st State, _ Options) Outcome {
	return Outcome{Block: Spacer{Source: src}, State: st}
}

func buildParagraph(src Source, st State, _ Options) Outcome {
	return Outcome{Block: Paragraph{Source: src, Text: StripBold(src.Raw)}, State: st}
}
