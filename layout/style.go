package layout

import (
	"github.com/ByLCY/cvpress/markup"
	"github.com/ByLCY/cvpress/sanitize"
)

// Values the layout falls back to when a theme leaves them unset. They match
// the A4 resume layout the default theme describes.
const (
	DefaultLabelWidth   = 43.8003111111111
	DefaultValueWidth   = 150.2012444444444
	DefaultIndent       = 5.0
	DefaultSeparator    = 10.0
	DefaultBodyLine     = 6.0
	DefaultBodySize     = 9.0
	DefaultFamily       = "Body"
	DefaultBulletMarker = "-"
	DefaultRowSeparator = "-"
)

// TextStyle sizes one kind of text. Size is in points; LineHeight and
// GapAfter are in millimetres.
type TextStyle struct {
	Size       float64 `json:"size"`
	LineHeight float64 `json:"lineHeight"`
	GapAfter   float64 `json:"gapAfter"`
}

// Columns are the fixed horizontal measures in millimetres.
type Columns struct {
	Label     float64 `json:"label"`
	Value     float64 `json:"value"`
	Indent    float64 `json:"indent"`
	Separator float64 `json:"separator"`
}

// Gaps are the vertical advances after each block kind, in millimetres.
type Gaps struct {
	Field     float64 `json:"field"`
	Bullet    float64 `json:"bullet"`
	Row       float64 `json:"row"`
	Education float64 `json:"education"`
	Paragraph float64 `json:"paragraph"`
	Spacer    float64 `json:"spacer"`
}

// Theme is everything the emitter needs besides the writer.
type Theme struct {
	Name       string           `json:"name"`
	Family     string           `json:"family"`
	Page       PageSpec         `json:"page"`
	Title      TextStyle        `json:"title"`
	Section    TextStyle        `json:"section"`
	Subsection TextStyle        `json:"subsection"`
	Body       TextStyle        `json:"body"`
	Columns    Columns          `json:"columns"`
	Gaps       Gaps             `json:"gaps"`
	Bullet     string           `json:"bullet"`
	RowSep     string           `json:"rowSeparator"`
	Charset    sanitize.Charset `json:"charset"`
	Markup     markup.Options   `json:"markup"`
	Meta       DocumentMeta     `json:"meta"`
}

// A4 is the default page: 210x297mm with 8mm sides and 15mm top and bottom.
func A4() PageSpec {
	return PageSpec{
		Name:   "A4",
		Width:  210,
		Height: 297,
		Margin: Margin{Top: 15, Right: 8, Bottom: 15, Left: 8},
	}
}

// DefaultTheme returns the built-in resume layout.
func DefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Family:     DefaultFamily,
		Page:       A4(),
		Title:      TextStyle{Size: 14, LineHeight: 10, GapAfter: 5},
		Section:    TextStyle{Size: 10, LineHeight: 8, GapAfter: 2},
		Subsection: TextStyle{Size: 9.5, LineHeight: 7, GapAfter: 2},
		Body:       TextStyle{Size: DefaultBodySize, LineHeight: DefaultBodyLine},
		Columns: Columns{
			Label:     DefaultLabelWidth,
			Value:     DefaultValueWidth,
			Indent:    DefaultIndent,
			Separator: DefaultSeparator,
		},
		Gaps: Gaps{
			Field:     2,
			Bullet:    2,
			Row:       2,
			Education: 3,
			Paragraph: 2,
			Spacer:    5,
		},
		Bullet:  DefaultBulletMarker,
		RowSep:  DefaultRowSeparator,
		Charset: sanitize.ASCII,
		Markup:  markup.DefaultOptions(),
		Meta:    DocumentMeta{Creator: "cvpress"},
	}
}

// normalized fills zero values from DefaultTheme.
func (t Theme) normalized() Theme {
	def := DefaultTheme()
	if t.Family == "" {
		t.Family = def.Family
	}
	if t.Page.Width <= 0 || t.Page.Height <= 0 {
		t.Page = def.Page
	}
	t.Title = t.Title.or(def.Title)
	t.Section = t.Section.or(def.Section)
	t.Subsection = t.Subsection.or(def.Subsection)
	t.Body = t.Body.or(def.Body)
	if t.Columns.Label <= 0 {
		t.Columns.Label = def.Columns.Label
	}
	if t.Columns.Value <= 0 {
		t.Columns.Value = def.Columns.Value
	}
	if t.Bullet == "" {
		t.Bullet = def.Bullet
	}
	if t.Markup.LabelMaxLen <= 0 {
		t.Markup.LabelMaxLen = markup.DefaultLabelMaxLen
	}
	return t
}

func (s TextStyle) or(def TextStyle) TextStyle {
	if s.Size <= 0 {
		s.Size = def.Size
	}
	if s.LineHeight <= 0 {
		s.LineHeight = def.LineHeight
	}
	return s
}
