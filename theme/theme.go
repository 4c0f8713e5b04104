// Package theme reads theme files: the page geometry, fonts, text styles,
// column widths, gaps and classification rules a document is laid out with.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ByLCY/cvpress/binding"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/sanitize"
)

//go:embed default.theme
var defaultSource string

// FontSpec names the files of one font family. Regular and Bold are used by
// the canvas backend, Core by the fpdf backend.
type FontSpec struct {
	Regular string `json:"regular"`
	Bold    string `json:"bold"`
	Core    string `json:"core"`
}

// Theme is a compiled theme file.
type Theme struct {
	layout.Theme
	Version string              `json:"version"`
	Fonts   map[string]FontSpec `json:"fonts"`
	// BaseDir resolves relative font paths.
	BaseDir string `json:"baseDir"`
}

// BindMeta resolves ${...} templates in the metadata against data.
func (t *Theme) BindMeta(data map[string]any) layout.DocumentMeta {
	m := t.Meta
	bound := layout.DocumentMeta{
		Title:   binding.Interpolate(m.Title, data),
		Author:  binding.Interpolate(m.Author, data),
		Subject: binding.Interpolate(m.Subject, data),
		Creator: binding.Interpolate(m.Creator, data),
	}
	for _, k := range m.Keywords {
		if v := binding.Interpolate(k, data); v != "" && !binding.HasPlaceholder(v) {
			bound.Keywords = append(bound.Keywords, v)
		}
	}
	if binding.HasPlaceholder(bound.Title) {
		bound.Title = ""
	}
	if binding.HasPlaceholder(bound.Author) {
		bound.Author = ""
	}
	return bound
}

// DefaultSource is the text of the built-in theme file.
func DefaultSource() string { return defaultSource }

// Default returns the built-in theme.
func Default() *Theme {
	t, err := Compile("default.theme", defaultSource)
	if err != nil {
		panic(fmt.Sprintf("built-in theme: %v", err))
	}
	return t
}

// Load reads and compiles a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	t, err := Compile(path, string(data))
	if err != nil {
		return nil, err
	}
	t.BaseDir = filepath.Dir(path)
	return t, nil
}

// Compile parses src and applies it over the layout defaults. Every problem
// found is reported, joined into one error.
func Compile(name, src string) (*Theme, error) {
	f, err := ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	c := &compiler{t: &Theme{
		Theme:   layout.DefaultTheme(),
		Version: f.Version,
		Fonts:   map[string]FontSpec{},
	}}
	c.t.Name = f.Name
	c.t.Family = ""
	for _, s := range f.Sections {
		c.section(s)
	}
	if c.t.Family == "" {
		c.t.Family = layout.DefaultFamily
	}
	if err := errors.Join(c.errs...); err != nil {
		return nil, fmt.Errorf("theme %s: %w", name, err)
	}
	return c.t, nil
}

type compiler struct {
	t    *Theme
	errs []error
}

func (c *compiler) errorf(a *Assignment, format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf("%s: %s: %s", a.Pos, a.Key, fmt.Sprintf(format, args...)))
}

func (c *compiler) section(s *Section) {
	switch {
	case s.Meta != nil:
		c.meta(s.Meta)
	case s.Page != nil:
		c.page(s)
	case s.Font != nil:
		c.font(s.Font)
	case s.Style != nil:
		c.style(s)
	case s.Columns != nil:
		c.lengths(s.Columns, map[string]*float64{
			"label":     &c.t.Columns.Label,
			"value":     &c.t.Columns.Value,
			"indent":    &c.t.Columns.Indent,
			"separator": &c.t.Columns.Separator,
		})
	case s.Gaps != nil:
		g := &c.t.Gaps
		c.lengths(s.Gaps, map[string]*float64{
			"field":     &g.Field,
			"bullet":    &g.Bullet,
			"row":       &g.Row,
			"education": &g.Education,
			"paragraph": &g.Paragraph,
			"spacer":    &g.Spacer,
		})
	case s.Rules != nil:
		c.rules(s.Rules)
	}
}

func (c *compiler) meta(b *Block) {
	m := &c.t.Meta
	for _, a := range b.Assignments {
		switch a.Key {
		case "title":
			m.Title = a.Value.Raw()
		case "author":
			m.Author = a.Value.Raw()
		case "subject":
			m.Subject = a.Value.Raw()
		case "creator":
			m.Creator = a.Value.Raw()
		case "keywords":
			if a.Value.Array == nil {
				m.Keywords = []string{a.Value.Raw()}
				continue
			}
			m.Keywords = nil
			for _, v := range a.Value.Array.Values {
				m.Keywords = append(m.Keywords, v.Raw())
			}
		default:
			c.errorf(a, "unknown meta key")
		}
	}
}

var pagePresets = map[string][2]float64{
	"A4":     {210, 297},
	"A5":     {148, 210},
	"LETTER": {215.9, 279.4},
	"LEGAL":  {215.9, 355.6},
}

func (c *compiler) page(s *Section) {
	p := s.Page
	spec := c.t.Page
	size, ok := pagePresets[strings.ToUpper(p.Size)]
	if !ok {
		c.errs = append(c.errs, fmt.Errorf("%s: unsupported page size %q", s.Pos, p.Size))
		return
	}
	spec.Name = strings.ToUpper(p.Size)
	spec.Width, spec.Height = size[0], size[1]

	for i := 0; i < len(p.Params); i++ {
		switch p.Params[i].Value {
		case "portrait":
		case "landscape":
			spec.Width, spec.Height = spec.Height, spec.Width
		case "margin":
			var vals []float64
			for i+1 < len(p.Params) && len(vals) < 4 {
				l, err := layout.ParseLength(p.Params[i+1].Value)
				if err != nil {
					break
				}
				vals = append(vals, l.ToMM())
				i++
			}
			if len(vals) == 0 {
				c.errs = append(c.errs, fmt.Errorf("%s: margin needs 1 to 4 lengths", p.Params[i].Pos))
				continue
			}
			spec.Margin = marginFrom(vals)
		default:
			c.errs = append(c.errs, fmt.Errorf("%s: unknown page parameter %q", p.Params[i].Pos, p.Params[i].Value))
		}
	}

	if p.Block != nil {
		for _, a := range p.Block.Assignments {
			switch a.Key {
			case "width", "height":
				l, err := layout.ParseLength(a.Value.Raw())
				if err != nil {
					c.errorf(a, "%v", err)
					continue
				}
				if a.Key == "width" {
					spec.Width = l.ToMM()
				} else {
					spec.Height = l.ToMM()
				}
			case "charset":
				cs, err := sanitize.ParseCharset(a.Value.Raw())
				if err != nil {
					c.errorf(a, "%v", err)
					continue
				}
				c.t.Charset = cs
			default:
				c.errorf(a, "unknown page key")
			}
		}
	}

	if spec.EffectiveWidth() <= 0 || spec.Height-spec.Margin.Top-spec.Margin.Bottom <= 0 {
		c.errs = append(c.errs, fmt.Errorf("%s: margins leave no room on a %gx%gmm page", s.Pos, spec.Width, spec.Height))
		return
	}
	c.t.Page = spec
}

// marginFrom applies CSS shorthand order: top, right, bottom, left.
func marginFrom(v []float64) layout.Margin {
	switch len(v) {
	case 1:
		return layout.Margin{Top: v[0], Right: v[0], Bottom: v[0], Left: v[0]}
	case 2:
		return layout.Margin{Top: v[0], Right: v[1], Bottom: v[0], Left: v[1]}
	case 3:
		return layout.Margin{Top: v[0], Right: v[1], Bottom: v[2], Left: v[1]}
	default:
		return layout.Margin{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
	}
}

func (c *compiler) font(s *NamedSection) {
	spec := FontSpec{}
	for _, a := range s.Block.Assignments {
		switch a.Key {
		case "regular":
			spec.Regular = a.Value.Raw()
		case "bold":
			spec.Bold = a.Value.Raw()
		case "core":
			spec.Core = a.Value.Raw()
		default:
			c.errorf(a, "unknown font key")
		}
	}
	c.t.Fonts[s.Name] = spec
	if c.t.Family == "" {
		c.t.Family = s.Name
	}
}

func (c *compiler) style(s *Section) {
	var target *layout.TextStyle
	switch s.Style.Name {
	case "title":
		target = &c.t.Title
	case "section":
		target = &c.t.Section
	case "subsection":
		target = &c.t.Subsection
	case "body":
		target = &c.t.Body
	default:
		c.errs = append(c.errs, fmt.Errorf("%s: unknown style %q", s.Pos, s.Style.Name))
		return
	}

	var lineHeight *layout.LineHeightSpec
	for _, a := range s.Style.Block.Assignments {
		switch a.Key {
		case "size":
			l, err := layout.ParseLength(a.Value.Raw())
			if err != nil || l.Value == 0 {
				c.errorf(a, "invalid font size %q", a.Value.Raw())
				continue
			}
			target.Size = l.ToPT()
		case "line-height":
			lh, err := layout.ParseLineHeight(a.Value.Raw())
			if err != nil {
				c.errorf(a, "%v", err)
				continue
			}
			lineHeight = &lh
		case "gap":
			l, err := layout.ParseLength(a.Value.Raw())
			if err != nil {
				c.errorf(a, "%v", err)
				continue
			}
			target.GapAfter = l.ToMM()
		default:
			c.errorf(a, "unknown style key")
		}
	}
	if lineHeight != nil {
		target.LineHeight = lineHeight.ResolveMM(target.Size)
	}
}

func (c *compiler) lengths(b *Block, keys map[string]*float64) {
	for _, a := range b.Assignments {
		dst, ok := keys[a.Key]
		if !ok {
			c.errorf(a, "unknown key")
			continue
		}
		l, err := layout.ParseLength(a.Value.Raw())
		if err != nil {
			c.errorf(a, "%v", err)
			continue
		}
		*dst = l.ToMM()
	}
}

func (c *compiler) rules(b *Block) {
	for _, a := range b.Assignments {
		switch a.Key {
		case "label-max":
			n, err := strconv.Atoi(a.Value.Raw())
			if err != nil || n <= 0 {
				c.errorf(a, "want a positive integer, got %q", a.Value.Raw())
				continue
			}
			c.t.Markup.LabelMaxLen = n
		case "education":
			if a.Value.Raw() == "" {
				c.errorf(a, "empty section name")
				continue
			}
			c.t.Markup.EducationSection = a.Value.Raw()
		case "bullet":
			c.t.Bullet = a.Value.Raw()
		case "separator":
			c.t.RowSep = a.Value.Raw()
		default:
			c.errorf(a, "unknown rule")
		}
	}
}
