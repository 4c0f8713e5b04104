package renderer

import (
	"errors"

	"github.com/ByLCY/cvpress/layout"
)

// Renderer serializes a laid-out document, for example to PDF bytes.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}

// Font is the font selection a cell is drawn with. Size is in points.
type Font struct {
	Family string
	Weight layout.Weight
	Size   float64
}

// Metrics measures text in a given font, in millimetres.
type Metrics interface {
	TextWidth(f Font, s string) float64
}

// ErrAlreadyStarted is returned by BeginDocument when called twice.
var ErrAlreadyStarted = errors.New("document already started")

// Paged collects positioned text cells page by page. It owns the cursor and
// starts a new page when a cell would cross the bottom margin. Backends embed
// it and add serialization.
type Paged struct {
	spec    layout.PageSpec
	metrics Metrics
	meta    layout.DocumentMeta
	started bool

	pages []*layout.Page
	font  Font
	x, y  float64
}

// NewPaged creates a collector for pages of the given geometry.
func NewPaged(spec layout.PageSpec, m Metrics) *Paged {
	return &Paged{spec: spec, metrics: m}
}

func (p *Paged) BeginDocument(meta layout.DocumentMeta) error {
	if p.started {
		return ErrAlreadyStarted
	}
	p.started = true
	p.meta = meta
	return nil
}

// AddPage starts a new page with the cursor at the top-left margin.
func (p *Paged) AddPage() {
	p.pages = append(p.pages, &layout.Page{
		Width:  p.spec.Width,
		Height: p.spec.Height,
		Margin: p.spec.Margin,
	})
	p.x = p.spec.Margin.Left
	p.y = p.spec.Margin.Top
}

func (p *Paged) SetFont(family string, weight layout.Weight, size float64) {
	p.font = Font{Family: family, Weight: weight, Size: size}
}

// Font returns the current font selection.
func (p *Paged) Font() Font { return p.font }

func (p *Paged) MeasureText(s string) float64 {
	if s == "" || p.metrics == nil {
		return 0
	}
	return p.metrics.TextWidth(p.font, s)
}

// Cell places text in a width×height box at the cursor. If the box would
// cross the bottom margin, and the cursor is not already at the top of a
// page, a new page is started first and x is kept.
func (p *Paged) Cell(width, height float64, text string, align layout.Align, adv layout.Advance) {
	if len(p.pages) == 0 {
		p.AddPage()
	}
	if p.y+height > p.spec.BreakTrigger() && p.y > p.spec.Margin.Top {
		x := p.x
		p.AddPage()
		p.x = x
	}
	if text != "" {
		page := p.pages[len(p.pages)-1]
		page.Texts = append(page.Texts, layout.TextBox{
			Content:  text,
			X:        p.x,
			Y:        p.y,
			Width:    width,
			Height:   height,
			Font:     p.font.Family,
			Weight:   p.font.Weight,
			FontSize: p.font.Size,
			Align:    align,
		})
	}
	switch adv {
	case layout.AdvanceRight:
		p.x += width
	case layout.AdvanceNextLine:
		p.x = p.spec.Margin.Left
		p.y += height
	case layout.AdvanceBelow:
		p.y += height
	}
}

// LineFeed returns to the left margin and moves down by height. It never
// starts a page on its own.
func (p *Paged) LineFeed(height float64) {
	p.x = p.spec.Margin.Left
	p.y += height
}

func (p *Paged) EffectiveWidth() float64 { return p.spec.EffectiveWidth() }

func (p *Paged) PageCount() int { return len(p.pages) }

// Cursor returns the current position in millimetres.
func (p *Paged) Cursor() (x, y float64) { return p.x, p.y }

// Spec returns the page geometry.
func (p *Paged) Spec() layout.PageSpec { return p.spec }

// Result returns the collected pages.
func (p *Paged) Result() *layout.Result {
	res := &layout.Result{Meta: p.meta, Pages: make([]layout.Page, len(p.pages))}
	for i, pg := range p.pages {
		res.Pages[i] = *pg
	}
	return res
}
