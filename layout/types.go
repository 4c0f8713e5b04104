package layout

// This file defines the page description shared by the paged writers, the
// JSON page dump and the PDF backends. All coordinates are millimetres with
// the origin at the top-left corner of the page.

// Result holds the laid-out pages of one document.
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// Page records the page size, its margins and the text cells placed on it.
type Page struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Margin Margin    `json:"margin"`
	Texts  []TextBox `json:"texts"`
}

// Margin is expressed in millimetres.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// PageSpec is the fixed geometry a writer paginates against.
type PageSpec struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin Margin  `json:"margin"`
}

// EffectiveWidth is the page width minus the side margins.
func (p PageSpec) EffectiveWidth() float64 {
	return p.Width - p.Margin.Left - p.Margin.Right
}

// BreakTrigger is the lowest y a cell may reach before a new page starts.
func (p PageSpec) BreakTrigger() float64 {
	return p.Height - p.Margin.Bottom
}

// TextBox is one drawn cell: a single line of text placed in a box.
type TextBox struct {
	Content  string  `json:"content"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Font     string  `json:"font"`
	Weight   Weight  `json:"weight"`
	FontSize float64 `json:"fontSize"` // pt
	Align    Align   `json:"align,omitempty"`
}

// DocumentMeta is written into the PDF information dictionary.
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// Weight is a font weight the emitter can ask for.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

func (w Weight) String() string {
	if w == WeightBold {
		return "bold"
	}
	return "regular"
}

// MarshalText renders the weight by name in the page dump.
func (w Weight) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// Align is the horizontal alignment of text inside its cell.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// MarshalText renders the alignment by name in the page dump.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Advance says where the cursor goes after a cell is drawn.
type Advance int

const (
	// AdvanceRight moves to the right edge of the cell on the same line.
	AdvanceRight Advance = iota
	// AdvanceNextLine moves to the left margin below the cell.
	AdvanceNextLine
	// AdvanceBelow moves below the cell keeping its x.
	AdvanceBelow
)
