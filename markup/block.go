package markup

// Kind names the variant of a Block.
type Kind int

const (
	KindTitle Kind = iota
	KindSectionHeader
	KindSubsectionHeader
	KindField
	KindBulletItem
	KindMultiColumnRow
	KindEducationEntry
	KindParagraph
	KindSpacer
)

var kindNames = [...]string{
	KindTitle:            "title",
	KindSectionHeader:    "section",
	KindSubsectionHeader: "subsection",
	KindField:            "field",
	KindBulletItem:       "bullet",
	KindMultiColumnRow:   "row",
	KindEducationEntry:   "education",
	KindParagraph:        "paragraph",
	KindSpacer:           "spacer",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Source records where a block came from: its 1-based line number and the
// sanitized line text. Emitters fall back to Raw when a block cannot be laid
// out as classified.
type Source struct {
	Line int    `json:"line"`
	Raw  string `json:"raw"`
}

// Block is one classified unit of a document. The set of implementations is
// closed; switch on the concrete type.
type Block interface {
	Kind() Kind
	Origin() Source
}

// Title is a "# " line.
type Title struct {
	Source
	Text string
}

// SectionHeader is a "## " line.
type SectionHeader struct {
	Source
	Text string
}

// SubsectionHeader is a "### " line.
type SubsectionHeader struct {
	Source
	Text string
}

// Field is a short "label: value" line.
type Field struct {
	Source
	Label string
	Value string
}

// BulletItem is a "- " line without column separators.
type BulletItem struct {
	Source
	Text string
}

// Cell is one column of a MultiColumnRow.
type Cell struct {
	Text string
}

// MultiColumnRow is a "- " line whose content is split on " | ".
type MultiColumnRow struct {
	Source
	Cells []Cell
}

// EducationEntry is a bold degree line inside the education section.
type EducationEntry struct {
	Source
	Degree             string
	InstitutionAndDate string
}

// Paragraph is free text.
type Paragraph struct {
	Source
	Text string
}

// Spacer marks a blank input line.
type Spacer struct {
	Source
}

func (Title) Kind() Kind            { return KindTitle }
func (SectionHeader) Kind() Kind    { return KindSectionHeader }
func (SubsectionHeader) Kind() Kind { return KindSubsectionHeader }
func (Field) Kind() Kind            { return KindField }
func (BulletItem) Kind() Kind       { return KindBulletItem }
func (MultiColumnRow) Kind() Kind   { return KindMultiColumnRow }
func (EducationEntry) Kind() Kind   { return KindEducationEntry }
func (Paragraph) Kind() Kind        { return KindParagraph }
func (Spacer) Kind() Kind           { return KindSpacer }

func (s Source) Origin() Source { return s }
