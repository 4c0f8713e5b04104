package theme

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	themeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in|x)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][(),.=;:]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	tokenNames       = invertSymbols(themeLexer.Symbols())
	newlineTokenType = mustTokenType("Newline")
	lbraceTokenType  = mustTokenType("LBrace")
	rbraceTokenType  = mustTokenType("RBrace")
	symbolTokenType  = mustTokenType("Symbol")
	stringTokenType  = mustTokenType("String")

	fileParser = participle.MustBuild[File](
		participle.Lexer(themeLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// File is the root of a theme source.
type File struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'theme' @Ident"`
	Version  string         `parser:"@Ident?"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section is one top-level theme section.
type Section struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Meta    *Block         `parser:"  'meta' @@"`
	Page    *PageSection   `parser:"| @@"`
	Font    *NamedSection  `parser:"| 'font' @@"`
	Style   *NamedSection  `parser:"| 'style' @@"`
	Columns *Block         `parser:"| 'columns' @@"`
	Gaps    *Block         `parser:"| 'gaps' @@"`
	Rules   *Block         `parser:"| 'rules' @@"`
}

// Kind returns the section keyword.
func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Meta != nil:
		return "meta"
	case s.Page != nil:
		return "page"
	case s.Font != nil:
		return "font"
	case s.Style != nil:
		return "style"
	case s.Columns != nil:
		return "columns"
	case s.Gaps != nil:
		return "gaps"
	case s.Rules != nil:
		return "rules"
	default:
		return "unknown"
	}
}

// PageSection holds the page size, its header parameters (orientation,
// margin) and an optional block of assignments.
type PageSection struct {
	Size   string    `parser:"'page' @Ident"`
	Params []*Lexeme `parser:"@@*"`
	Block  *Block    `parser:"@@?"`
}

// NamedSection is a section with a name, such as `style title { ... }`.
type NamedSection struct {
	Name  string `parser:"@Ident"`
	Block *Block `parser:"@@"`
}

// Block is a braced list of assignments.
type Block struct {
	Assignments []*Assignment `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value is a single assignment value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *string        `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
	Array  *ArrayValue    `parser:"| @@"`
}

// Raw returns the value as written, with strings unquoted. Arrays yield "".
func (v *Value) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Number != nil:
		return *v.Number
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// ArrayValue captures `[ ... ]` lists.
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( (',' | ';' | Newline+) Newline* @@ )* )? Newline* ']'"`
}

// Lexeme captures a single lexical token of a section header.
type Lexeme struct {
	Type  string         `json:"type"`
	Value string         `json:"value"`
	Raw   string         `json:"raw"`
	Pos   lexer.Position `json:"-"`
}

// Parse implements participle.Parseable so Lexeme can act as a grammar atom.
func (l *Lexeme) Parse(lex *lexer.PeekingLexer) error {
	tok := lex.Peek()
	if shouldStopArg(tok) {
		return participle.NextMatch
	}
	tok = lex.Next()
	lexeme, err := newLexeme(*tok)
	if err != nil {
		return err
	}
	*l = lexeme
	return nil
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a theme source. name is used in error positions.
func Parse(name string, r io.Reader) (*File, error) {
	return fileParser.Parse(name, r)
}

// ParseString parses a theme held in memory.
func ParseString(name, input string) (*File, error) {
	return fileParser.ParseString(name, input)
}

func shouldStopArg(tok *lexer.Token) bool {
	if tok == nil || tok.EOF() {
		return true
	}
	switch tok.Type {
	case newlineTokenType, rbraceTokenType, lbraceTokenType:
		return true
	case symbolTokenType:
		return tok.Value == ";"
	default:
		return false
	}
}

func newLexeme(tok lexer.Token) (Lexeme, error) {
	name, ok := tokenNames[tok.Type]
	if !ok {
		name = fmt.Sprintf("#%d", tok.Type)
	}
	val := tok.Value
	if tok.Type == stringTokenType {
		unquoted, err := strconv.Unquote(tok.Value)
		if err != nil {
			return Lexeme{}, err
		}
		val = unquoted
	}
	return Lexeme{Type: name, Value: val, Raw: tok.Value, Pos: tok.Pos}, nil
}

func invertSymbols(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		out[tt] = name
	}
	return out
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := themeLexer.Symbols()[name]
	if !ok {
		panic(fmt.Sprintf("token %s not defined", name))
	}
	return tt
}
