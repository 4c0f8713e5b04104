package sanitize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Placeholder replaces any rune the output character set cannot represent.
const Placeholder = '?'

// Charset is an output character set a page backend can draw.
type Charset int

const (
	ASCII Charset = iota
	CP1252
)

func (c Charset) String() string {
	switch c {
	case CP1252:
		return "cp1252"
	default:
		return "ascii"
	}
}

// ParseCharset resolves a charset name from configuration.
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii", "us-ascii":
		return ASCII, nil
	case "cp1252", "windows-1252", "latin1", "iso-8859-1":
		return CP1252, nil
	default:
		return ASCII, fmt.Errorf("unknown charset %q", name)
	}
}

// Represents reports whether r can be written in c unchanged.
func (c Charset) Represents(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	switch c {
	case CP1252:
		_, ok := charmap.Windows1252.EncodeRune(r)
		return ok
	default:
		return r < utf8.RuneSelf
	}
}

// ToCharset substitutes Placeholder for every rune of s that c cannot
// represent, including bytes that are not valid UTF-8. It returns the result
// and the number of substitutions made.
func ToCharset(s string, c Charset) (string, int) {
	substituted := countUnrepresentable(s, c)
	if substituted == 0 {
		return s, 0
	}
	t := runes.Map(func(r rune) rune {
		if c.Represents(r) {
			return r
		}
		return Placeholder
	})
	out, _, err := transform.String(t, s)
	if err != nil {
		// runes.Map has no failure mode of its own.
		return mapRunes(s, c), substituted
	}
	return out, substituted
}

func countUnrepresentable(s string, c Charset) int {
	n := 0
	for _, r := range s {
		if !c.Represents(r) {
			n++
		}
	}
	return n
}

func mapRunes(s string, c Charset) string {
	var b strings.Builder
	for _, r := range s {
		if c.Represents(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(Placeholder)
	}
	return b.String()
}
