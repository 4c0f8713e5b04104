// Package fonts provides the built-in TrueType fonts and loads font files
// named by a theme.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Prefix marks a font source that names a built-in font.
const Prefix = "builtin:"

var builtin = map[string][]byte{
	"regular":     goregular.TTF,
	"bold":        gobold.TTF,
	"italic":      goitalic.TTF,
	"bold-italic": gobolditalic.TTF,
	"mono":        gomono.TTF,
}

// Names lists the built-in font names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns the bytes of a built-in font. The name may carry the
// "builtin:" prefix.
func Builtin(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimPrefix(name, Prefix))
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("unknown built-in font %q", name)
	}
	return data, nil
}

// Load resolves a font source: "builtin:<name>" or a file path, relative
// paths being taken from baseDir.
func Load(src, baseDir string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("empty font source")
	}
	if strings.HasPrefix(src, Prefix) {
		return Builtin(src)
	}
	path := src
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", src, err)
	}
	return data, nil
}
