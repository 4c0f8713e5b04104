package convert

import (
	"fmt"
	"strings"

	"github.com/ByLCY/cvpress/layout"
	canvasrenderer "github.com/ByLCY/cvpress/renderer/canvas"
	fpdfrenderer "github.com/ByLCY/cvpress/renderer/fpdf"
	recordrenderer "github.com/ByLCY/cvpress/renderer/record"
	"github.com/ByLCY/cvpress/theme"
)

// Format selects the output backend.
type Format string

const (
	FormatCanvas Format = "canvas"
	FormatFPDF   Format = "fpdf"
	FormatJSON   Format = "json"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{FormatCanvas, FormatFPDF, FormatJSON} }

// ParseFormat accepts a format name; "pdf" is an alias for canvas.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", "pdf":
		return FormatCanvas, nil
	case FormatCanvas, FormatFPDF, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want canvas, fpdf or json)", s)
	}
}

// Ext is the file extension written for the format.
func (f Format) Ext() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".pdf"
}

// NewWriter creates the backend for format, configured from the theme.
func NewWriter(th *theme.Theme, f Format) (layout.Writer, error) {
	switch f {
	case FormatCanvas:
		sources := make(map[string]canvasrenderer.FontSources, len(th.Fonts))
		for name, spec := range th.Fonts {
			if spec.Regular != "" {
				sources[name] = canvasrenderer.FontSources{Regular: spec.Regular, Bold: spec.Bold}
			}
		}
		return canvasrenderer.New(th.Page, canvasrenderer.Options{BaseDir: th.BaseDir, Fonts: sources}), nil
	case FormatFPDF:
		core := make(map[string]string, len(th.Fonts))
		for name, spec := range th.Fonts {
			core[name] = spec.Core
		}
		return fpdfrenderer.New(th.Page, fpdfrenderer.Options{CoreFonts: core}), nil
	case FormatJSON:
		return recordrenderer.New(th.Page), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}
