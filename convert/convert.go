// Package convert runs the whole pipeline for one or many documents: read
// the source, classify it, lay it out on a backend and write the result.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/markup"
	"github.com/ByLCY/cvpress/sanitize"
	"github.com/ByLCY/cvpress/theme"
)

var (
	// ErrInputNotFound means the source could not be opened. No output is
	// written.
	ErrInputNotFound = errors.New("input not found")
	// ErrOutputWrite means serializing or writing the result failed.
	ErrOutputWrite = errors.New("output write failed")
)

// Options configures a conversion. The zero value renders PDF with the
// canvas backend and the built-in theme.
type Options struct {
	Theme  *theme.Theme
	Format Format
	// Charset overrides the theme charset when set.
	Charset string
	// Name is bound as ${file} in theme metadata.
	Name string
	// DebugPath, when set, receives the JSON page dump of backends that
	// collect one.
	DebugPath string
	// Debug makes ConvertFile write the dump to out+".layout.json" when
	// DebugPath is empty.
	Debug bool
}

func (o Options) resolve() (*theme.Theme, Format, error) {
	th := o.Theme
	if th == nil {
		th = theme.Default()
	}
	format := o.Format
	if format == "" {
		format = FormatCanvas
	}
	if o.Charset != "" {
		cs, err := sanitize.ParseCharset(o.Charset)
		if err != nil {
			return nil, "", err
		}
		cp := *th
		cp.Charset = cs
		th = &cp
	}
	return th, format, nil
}

// Convert renders the source read from src and writes the finished document
// to sink.
func Convert(src io.Reader, sink io.Writer, opts Options) (*layout.Report, error) {
	th, format, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	doc, err := markup.Parse(src, th.Markup)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}

	w, err := NewWriter(th, format)
	if err != nil {
		return nil, err
	}
	lt := th.Theme
	lt.Meta = th.BindMeta(map[string]any{"name": doc.Title(), "file": opts.Name})

	rep, err := layout.Render(doc, w, lt)
	if err != nil {
		return nil, err
	}
	if opts.DebugPath != "" {
		if err := writeDebug(w, opts.DebugPath); err != nil {
			return rep, err
		}
	}
	if err := w.Finalize(sink); err != nil {
		return rep, fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return rep, nil
}

// ConvertFile renders the file at in and writes the result to out. The
// input is opened before anything is created; the output is written in one
// piece after rendering succeeds.
func ConvertFile(in, out string, opts Options) (*layout.Report, error) {
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	defer f.Close()

	if opts.Name == "" {
		opts.Name = filepath.Base(in)
	}
	if opts.Debug && opts.DebugPath == "" {
		opts.DebugPath = DebugPathFor(out)
	}
	var buf bytes.Buffer
	rep, err := Convert(f, &buf, opts)
	if err != nil {
		return rep, fmt.Errorf("%s: %w", in, err)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return rep, fmt.Errorf("%w: %w", ErrOutputWrite, err)
		}
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return rep, fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	layout.Logger().Info("document written", "in", in, "out", out, "pages", rep.Pages)
	return rep, nil
}

// OutputPath derives the output file for in: same base name with the
// format's extension, placed in outDir or next to the input.
func OutputPath(in, outDir string, f Format) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + f.Ext()
	if outDir == "" {
		outDir = filepath.Dir(in)
	}
	return filepath.Join(outDir, base)
}

// DebugPathFor is where a page dump for out is written by default.
func DebugPathFor(out string) string { return out + ".layout.json" }

type resultCollector interface {
	Result() *layout.Result
}

func writeDebug(w layout.Writer, path string) error {
	rc, ok := w.(resultCollector)
	if !ok {
		layout.Logger().Debug("backend keeps no page dump", "path", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: debug dump: %w", ErrOutputWrite, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: debug dump: %w", ErrOutputWrite, err)
	}
	defer f.Close()
	if err := layout.WriteDebugJSON(rc.Result(), f); err != nil {
		return fmt.Errorf("%w: debug dump: %w", ErrOutputWrite, err)
	}
	return nil
}
