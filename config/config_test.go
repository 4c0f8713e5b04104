package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/cvpress/convert"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Load(v))

	s, err := Resolve(v)
	require.NoError(t, err)
	assert.Equal(t, convert.FormatCanvas, s.Format)
	assert.Equal(t, slog.LevelWarn, s.LogLevel)
	assert.Equal(t, 0, s.Jobs)
	assert.Empty(t, s.Theme)
	assert.False(t, s.Debug)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "cvpress")
	require.NoError(t, os.MkdirAll(cfgDir, 0o700))
	content := "format = \"fpdf\"\ncharset = \"cp1252\"\n[render]\njobs = 3\n[log]\nlevel = \"info\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o600))
	t.Setenv("CVPRESS_LOG_LEVEL", "debug")

	v := viper.New()
	require.NoError(t, Load(v))
	s, err := Resolve(v)
	require.NoError(t, err)

	assert.Equal(t, convert.FormatFPDF, s.Format, "file overrides default")
	assert.Equal(t, "cp1252", s.Charset)
	assert.Equal(t, 3, s.Jobs)
	assert.Equal(t, slog.LevelDebug, s.LogLevel, "env overrides file")
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, "nope.toml"))
	require.Error(t, Load(v))
}

func TestCheckValid(t *testing.T) {
	dir := t.TempDir()
	th := filepath.Join(dir, "resume.theme")
	require.NoError(t, os.WriteFile(th, []byte("theme T {}"), 0o600))

	v := viper.New()
	v.Set("format", "json")
	v.Set("charset", "ascii")
	v.Set("log.level", "error")
	v.Set("render.jobs", 4)
	v.Set("theme", th)
	assert.NoError(t, Check(v))
}

func TestCheckAggregatesProblems(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set("format", "docx")
	v.Set("charset", "latin9")
	v.Set("log.level", "loud")
	v.Set("render.jobs", -1)
	v.Set("theme", filepath.Join(dir, "missing.theme"))

	err := Check(v)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"format:",
		"charset:",
		`log.level "loud" is not a level`,
		"render.jobs must not be negative",
		"theme:",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestDefaultTOMLLoads(t *testing.T) {
	out := DefaultTOML()
	assert.Contains(t, out, "[render]\n")
	assert.Contains(t, out, `format = "canvas"`)

	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, Load(v))
	assert.Equal(t, "warn", v.GetString("log.level"))
	assert.NoError(t, Check(v))
}
