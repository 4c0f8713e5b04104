// Package config resolves cvpress settings with viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ByLCY/cvpress/convert"
	"github.com/ByLCY/cvpress/sanitize"
)

// EnvPrefix is the prefix of environment overrides, e.g. CVPRESS_LOG_LEVEL.
const EnvPrefix = "cvpress"

// Option is one known setting with its default and meaning.
type Option struct {
	Key     string
	Default any
	Comment string
}

// Options returns the known settings. It is the single source of defaults.
func Options() []Option {
	return []Option{
		{Key: "theme", Default: "", Comment: "Theme file; empty uses the built-in resume theme"},
		{Key: "format", Default: string(convert.FormatCanvas), Comment: "Output backend: canvas, fpdf or json"},
		{Key: "charset", Default: "", Comment: "Override the theme charset (ascii or cp1252)"},
		{Key: "out_dir", Default: "", Comment: "Directory for rendered files; empty writes next to the input"},
		{Key: "debug", Default: false, Comment: "Write a JSON page dump next to each output"},
		{Key: "log.level", Default: "warn", Comment: "Log level: debug, info, warn or error"},
		{Key: "render.jobs", Default: 0, Comment: "Documents rendered at once; 0 uses GOMAXPROCS"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range Options() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence defaults < file < env. Flags
// bound by the caller take precedence over all of them. A missing config file
// is not an error; an unreadable or malformed one is.
func Load(v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

// DefaultDir is $XDG_CONFIG_HOME/cvpress or ~/.config/cvpress.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cvpress")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cvpress")
}

// Settings is the resolved configuration.
type Settings struct {
	Theme    string
	Format   convert.Format
	Charset  string
	OutDir   string
	Debug    bool
	LogLevel slog.Level
	Jobs     int
}

// Check validates v and reports every problem at once.
func Check(v *viper.Viper) error {
	_, err := Resolve(v)
	return err
}

// Resolve reads Settings from v. All problems are joined in the error.
func Resolve(v *viper.Viper) (Settings, error) {
	var (
		s    Settings
		errs []error
		err  error
	)

	s.Format, err = convert.ParseFormat(v.GetString("format"))
	if err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}

	s.Charset = strings.TrimSpace(v.GetString("charset"))
	if s.Charset != "" {
		if _, err := sanitize.ParseCharset(s.Charset); err != nil {
			errs = append(errs, fmt.Errorf("charset: %w", err))
		}
	}

	if lvl := strings.TrimSpace(v.GetString("log.level")); lvl != "" {
		if err := s.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			errs = append(errs, fmt.Errorf("log.level %q is not a level", lvl))
		}
	} else {
		s.LogLevel = slog.LevelWarn
	}

	s.Jobs = v.GetInt("render.jobs")
	if s.Jobs < 0 {
		errs = append(errs, errors.New("render.jobs must not be negative"))
	}

	s.Theme = expandHome(strings.TrimSpace(v.GetString("theme")))
	if s.Theme != "" {
		if fi, err := os.Stat(s.Theme); err != nil {
			errs = append(errs, fmt.Errorf("theme: %w", err))
		} else if fi.IsDir() {
			errs = append(errs, fmt.Errorf("theme %s is a directory", s.Theme))
		}
	}

	s.OutDir = expandHome(strings.TrimSpace(v.GetString("out_dir")))
	s.Debug = v.GetBool("debug")

	return s, errors.Join(errs...)
}

func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, p[1:])
	}
	return p
}
