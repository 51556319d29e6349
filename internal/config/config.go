package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dshills/hexstorm/internal/config/loader"
	"github.com/dshills/hexstorm/internal/engine/cursor"
	"github.com/dshills/hexstorm/internal/engine/history"
	"github.com/dshills/hexstorm/internal/engine/layout"
	"github.com/dshills/hexstorm/internal/logging"
)

// MaxRecentFiles caps the recent files list.
const MaxRecentFiles = 10

// Config holds all hexstorm settings.
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Layout  LayoutConfig  `toml:"layout" yaml:"layout"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`

	// Path is the file the configuration was read from, if any.
	Path string `toml:"-" yaml:"-"`
}

// LogConfig configures the rotating log file.
type LogConfig struct {
	Level      string `toml:"level" yaml:"level"`
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `toml:"compress" yaml:"compress"`
}

// LayoutConfig holds the font metrics and row margins, in terminal cells.
type LayoutConfig struct {
	CharWidth     int `toml:"char_width" yaml:"char_width"`
	CharHeight    int `toml:"char_height" yaml:"char_height"`
	CellPadding   int `toml:"cell_padding" yaml:"cell_padding"`
	OffsetDigits  int `toml:"offset_digits" yaml:"offset_digits"`
	OffsetPadding int `toml:"offset_padding" yaml:"offset_padding"`
	HexASCIIGap   int `toml:"hex_ascii_gap" yaml:"hex_ascii_gap"`
}

// HistoryConfig configures undo/redo.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// EditorConfig holds session behavior settings.
type EditorConfig struct {
	ReadOnly    bool   `toml:"read_only" yaml:"read_only"`
	StartMode   string `toml:"start_mode" yaml:"start_mode"`
	RecentFiles int    `toml:"recent_files" yaml:"recent_files"`
}

// Default returns the built-in configuration.
func Default() *Config {
	m := layout.TerminalMetrics()
	g := layout.TerminalMargins()
	lc := logging.DefaultConfig()
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  lc.MaxSizeMB,
			MaxBackups: lc.MaxBackups,
			MaxAgeDays: lc.MaxAgeDays,
			Compress:   lc.Compress,
		},
		Layout: LayoutConfig{
			CharWidth:     m.CharWidth,
			CharHeight:    m.CharHeight,
			CellPadding:   g.CellPadding,
			OffsetDigits:  g.OffsetDigits,
			OffsetPadding: g.OffsetPadding,
			HexASCIIGap:   g.HexASCIIGap,
		},
		History: HistoryConfig{MaxEntries: history.DefaultMaxEntries},
		Editor: EditorConfig{
			StartMode:   "hex",
			RecentFiles: MaxRecentFiles,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/hexstorm/config.toml, falling back to
// the platform user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return "config.toml"
		}
	}
	return filepath.Join(dir, "hexstorm", "config.toml")
}

// Load reads the configuration at path over the defaults. An empty path
// uses DefaultPath(). A missing file yields the defaults.
func Load(path string) (*Config, error) {
	return LoadFS(loader.DefaultFS(), path, os.LookupEnv)
}

// LoadFS is Load with an explicit file system and environment lookup.
func LoadFS(fsys loader.FileSystem, path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	found, err := loader.New(fsys).LoadFrom(path, cfg)
	if err != nil {
		return nil, err
	}
	if found {
		cfg.Path = path
	}

	if lookupEnv != nil {
		if err := cfg.applyEnv(lookupEnv); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from HEXSTORM_* environment variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("HEXSTORM_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("HEXSTORM_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := lookup("HEXSTORM_READONLY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ValidationError{Path: "HEXSTORM_READONLY", Value: v, Message: "must be a boolean"}
		}
		c.Editor.ReadOnly = b
	}
	return nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(path string, value any, msg string) {
		errs = append(errs, &ValidationError{Path: path, Value: value, Message: msg})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		add("log.level", c.Log.Level, "must be debug, info, warn or error")
	}
	if c.Log.MaxSizeMB < 0 {
		add("log.max_size_mb", c.Log.MaxSizeMB, "must not be negative")
	}
	if c.Layout.CharWidth < 1 {
		add("layout.char_width", c.Layout.CharWidth, "must be at least 1")
	}
	if c.Layout.CharHeight < 1 {
		add("layout.char_height", c.Layout.CharHeight, "must be at least 1")
	}
	for path, v := range map[string]int{
		"layout.cell_padding":   c.Layout.CellPadding,
		"layout.offset_digits":  c.Layout.OffsetDigits,
		"layout.offset_padding": c.Layout.OffsetPadding,
		"layout.hex_ascii_gap":  c.Layout.HexASCIIGap,
	} {
		if v < 0 {
			add(path, v, "must not be negative")
		}
	}
	if c.History.MaxEntries < 1 {
		add("history.max_entries", c.History.MaxEntries, "must be at least 1")
	}
	if _, err := ParseMode(c.Editor.StartMode); err != nil {
		add("editor.start_mode", c.Editor.StartMode, "must be hex or ascii")
	}
	if c.Editor.RecentFiles < 0 || c.Editor.RecentFiles > MaxRecentFiles {
		add("editor.recent_files", c.Editor.RecentFiles, fmt.Sprintf("must be between 0 and %d", MaxRecentFiles))
	}

	if len(errs) == 0 {
		return nil
	}
	return &MultiError{Errors: errs}
}

// ParseMode parses "hex" or "ascii".
func ParseMode(s string) (cursor.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "hex":
		return cursor.ModeHex, nil
	case "ascii", "text":
		return cursor.ModeASCII, nil
	default:
		return cursor.ModeHex, fmt.Errorf("unknown edit mode %q", s)
	}
}

// Metrics returns the configured font metrics.
func (l LayoutConfig) Metrics() layout.Metrics {
	return layout.Metrics{CharWidth: l.CharWidth, CharHeight: l.CharHeight}
}

// Margins returns the configured row margins.
func (l LayoutConfig) Margins() layout.Margins {
	return layout.Margins{
		CellPadding:   l.CellPadding,
		OffsetDigits:  l.OffsetDigits,
		OffsetPadding: l.OffsetPadding,
		HexASCIIGap:   l.HexASCIIGap,
	}
}

// Logging converts the log settings into a logger configuration.
func (l LogConfig) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level, _ = logging.ParseLevel(l.Level)
	cfg.Path = l.File
	cfg.MaxSizeMB = l.MaxSizeMB
	cfg.MaxBackups = l.MaxBackups
	cfg.MaxAgeDays = l.MaxAgeDays
	cfg.Compress = l.Compress
	return cfg
}
