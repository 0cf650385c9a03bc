// Package config loads fixedui.yaml and resolves application defaults.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fixedui/pkg/theme"
)

// FileName is the configuration file looked up in the project root.
const FileName = "fixedui.yaml"

// Default capacities and display size.
const (
	DefaultWidgets = 10
	DefaultWindows = 3
	DefaultWidth   = 240
	DefaultHeight  = 240
)

// Config represents the optional fixedui.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Display  DisplayConfig  `yaml:"display"`
	Capacity CapacityConfig `yaml:"capacity"`
	Theme    ThemeConfig    `yaml:"theme"`
	Log      LogConfig      `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// DisplayConfig is the panel size in pixels.
type DisplayConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// CapacityConfig sizes the widget arena and window registry.
// Window slot 0 is reserved, so Windows counts it.
type CapacityConfig struct {
	Widgets int `yaml:"widgets,omitempty"`
	Windows int `yaml:"windows,omitempty"`
}

// ThemeConfig overrides theme colours and fonts. Empty fields keep defaults.
type ThemeConfig struct {
	WindowBackground string  `yaml:"window_background,omitempty"`
	Label            string  `yaml:"label,omitempty"`
	ButtonDark       string  `yaml:"button_dark,omitempty"`
	ButtonLight      string  `yaml:"button_light,omitempty"`
	Border           string  `yaml:"border,omitempty"`
	BorderLight      string  `yaml:"border_light,omitempty"`
	Font             string  `yaml:"font,omitempty"`
	TextSize         float64 `yaml:"text_size,omitempty"`
}

// LogConfig selects the logger level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns a configuration with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Parse decodes YAML and fills defaults for omitted fields.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional reads fixedui.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

func (c *Config) applyDefaults() {
	if c.Display.Width == 0 {
		c.Display.Width = DefaultWidth
	}
	if c.Display.Height == 0 {
		c.Display.Height = DefaultHeight
	}
	if c.Capacity.Widgets == 0 {
		c.Capacity.Widgets = DefaultWidgets
	}
	if c.Capacity.Windows == 0 {
		c.Capacity.Windows = DefaultWindows
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks capacities, display size, log level and theme values.
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size must be positive (got %dx%d)", c.Display.Width, c.Display.Height)
	}
	if c.Capacity.Widgets < 1 {
		return fmt.Errorf("capacity.widgets must be at least 1 (got %d)", c.Capacity.Widgets)
	}
	if c.Capacity.Windows < 2 {
		return fmt.Errorf("capacity.windows must be at least 2, slot 0 is reserved (got %d)", c.Capacity.Windows)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Theme.TextSize < 0 {
		return fmt.Errorf("theme.text_size must not be negative (got %v)", c.Theme.TextSize)
	}
	_, err := c.ResolveTheme()
	return err
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log.level: %w", err)
	}
	return level, nil
}

// ResolveTheme applies the theme overrides on top of theme.Default.
func (c *Config) ResolveTheme() (*theme.Theme, error) {
	th := theme.Default()
	colours := []struct {
		name  string
		value string
		dst   *theme.Color
	}{
		{"window_background", c.Theme.WindowBackground, &th.WindowBackground},
		{"label", c.Theme.Label, &th.Label},
		{"button_dark", c.Theme.ButtonDark, &th.ButtonDark},
		{"button_light", c.Theme.ButtonLight, &th.ButtonLight},
		{"border", c.Theme.Border, &th.Border},
		{"border_light", c.Theme.BorderLight, &th.BorderLight},
	}
	for _, col := range colours {
		if col.value == "" {
			continue
		}
		parsed, err := theme.ParseColor(col.value)
		if err != nil {
			return nil, fmt.Errorf("theme.%s: %w", col.name, err)
		}
		*col.dst = parsed
	}
	if font := strings.TrimSpace(c.Theme.Font); font != "" {
		th.FontName = font
	}
	if c.Theme.TextSize > 0 {
		th.TextSize = c.Theme.TextSize
	}
	return th, nil
}

// Resolved contains resolved configuration values for a project directory.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	AppID      string
	Config     *Config
}

// Resolve loads fixedui.yaml (if present) and resolves defaults from go.mod.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		AppID:      appID,
		Config:     cfg,
	}, nil
}

// FindProjectRoot walks up from start to find go.mod.
func FindProjectRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
		if i := strings.LastIndex(prefix, "/"); i >= 0 {
			base = prefix[i+1:]
		} else {
			base = prefix
		}
	}
	if base == "" || base == "." || base == "/" {
		return "fixedui_app"
	}
	return base
}

func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return "com.example." + sanitizeSegment(appName)
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}
	segments := host
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment)
	}
	return strings.Join(segments, ".")
}

func sanitizeSegment(segment string) string {
	var out []rune
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		}
	}
	if len(out) == 0 {
		out = []rune("app")
	}
	if out[0] >= '0' && out[0] <= '9' || out[0] == '_' {
		out = append([]rune{'a'}, out...)
	}
	return string(out)
}

func validateAppID(appID string) error {
	if !strings.Contains(appID, ".") {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range strings.Split(appID, ".") {
		if segment == "" {
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		}
		if segment[0] == '_' {
			return fmt.Errorf("app.id segments cannot start with '_' (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
