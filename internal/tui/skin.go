package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skin is a named terminal palette. Colors are "#rrggbb" or ANSI 0-255.
type Skin struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Dim        string `yaml:"dim"`
	Alert      string `yaml:"alert"`
	Glitch     string `yaml:"glitch"`
}

// ErrUnknownSkin is returned when a skin is neither built in nor on disk.
var ErrUnknownSkin = errors.New("unknown skin")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var builtinSkins = map[string]Skin{
	"terminal": {
		Name:       "terminal",
		Background: "#050805",
		Foreground: "#00ff88",
		Accent:     "#e8ffe8",
		Dim:        "#2f6b4a",
		Alert:      "#ff0044",
		Glitch:     "#ff00ff",
	},
	"amber": {
		Name:       "amber",
		Background: "#0a0600",
		Foreground: "#ffb000",
		Accent:     "#fff1cc",
		Dim:        "#7a5400",
		Alert:      "#ff3b1f",
		Glitch:     "#00e5ff",
	},
}

// DefaultSkin returns the green-on-black palette.
func DefaultSkin() Skin {
	return builtinSkins["terminal"]
}

// LoadSkin resolves name to a built-in skin, a path ending in .yml/.yaml,
// or <configDir>/skins/<name>.yml.
func LoadSkin(name, configDir string) (Skin, error) {
	if name == "" {
		return DefaultSkin(), nil
	}
	if s, ok := builtinSkins[name]; ok {
		return s, nil
	}

	path := name
	if ext := filepath.Ext(name); ext != ".yml" && ext != ".yaml" {
		path = filepath.Join(configDir, "skins", name+".yml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Skin{}, fmt.Errorf("%w %q (looked in %s)", ErrUnknownSkin, name, path)
		}
		return Skin{}, fmt.Errorf("reading skin %s: %w", path, err)
	}

	s, err := ParseSkin(data)
	if err != nil {
		return Skin{}, fmt.Errorf("skin %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// ParseSkin decodes a YAML skin. Missing colors inherit from the default skin.
func ParseSkin(data []byte) (Skin, error) {
	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Skin{}, fmt.Errorf("decoding yaml: %w", err)
	}
	for field, c := range s.colors() {
		if c == "" {
			continue
		}
		if !validColor(c) {
			return Skin{}, fmt.Errorf("%s: invalid color %q", field, c)
		}
	}
	return s.overlay(DefaultSkin()), nil
}

func (s Skin) colors() map[string]string {
	return map[string]string{
		"background": s.Background,
		"foreground": s.Foreground,
		"accent":     s.Accent,
		"dim":        s.Dim,
		"alert":      s.Alert,
		"glitch":     s.Glitch,
	}
}

// overlay fills every empty color from base.
func (s Skin) overlay(base Skin) Skin {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	s.Background = pick(s.Background, base.Background)
	s.Foreground = pick(s.Foreground, base.Foreground)
	s.Accent = pick(s.Accent, base.Accent)
	s.Dim = pick(s.Dim, base.Dim)
	s.Alert = pick(s.Alert, base.Alert)
	s.Glitch = pick(s.Glitch, base.Glitch)
	return s
}

func validColor(c string) bool {
	if hexColor.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}
