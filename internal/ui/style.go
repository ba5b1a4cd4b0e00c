package ui

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"gopkg.in/yaml.v3"
)

var styleColorNames = map[string]fyne.ThemeColorName{
	"primary":    theme.ColorNamePrimary,
	"background": theme.ColorNameBackground,
	"foreground": theme.ColorNameForeground,
	"button":     theme.ColorNameButton,
	"input":      theme.ColorNameInputBackground,
	"error":      theme.ColorNameError,
	"success":    theme.ColorNameSuccess,
	"warning":    theme.ColorNameWarning,
}

var styleSizeNames = map[string]fyne.ThemeSizeName{
	"padding":       theme.SizeNamePadding,
	"inner_padding": theme.SizeNameInnerPadding,
	"text":          theme.SizeNameText,
	"heading":       theme.SizeNameHeadingText,
	"input_radius":  theme.SizeNameInputRadius,
}

// StyleSheet holds presentation overrides read from a YAML file:
//
//	colors:
//	  primary: "#1976d2"
//	sizes:
//	  text: 14
type StyleSheet struct {
	colors map[fyne.ThemeColorName]color.Color
	sizes  map[fyne.ThemeSizeName]float32
}

type styleFile struct {
	Colors map[string]string  `yaml:"colors"`
	Sizes  map[string]float32 `yaml:"sizes"`
}

// LoadStyleSheet reads path. A missing file is not an error: it returns nil, nil.
func LoadStyleSheet(path string) (*StyleSheet, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	return ParseStyleSheet(data)
}

// ParseStyleSheet decodes YAML stylesheet content
func ParseStyleSheet(data []byte) (*StyleSheet, error) {
	var file styleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode stylesheet: %w", err)
	}

	sheet := &StyleSheet{
		colors: make(map[fyne.ThemeColorName]color.Color),
		sizes:  make(map[fyne.ThemeSizeName]float32),
	}
	for key, value := range file.Colors {
		name, ok := styleColorNames[strings.ToLower(key)]
		if !ok {
			return nil, fmt.Errorf("unknown color %q", key)
		}
		c, err := parseHexColor(value)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", key, err)
		}
		sheet.colors[name] = c
	}
	for key, value := range file.Sizes {
		name, ok := styleSizeNames[strings.ToLower(key)]
		if !ok {
			return nil, fmt.Errorf("unknown size %q", key)
		}
		if value < 0 {
			return nil, fmt.Errorf("size %s must not be negative", key)
		}
		sheet.sizes[name] = value
	}
	return sheet, nil
}

func (s *StyleSheet) color(name fyne.ThemeColorName) (color.Color, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.colors[name]
	return c, ok
}

func (s *StyleSheet) size(name fyne.ThemeSizeName) (float32, bool) {
	if s == nil {
		return 0, false
	}
	v, ok := s.sizes[name]
	return v, ok
}

// parseHexColor accepts #rgb, #rrggbb and #rrggbbaa
func parseHexColor(value string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid hex color %q", value)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q", value)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
