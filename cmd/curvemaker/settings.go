package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	dark "github.com/thiagokokada/dark-mode-go"
	"golang.org/x/image/colornames"
)

// ErrInvalidSettings is returned for settings the application cannot run with.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings configure the application. They are read once at startup and
// never changed afterwards.
type Settings struct {
	Width      int     `json:"width"`      // window width
	Height     int     `json:"height"`     // window height
	Title      string  `json:"title"`      // window title
	Columns    int     `json:"columns"`    // editors per row
	Rows       int     `json:"rows"`       // rows of editors
	Margin     float64 `json:"margin"`     // space between editors
	Background string  `json:"background"` // color name; empty selects by theme
	Fill       bool    `json:"fill"`       // shade the area under curves
	Trace      string  `json:"trace"`      // trace level: Error, Info or Debug
}

// DefaultSettings returns the settings used if nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		Width:   1000,
		Height:  800,
		Title:   "CurveMaker",
		Columns: 2,
		Rows:    2,
		Margin:  50,
		Fill:    true,
		Trace:   "Error",
	}
}

// LoadSettings reads a JSON settings file. Values missing from the file
// keep their value in s.
func LoadSettings(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	return nil
}

// Validate checks if an application can be set up from s.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Width, s.Height)
	}
	if s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%w: grid of %dx%d editors", ErrInvalidSettings, s.Columns, s.Rows)
	}
	if s.Margin < 0 {
		return fmt.Errorf("%w: negative margin %g", ErrInvalidSettings, s.Margin)
	}
	w := float64(s.Width)/float64(s.Columns) - s.Margin
	h := float64(s.Height)/float64(s.Rows) - s.Margin
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: no room for editors with margin %g", ErrInvalidSettings, s.Margin)
	}
	if s.Background != "" {
		if _, ok := colornames.Map[strings.ToLower(s.Background)]; !ok {
			return fmt.Errorf("%w: unknown color %q", ErrInvalidSettings, s.Background)
		}
	}
	return nil
}

// BackgroundColor returns the configured window background. Without a
// configured color, it follows the desktop theme.
func (s Settings) BackgroundColor() color.Color {
	if c, ok := colornames.Map[strings.ToLower(s.Background)]; ok {
		return c
	}
	darkMode, err := dark.IsDarkMode()
	if err != nil {
		tracing.Select("curvemaker").Infof("cannot detect theme: %v", err)
		return colornames.Beige
	}
	if darkMode {
		return colornames.Darkslategray
	}
	return colornames.Beige
}
