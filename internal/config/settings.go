package config

import (
	"os"

	"fyne.io/fyne/v2"

	"github.com/ytget/ytsave/internal/locale"
	"github.com/ytget/ytsave/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage           = "app_language"
	KeyLastDirectory      = "last_directory"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultAutoRevealComplete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language ID, English when unset or unknown
func (s *Settings) GetLanguage() string {
	id := s.app.Preferences().String(KeyLanguage)
	lang, ok := locale.LanguageByID(id)
	if !ok {
		return locale.DefaultLanguage().ID
	}
	return lang.ID
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(id string) {
	s.app.Preferences().SetString(KeyLanguage, id)
}

// GetLastDirectory returns the directory the folder dialog starts in:
// the last one chosen if it still exists, otherwise the Desktop.
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	desktop, err := platform.GetDesktopDir()
	if err != nil {
		return os.TempDir()
	}
	return desktop
}

// SetLastDirectory remembers the directory of the last download
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetAutoRevealOnComplete returns whether to reveal finished downloads in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal finished downloads in the file manager
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}
