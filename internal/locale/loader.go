package locale

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
)

// ErrUnavailable marks a language file that could not be found.
var ErrUnavailable = errors.New("localization unavailable")

//go:embed languages/*.json
var embedded embed.FS

// Loader reads language files from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader reading files from fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Embedded returns a loader over the language files compiled into the binary.
func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "languages")
	if err != nil {
		panic(err)
	}
	return NewLoader(sub)
}

// Load reads one flat JSON object from file.
//
// A missing file yields an empty catalog together with an error wrapping
// ErrUnavailable, so callers can tell "nothing to show" apart from a broken file.
func (l *Loader) Load(file string) (*Catalog, error) {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Localization file %q not found", file)
			return NewCatalog(file, nil), fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return NewCatalog(file, entries), nil
}

// LoadLanguage loads the file of lang and validates it.
func (l *Loader) LoadLanguage(lang Language) (*Catalog, error) {
	catalog, err := l.Load(lang.File)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Fallback returns the embedded catalog of the default language.
func Fallback() *Catalog {
	catalog, err := Embedded().LoadLanguage(DefaultLanguage())
	if err != nil {
		panic(fmt.Sprintf("embedded %s catalog is broken: %v", DefaultLanguage().File, err))
	}
	return catalog
}
