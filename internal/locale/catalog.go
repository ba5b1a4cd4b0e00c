package locale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadTemplate is returned by Validate when error_download cannot carry the error text.
var ErrBadTemplate = errors.New("error_download has no {" + ArgErrorMessage + "} placeholder")

// MissingKeyError reports a lookup of a key the catalog does not define.
type MissingKeyError struct {
	Key    Key
	Source string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing localization key %q in %s", e.Key, e.Source)
}

// Catalog is an immutable key to text table for one language.
type Catalog struct {
	source  string
	entries map[Key]string
}

// NewCatalog copies entries into a new catalog. source names the file it came from.
func NewCatalog(source string, entries map[string]string) *Catalog {
	c := &Catalog{
		source:  source,
		entries: make(map[Key]string, len(entries)),
	}
	for k, v := range entries {
		c.entries[Key(k)] = v
	}
	return c
}

// Source returns the file the catalog was loaded from
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the text for key or a *MissingKeyError.
func (c *Catalog) Lookup(key Key) (string, error) {
	text, ok := c.entries[key]
	if !ok {
		return "", &MissingKeyError{Key: key, Source: c.source}
	}
	return text, nil
}

// Text returns the text for key and panics with *MissingKeyError when it is absent.
// Use it only on catalogs that passed Validate.
func (c *Catalog) Text(key Key) string {
	text, err := c.Lookup(key)
	if err != nil {
		panic(err)
	}
	return text
}

// Format substitutes {name} placeholders in the text for key.
// Placeholders without a matching argument are left as they are.
func (c *Catalog) Format(key Key, args map[string]string) (string, error) {
	text, err := c.Lookup(key)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return text, nil
	}

	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text), nil
}

// Validate checks that every required key is present and that the error
// template can carry the error message.
func (c *Catalog) Validate() error {
	for _, key := range RequiredKeys {
		if _, err := c.Lookup(key); err != nil {
			return err
		}
	}
	if !strings.Contains(c.entries[KeyErrorDownload], "{"+ArgErrorMessage+"}") {
		return fmt.Errorf("%s: %w", c.source, ErrBadTemplate)
	}
	return nil
}
