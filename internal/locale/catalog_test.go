package locale

import (
	"errors"
	"strings"
	"testing"
)

func completeEntries() map[string]string {
	entries := make(map[string]string, len(RequiredKeys))
	for _, key := range RequiredKeys {
		entries[string(key)] = "text for " + string(key)
	}
	entries[string(KeyErrorDownload)] = "failed: {error_message}"
	return entries
}

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog("test.json", map[string]string{"title": "Hello"})

	text, err := catalog.Lookup(KeyTitle)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "Hello" {
		t.Errorf("Expected 'Hello', got '%s'", text)
	}

	_, err = catalog.Lookup(KeyEnterLink)
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected MissingKeyError, got %v", err)
	}
	if missing.Key != KeyEnterLink || missing.Source != "test.json" {
		t.Errorf("Unexpected error fields: %+v", missing)
	}
}

func TestCatalogTextPanicsOnMissingKey(t *testing.T) {
	catalog := NewCatalog("empty.json", nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected Text to panic for a missing key")
		}
		if _, ok := r.(*MissingKeyError); !ok {
			t.Errorf("Expected *MissingKeyError panic value, got %T", r)
		}
	}()

	catalog.Text(KeyTitle)
}

func TestCatalogIsCopied(t *testing.T) {
	entries := map[string]string{"title": "Before"}
	catalog := NewCatalog("test.json", entries)

	entries["title"] = "After"

	if got := catalog.Text(KeyTitle); got != "Before" {
		t.Errorf("Catalog should not share the source map, got '%s'", got)
	}
}

func TestCatalogFormat(t *testing.T) {
	catalog := NewCatalog("test.json", map[string]string{
		"error_download": "Error: {error_message} ({error_message})",
		"title":          "Plain",
	})

	text, err := catalog.Format(KeyErrorDownload, map[string]string{ArgErrorMessage: "boom"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "Error: boom (boom)" {
		t.Errorf("Unexpected formatted text: %s", text)
	}

	text, err = catalog.Format(KeyTitle, nil)
	if err != nil || text != "Plain" {
		t.Errorf("Expected 'Plain' without args, got '%s' (%v)", text, err)
	}

	text, _ = catalog.Format(KeyErrorDownload, map[string]string{"other": "x"})
	if !strings.Contains(text, "{error_message}") {
		t.Errorf("Unknown placeholders should be left alone, got %s", text)
	}

	if _, err := catalog.Format(KeyFileNotFound, nil); err == nil {
		t.Error("Expected error for missing key")
	}
}

func TestCatalogValidate(t *testing.T) {
	if err := NewCatalog("ok.json", completeEntries()).Validate(); err != nil {
		t.Fatalf("Expected complete catalog to validate, got %v", err)
	}

	entries := completeEntries()
	delete(entries, string(KeyDownloadButton))
	err := NewCatalog("partial.json", entries).Validate()
	var missing *MissingKeyError
	if !errors.As(err, &missing) || missing.Key != KeyDownloadButton {
		t.Errorf("Expected missing download_button, got %v", err)
	}

	entries = completeEntries()
	entries[string(KeyErrorDownload)] = "failed"
	if err := NewCatalog("template.json", entries).Validate(); !errors.Is(err, ErrBadTemplate) {
		t.Errorf("Expected ErrBadTemplate, got %v", err)
	}
}
