package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDesktopDirIn(t *testing.T) {
	home := t.TempDir()

	// No Desktop yet: fall back to home
	if got := desktopDirIn(home); got != home {
		t.Errorf("Expected home fallback %s, got %s", home, got)
	}

	desktop := filepath.Join(home, DesktopDirName)
	if err := os.Mkdir(desktop, DefaultDirPermissions); err != nil {
		t.Fatal(err)
	}
	if got := desktopDirIn(home); got != desktop {
		t.Errorf("Expected %s, got %s", desktop, got)
	}
}

func TestGetDesktopDir(t *testing.T) {
	dir, err := GetDesktopDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if dir == "" {
		t.Fatal("Desktop directory is empty")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Simple Title", "Simple Title"},
		{`AC/DC: Back in Black?`, "AC_DC_ Back in Black_"},
		{"tab\tand\nnewline", "tabandnewline"},
		{"  ..hidden..  ", "hidden"},
		{"動画タイトル", "動画タイトル"},
		{`<>:"/\|?*`, "_________"},
		{"", ""},
		{" . ", ""},
	}

	for _, test := range tests {
		if got := SanitizeFileName(test.input); got != test.expected {
			t.Errorf("SanitizeFileName(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestSanitizeFileNameLength(t *testing.T) {
	long := strings.Repeat("日本", 200)
	got := SanitizeFileName(long)

	if len(got) > MaxFileNameBytes {
		t.Errorf("Expected at most %d bytes, got %d", MaxFileNameBytes, len(got))
	}
	if !utf8.ValidString(got) {
		t.Error("Truncated name is not valid UTF-8")
	}
}

func TestNextAvailablePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Test Video.mp4")

	got, err := NextAvailablePath(path)
	if err != nil || got != path {
		t.Fatalf("Expected free path %s, got %s (%v)", path, got, err)
	}

	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = NextAvailablePath(path)
	if err != nil {
		t.Fatalf("NextAvailablePath failed: %v", err)
	}
	if expected := filepath.Join(dir, "Test Video (1).mp4"); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	if err := os.WriteFile(got, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}
	got, _ = NextAvailablePath(path)
	if expected := filepath.Join(dir, "Test Video (2).mp4"); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestOpenFileInManagerMissingFile(t *testing.T) {
	err := OpenFileInManager(filepath.Join(t.TempDir(), "missing.mp4"))
	if err == nil {
		t.Error("Expected error for a missing file")
	}
}
