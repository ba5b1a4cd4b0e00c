package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 300
)

// Text fragments
const (
	LinkPlaceholder = "https://www.youtube.com/watch?v=..."
	DismissLabel    = "OK"
	ProgressFormat  = "%s / %s"
)

// Progress updates
const (
	ProgressMinInterval = 100 * time.Millisecond
)
