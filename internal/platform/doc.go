package platform

// Package platform contains OS integration helpers: user directories,
// directory creation, and file names that are safe on every desktop OS.
