package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI owns the window widgets, renders every label from the active
// locale.Catalog, and drives one download request per click through the
// download service. Slow work runs on goroutines; widgets and dialogs are only
// touched from the Fyne event goroutine via fyne.Do.
