package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Prompter shows modal feedback and asks the user for a directory.
// All methods must be called from the UI goroutine.
type Prompter interface {
	Warn(title, message string)
	Inform(title, message string)
	Fail(title, message string)
	// ChooseDirectory opens a folder picker starting at start and reports the
	// chosen path, or ok=false when the user cancels.
	ChooseDirectory(title, start string, done func(dir string, ok bool))
}

// DialogPrompter implements Prompter with Fyne dialogs on a window
type DialogPrompter struct {
	window fyne.Window
}

// NewDialogPrompter creates a prompter attached to window
func NewDialogPrompter(window fyne.Window) *DialogPrompter {
	return &DialogPrompter{window: window}
}

func (p *DialogPrompter) Warn(title, message string) {
	p.showWithIcon(title, message, theme.WarningIcon())
}

func (p *DialogPrompter) Inform(title, message string) {
	dialog.ShowInformation(title, message, p.window)
}

func (p *DialogPrompter) Fail(title, message string) {
	p.showWithIcon(title, message, theme.ErrorIcon())
}

func (p *DialogPrompter) showWithIcon(title, message string, icon fyne.Resource) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	content := container.NewBorder(nil, nil, widget.NewIcon(icon), nil, label)
	dialog.ShowCustom(title, DismissLabel, content, p.window)
}

func (p *DialogPrompter) ChooseDirectory(title, start string, done func(dir string, ok bool)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder dialog failed: %v", err)
			done("", false)
			return
		}
		if uri == nil {
			done("", false)
			return
		}
		done(uri.Path(), true)
	}, p.window)

	if start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(lister)
		} else {
			log.Printf("Cannot start folder dialog in %s: %v", start, err)
		}
	}
	d.SetConfirmText(title)
	d.Resize(p.window.Canvas().Size())
	d.Show()
}
