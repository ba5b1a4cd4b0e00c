package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/ytsave/internal/locale"
	"github.com/ytget/ytsave/internal/model"
)

// createMenu creates the language menu with the active language checked,
// and the options menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.text(locale.KeyLanguagesMenu))

	for _, lang := range locale.Languages() {
		item := fyne.NewMenuItem(lang.Name, func() {
			ui.onLanguageChange(lang)
		})
		item.Checked = lang.ID == ui.language.ID
		languageMenu.Items = append(languageMenu.Items, item)
	}

	revealItem := fyne.NewMenuItem(ui.text(locale.KeyRevealOnComplete), func() {
		ui.settings.SetAutoRevealOnComplete(!ui.settings.GetAutoRevealOnComplete())
		ui.createMenu()
	})
	revealItem.Checked = ui.settings.GetAutoRevealOnComplete()
	optionsMenu := fyne.NewMenu(ui.text(locale.KeyOptionsMenu), revealItem)

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu, optionsMenu))
}

// onLanguageChange loads lang and swaps it in. On failure the previous
// catalog stays active and an error is shown in the current language.
func (ui *RootUI) onLanguageChange(lang locale.Language) {
	catalog, err := ui.loader.LoadLanguage(lang)
	if err != nil {
		log.Printf("Keeping %s: cannot switch to %s: %v", ui.language.Name, lang.Name, err)
		message, ferr := ui.catalog.Format(locale.KeyLanguageUnavailable, map[string]string{locale.ArgLanguage: lang.Name})
		if ferr != nil {
			message = err.Error()
		}
		ui.prompter.Fail(ui.text(locale.KeyErrorTitle), message)
		return
	}

	ui.catalog = catalog
	ui.language = lang
	ui.settings.SetLanguage(lang.ID)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.text(locale.KeyTitle))
	ui.linkLabel.SetText(ui.text(locale.KeyEnterLink))
	ui.videoLabel.SetText(ui.text(locale.KeySelectVideoFormat))
	ui.audioLabel.SetText(ui.text(locale.KeySelectAudioFormat))
	ui.downloadBtn.SetText(ui.text(locale.KeyDownloadButton))

	switch ui.status {
	case model.RequestStatusResolving:
		ui.statusLabel.SetText(ui.text(locale.KeyResolving))
	case model.RequestStatusDownloading:
		ui.statusLabel.SetText(ui.downloadingText())
	}
}
