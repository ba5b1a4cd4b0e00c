package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/ytsave/internal/config"
	"github.com/ytget/ytsave/internal/download"
	"github.com/ytget/ytsave/internal/locale"
	"github.com/ytget/ytsave/internal/media"
	"github.com/ytget/ytsave/internal/model"
	"github.com/ytget/ytsave/internal/platform"
)

// RootUI represents the main window and the single request it handles at a time
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	loader     *locale.Loader
	downloader download.Downloader
	prompter   Prompter

	// Replaced by value on every language switch
	catalog  *locale.Catalog
	language locale.Language

	linkLabel   *widget.Label
	linkEntry   *widget.Entry
	videoLabel  *widget.Label
	videoSelect *widget.Select
	audioLabel  *widget.Label
	audioSelect *widget.Select
	downloadBtn *widget.Button
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	status model.RequestStatus
	cancel context.CancelFunc
	// progressText is the byte count shown inside the downloading message
	progressText string

	// runBackground starts slow work; runForeground hands results back to the UI goroutine
	runBackground func(func())
	runForeground func(func())
	reveal        func(path string) error

	progressMutex    sync.Mutex
	lastProgressSent time.Time
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, loader *locale.Loader, downloader download.Downloader) *RootUI {
	language, catalog := loadInitialCatalog(loader, settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		settings:      settings,
		loader:        loader,
		downloader:    downloader,
		prompter:      NewDialogPrompter(window),
		catalog:       catalog,
		language:      language,
		status:        model.RequestStatusIdle,
		runBackground: func(f func()) { go f() },
		runForeground: fyne.Do,
		reveal:        platform.OpenFileInManager,
	}

	ui.setupUI()

	window.SetOnClosed(ui.cancelRequest)
	return ui
}

// loadInitialCatalog loads the configured language, falling back to the
// embedded English table when it is missing or incomplete.
func loadInitialCatalog(loader *locale.Loader, id string) (locale.Language, *locale.Catalog) {
	lang, ok := locale.LanguageByID(id)
	if !ok {
		lang = locale.DefaultLanguage()
	}

	catalog, err := loader.LoadLanguage(lang)
	if err == nil {
		return lang, catalog
	}

	log.Printf("Cannot use %s, falling back to built-in %s: %v", lang.File, locale.DefaultLanguage().Name, err)
	return locale.DefaultLanguage(), locale.Fallback()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.linkLabel = widget.NewLabel("")
	ui.linkEntry = widget.NewEntry()
	ui.linkEntry.SetPlaceHolder(LinkPlaceholder)
	ui.linkEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.videoLabel = widget.NewLabel("")
	ui.videoSelect = widget.NewSelect(videoOptions(), nil)
	ui.videoSelect.SetSelectedIndex(0)

	ui.audioLabel = widget.NewLabel("")
	ui.audioSelect = widget.NewSelect(audioOptions(), nil)
	ui.audioSelect.SetSelectedIndex(0)

	ui.downloadBtn = widget.NewButton("", ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.statusLabel.Hide()

	content := container.NewVBox(
		ui.linkLabel,
		ui.linkEntry,
		ui.videoLabel,
		ui.videoSelect,
		ui.audioLabel,
		ui.audioSelect,
		ui.downloadBtn,
		ui.progressBar,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	ui.window.SetFixedSize(true)
	ui.window.CenterOnScreen()

	ui.refreshUITexts()
	ui.createMenu()
}

func videoOptions() []string {
	var options []string
	for _, f := range model.VideoFormats() {
		options = append(options, f.Label())
	}
	return options
}

func audioOptions() []string {
	var options []string
	for _, f := range model.AudioFormats() {
		options = append(options, f.Label())
	}
	return options
}

// text is a shorthand for the active catalog; catalogs are validated on load
func (ui *RootUI) text(key locale.Key) string {
	return ui.catalog.Text(key)
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if ui.status.IsActive() {
		return
	}

	req := model.NewDownloadRequest(
		ui.linkEntry.Text,
		model.ParseVideoFormat(ui.videoSelect.Selected),
		model.ParseAudioFormat(ui.audioSelect.Selected),
	)

	if !req.HasFormat() {
		ui.prompter.Warn(ui.text(locale.KeyErrorTitle), ui.text(locale.KeySelectAtLeastOneFormat))
		return
	}

	log.Printf("Download requested: id=%s url=%s video=%q audio=%q", req.ID, req.URL, req.Video, req.Audio)

	ctx, cancel := context.WithCancel(context.Background())
	ui.cancel = cancel
	ui.setStatus(model.RequestStatusResolving)

	ui.runBackground(func() {
		stream, err := ui.downloader.Resolve(ctx, req)
		ui.runForeground(func() {
			ui.onResolved(ctx, req, stream, err)
		})
	})
}

// onResolved continues a request once its stream lookup has finished
func (ui *RootUI) onResolved(ctx context.Context, req *model.DownloadRequest, stream media.Stream, err error) {
	switch {
	case errors.Is(err, download.ErrNoStream):
		ui.finish(model.RequestStatusNoStream)
		ui.prompter.Warn(ui.text(locale.KeyErrorTitle), ui.text(locale.KeyFileNotFound))
		return
	case err != nil:
		ui.fail(err)
		return
	}

	ui.setStatus(model.RequestStatusAwaitingLocation)
	ui.prompter.ChooseDirectory(ui.text(locale.KeyDownloadButton), ui.settings.GetLastDirectory(), func(dir string, ok bool) {
		if !ok || dir == "" {
			ui.finish(model.RequestStatusCancelled)
			ui.prompter.Warn(ui.text(locale.KeyErrorTitle), ui.text(locale.KeySelectValidLocation))
			return
		}

		ui.settings.SetLastDirectory(dir)
		req.Destination = dir
		ui.startDownload(ctx, req, stream)
	})
}

func (ui *RootUI) startDownload(ctx context.Context, req *model.DownloadRequest, stream media.Stream) {
	ui.setStatus(model.RequestStatusDownloading)

	ui.runBackground(func() {
		path, err := ui.downloader.Download(ctx, req, stream, ui.onProgress)
		ui.runForeground(func() {
			if err != nil {
				ui.fail(err)
				return
			}
			log.Printf("Request %s finished: %s", req.ID, path)
			ui.finish(model.RequestStatusCompleted)
			ui.sendCompletionNotification(path)
			ui.prompter.Inform(ui.text(locale.KeyDownloadCompleted), ui.text(locale.KeyFileDownloadedSuccess))
			if ui.settings.GetAutoRevealOnComplete() {
				ui.onRevealFile(path)
			}
		})
	})
}

// sendCompletionNotification sends a system notification for a saved file
func (ui *RootUI) sendCompletionNotification(path string) {
	fyne.CurrentApp().SendNotification(fyne.NewNotification(ui.text(locale.KeyDownloadCompleted), filepath.Base(path)))
}

// onRevealFile shows the saved file in the system file manager
func (ui *RootUI) onRevealFile(path string) {
	ui.runBackground(func() {
		if err := ui.reveal(path); err != nil {
			log.Printf("Error revealing file %s: %v", path, err)
			return
		}
		log.Printf("File revealed: %s", path)
	})
}

// onProgress is called from the download goroutine
func (ui *RootUI) onProgress(written, total int64) {
	ui.progressMutex.Lock()
	now := time.Now()
	if written < total && now.Sub(ui.lastProgressSent) < ProgressMinInterval {
		ui.progressMutex.Unlock()
		return
	}
	ui.lastProgressSent = now
	ui.progressMutex.Unlock()

	ui.runForeground(func() {
		if ui.status != model.RequestStatusDownloading {
			return
		}
		if total > 0 {
			ui.progressBar.SetValue(float64(written) / float64(total))
			ui.progressText = fmt.Sprintf(ProgressFormat, humanize.Bytes(uint64(written)), humanize.Bytes(uint64(total)))
		} else {
			ui.progressText = humanize.Bytes(uint64(written))
		}
		ui.statusLabel.SetText(ui.downloadingText())
	})
}

// downloadingText renders the downloading message in the active language
func (ui *RootUI) downloadingText() string {
	text, err := ui.catalog.Format(locale.KeyDownloading, map[string]string{locale.ArgProgress: ui.progressText})
	if err != nil {
		return ui.progressText
	}
	return text
}

// fail ends the request and shows the error inside the localized template
func (ui *RootUI) fail(err error) {
	if errors.Is(err, context.Canceled) {
		ui.finish(model.RequestStatusCancelled)
		return
	}

	ui.finish(model.RequestStatusFailed)
	message, ferr := ui.catalog.Format(locale.KeyErrorDownload, map[string]string{locale.ArgErrorMessage: err.Error()})
	if ferr != nil {
		message = err.Error()
	}
	ui.prompter.Fail(ui.text(locale.KeyErrorTitle), message)
}

// setStatus updates the status and the widgets that depend on it
func (ui *RootUI) setStatus(status model.RequestStatus) {
	ui.status = status

	if status.IsActive() {
		ui.downloadBtn.Disable()
	} else {
		ui.downloadBtn.Enable()
	}

	switch status {
	case model.RequestStatusResolving:
		ui.statusLabel.SetText(ui.text(locale.KeyResolving))
		ui.statusLabel.Show()
		ui.progressBar.Hide()
	case model.RequestStatusDownloading:
		ui.progressMutex.Lock()
		ui.lastProgressSent = time.Time{}
		ui.progressMutex.Unlock()
		ui.progressText = ""
		ui.progressBar.SetValue(0)
		ui.progressBar.Show()
		ui.statusLabel.SetText(ui.downloadingText())
		ui.statusLabel.Show()
	case model.RequestStatusAwaitingLocation:
		ui.statusLabel.Hide()
	default:
		ui.progressBar.Hide()
		ui.statusLabel.Hide()
	}
}

// finish records a terminal status and releases the request context
func (ui *RootUI) finish(status model.RequestStatus) {
	ui.setStatus(status)
	if ui.cancel != nil {
		ui.cancel()
		ui.cancel = nil
	}
}

// cancelRequest aborts the in-flight request, if any
func (ui *RootUI) cancelRequest() {
	if ui.cancel != nil {
		ui.cancel()
	}
}
