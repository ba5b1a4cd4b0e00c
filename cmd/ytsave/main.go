package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/alexflint/go-arg"

	"github.com/ytget/ytsave/internal/config"
	"github.com/ytget/ytsave/internal/download"
	"github.com/ytget/ytsave/internal/locale"
	"github.com/ytget/ytsave/internal/media"
	"github.com/ytget/ytsave/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.ytsave"

func main() {
	opts, err := config.ParseOptions(os.Args[1:], os.Stdout)
	if errors.Is(err, arg.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.ProgramName, err)
		os.Exit(2)
	}

	// Log version information
	log.Printf("ytsave v%s starting...", version)

	myApp := app.NewWithID(AppID)

	style, err := ui.LoadStyleSheet(opts.Style)
	if err != nil {
		log.Printf("Ignoring stylesheet %s: %v", opts.Style, err)
		style = nil
	}
	myApp.Settings().SetTheme(ui.NewCompactTheme(style))

	settings := config.NewSettings(myApp)
	if opts.Lang != "" {
		settings.SetLanguage(opts.Lang)
	}

	loader := locale.Embedded()
	if opts.Locales != "" {
		loader = locale.NewLoader(os.DirFS(opts.Locales))
	}

	downloadSvc := download.NewService(media.NewYouTubeFetcher(nil))

	myWindow := myApp.NewWindow("")
	ui.NewRootUI(myWindow, settings, loader, downloadSvc)

	myWindow.ShowAndRun()
}
