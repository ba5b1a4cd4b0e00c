package config

import (
	"fmt"
	"io"

	"github.com/alexflint/go-arg"

	"github.com/ytget/ytsave/internal/locale"
)

// Program name shown in usage output
const ProgramName = "ytsave"

// DefaultStyleFile is looked up in the working directory
const DefaultStyleFile = "style.yaml"

// Options are the command-line flags
type Options struct {
	Lang    string `arg:"--lang" help:"interface language: en, es or ja (remembered for next start)"`
	Locales string `arg:"--locales" help:"directory with messages_*.json files replacing the built-in ones"`
	Style   string `arg:"--style" default:"style.yaml" help:"presentation stylesheet; ignored when missing"`
}

// Description is printed at the top of the usage text
func (Options) Description() string {
	return "Download a video or its audio track from a link."
}

// ParseOptions parses args (without the program name). Help output goes to w,
// and arg.ErrHelp is returned so the caller can exit.
func ParseOptions(args []string, w io.Writer) (*Options, error) {
	var opts Options
	p, err := arg.NewParser(arg.Config{Program: ProgramName}, &opts)
	if err != nil {
		return nil, err
	}

	if err := p.Parse(args); err != nil {
		if err == arg.ErrHelp {
			p.WriteHelp(w)
		}
		return nil, err
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Validate checks flag values that go-arg cannot check by itself
func (o *Options) Validate() error {
	if o.Lang == "" {
		return nil
	}
	lang, ok := locale.LanguageByID(o.Lang)
	if !ok {
		return fmt.Errorf("unsupported language %q", o.Lang)
	}
	o.Lang = lang.ID
	return nil
}
