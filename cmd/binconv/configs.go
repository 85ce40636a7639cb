package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool `cli:"name=v desc='trace tokens and bytes on stderr'"`
	Color   bool `cli:"name=color desc='color diagnostics'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// closeOut closes the -o file, if any.  A close error is returned
// only when err is nil.
func (cfg *MainConfig) closeOut(err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if cerr != nil && err == nil {
		return fmt.Errorf("error closing %s: %w", cfg.Out, cerr)
	}
	return err
}

// useColor reports whether diagnostics written to f are colored.
// -color decides when given, otherwise color is used on terminals.
func (cfg *MainConfig) useColor(f *os.File) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return cfg.Color
		}
		break
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
