package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scisa/binconv"
	"github.com/scott-cotton/cli"
)

func binconvMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = cfg.closeOut(err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	log := newLog(os.Stderr, cfg.Verbose)
	tr := binconv.NewTranslator(cc.Out, binconv.WithLogger(log))
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := translateFile(cc, tr, file); err != nil {
			report(cfg, os.Stderr, err)
			return cli.ExitCodeErr(1)
		}
	}
	log.Info("done", "bytes", tr.Written())
	return nil
}

func translateFile(cc *cli.Context, tr *binconv.Translator, file string) error {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if err := tr.Translate(r); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}
