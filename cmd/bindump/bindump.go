package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scisa/binconv/encode"
	"github.com/scott-cotton/cli"
)

func run(cfg *Config, cc *cli.Context, args []string) (err error) {
	defer func() {
		if cfg.CloseOut == nil {
			return
		}
		if cerr := cfg.CloseOut(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing output: %w", cerr)
		}
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Width < 0 {
		return fmt.Errorf("%w: -w must not be negative", cli.ErrUsage)
	}
	data, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	return encode.Encode(cc.Out, data,
		encode.EncodeFormat(cfg.Format),
		encode.EncodeWidth(cfg.Width),
		encode.EncodeComments(cfg.Comments))
}

func readInputs(cc *cli.Context, files []string) ([]byte, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	buf := &bytes.Buffer{}
	for _, file := range files {
		var r io.Reader = cc.In
		if file != "-" {
			f, err := os.Open(file)
			if err != nil {
				return nil, fmt.Errorf("could not open %q: %w", file, err)
			}
			defer f.Close()
			r = f
		}
		if _, err := buf.ReadFrom(r); err != nil {
			return nil, fmt.Errorf("error reading %s: %w", file, err)
		}
	}
	return buf.Bytes(), nil
}
