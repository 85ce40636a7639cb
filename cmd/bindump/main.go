package main

import (
	"context"
	"fmt"
	"os"

	"github.com/scisa/binconv/format"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{Width: 8}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "output format: hex/x, dec/d, bits/b",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		},
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		})

	return cli.NewCommandAt(&cfg.Main, "bindump").
		WithSynopsis("bindump [opts] [files]").
		WithDescription("bindump writes raw bytes as binconv text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	Width    int  `cli:"name=w desc='bytes per line, 0 for a single line'"`
	Comments bool `cli:"name=c desc='precede each line with an offset comment'"`

	Format   format.Format
	CloseOut func() error

	Main *cli.Command
}

func (cfg *Config) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Format = f
	return f, nil
}

func (cfg *Config) outOpt(cc *cli.Context, a string) (any, error) {
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(a, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
