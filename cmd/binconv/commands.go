package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Main, "binconv").
		WithSynopsis("binconv [opts] [files]").
		WithDescription("binconv translates bit, hex and decimal text into raw bytes.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return binconvMain(cfg, cc, args)
		})
}
