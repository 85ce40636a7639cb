package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func report(cfg *MainConfig, f *os.File, err error) {
	prefix := "binconv:"
	if cfg.useColor(f) {
		c := color.New(color.FgRed, color.Bold)
		// stdout is usually not a terminal here, which would otherwise
		// disable color globally.
		c.EnableColor()
		prefix = c.Sprint(prefix)
	}
	fmt.Fprintf(f, "%s %v\n", prefix, err)
}
