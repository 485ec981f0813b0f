// Package main is the entry point for hstyle.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/donaldgifford/hstyle/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	quiet := flag.Bool("q", false, "suppress informational output")
	verbose := flag.Bool("v", false, "print units as they are processed")
	workers := flag.Int("jobs", 0, "max units checked in parallel (0 = one per CPU)")
	showVersion := flag.Bool("version", false, "print version and exit")

	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("hstyle %s (%s) %s\n", version, commit, date)
		return
	}

	opts := &runner.Options{
		Paths:      flag.Args(),
		ConfigPath: *configPath,
		Quiet:      *quiet,
		Verbose:    *verbose,
		MaxWorkers: *workers,
	}

	os.Exit(runner.Run(opts))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hstyle [flags] [unit documents...]

Check style conformance of parsed source units. Each argument is a
JSON unit document exported by the front-end ({name, source, tree}).
With no arguments, one document is read from stdin.

Flags:
`)
	flag.PrintDefaults()
}
