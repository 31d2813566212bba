package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

func printUsage(output io.Writer, flagSet *flag.FlagSet, printCommandline bool) {
	// This controls where PrintDefaults() prints
	flagSet.SetOutput(output)
	defer flagSet.SetOutput(io.Discard)

	if printCommandline {
		_, _ = fmt.Fprintln(output, "Commandline: decfmtcheck", strings.Join(os.Args[1:], " "))
		_, _ = fmt.Fprintln(output)
	}

	_, _ = fmt.Fprintln(output, "Usage:")
	_, _ = fmt.Fprintln(output, "  decfmtcheck [options]")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Checks that the decimal formatter rounds, formats and parses values")
	_, _ = fmt.Fprintln(output, "as expected. Every mismatch is logged; the exit status is 1 if any")
	_, _ = fmt.Fprintln(output, "mismatch was found and 2 on invalid options.")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Tests: TestAPI, TestRounding")
	_, _ = fmt.Fprintln(output)
	_, _ = fmt.Fprintln(output, "Options:")

	flagSet.PrintDefaults()
}
