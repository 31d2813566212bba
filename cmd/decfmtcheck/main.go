// Command decfmtcheck runs the decimal formatter conformance tests and
// reports every mismatch.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/db47h/decfmt/conformance"
)

var versionString = "Should be set when building, use -ldflags \"-X main.versionString=...\""

// exit codes
const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flagSet := flag.NewFlagSet("decfmtcheck", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	printVersion := flagSet.Bool("version", false, "Prints the decfmtcheck version number")
	debug := flagSet.Bool("debug", false, "Print debug logs")
	trace := flagSet.Bool("trace", false, "Print trace logs")
	list := flagSet.Bool("list", false, "List the tests that would run and exit")
	runOption := flagSet.String("run", "", "Comma separated names of the tests to run, default all")
	param := flagSet.String("param", "", "Only run the rounding cases whose label contains this string")
	casesFile := flagSet.String("cases", "", "YAML file with additional rounding cases")

	err := flagSet.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stdout, flagSet, false)
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		fmt.Fprintln(stderr)
		printUsage(stderr, flagSet, true)
		return exitUsage
	}
	if *printVersion {
		fmt.Fprintln(stdout, versionString)
		return exitOK
	}
	if flagSet.NArg() > 0 {
		fmt.Fprintln(stderr, "ERROR: Unexpected arguments:", flagSet.Args())
		fmt.Fprintln(stderr)
		printUsage(stderr, flagSet, true)
		return exitUsage
	}

	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetLevel(log.InfoLevel)
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}
	if *trace {
		logger.SetLevel(log.TraceLevel)
	}
	logger.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	cfg := conformance.Config{Logger: logger, Param: *param}
	if *casesFile != "" {
		cfg.Cases, err = conformance.LoadCases(*casesFile)
		if err != nil {
			fmt.Fprintln(stderr, "ERROR:", err)
			return exitUsage
		}
		logger.WithFields(log.Fields{"file": *casesFile, "cases": len(cfg.Cases)}).Debug("Cases loaded")
	}
	checker, err := conformance.New(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return exitUsage
	}

	var names []string
	if *runOption != "" {
		for _, n := range strings.Split(*runOption, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}

	if *list {
		return listTests(stdout, stderr, checker, names)
	}

	n, err := checker.Run(names...)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return exitUsage
	}
	if n > 0 {
		fmt.Fprintf(stdout, "FAIL: %d mismatches\n", n)
		return exitMismatch
	}
	fmt.Fprintln(stdout, "PASS")
	return exitOK
}

// listTests prints the tests selected by names without running them.
func listTests(stdout, stderr io.Writer, checker *conformance.Checker, names []string) int {
	known := make(map[string]bool)
	for _, t := range checker.Tests() {
		known[t.Name] = true
	}
	for _, n := range names {
		if !known[n] {
			fmt.Fprintf(stderr, "ERROR: %v: %q\n", conformance.ErrUnknownTest, n)
			return exitUsage
		}
	}
	want := make(map[string]bool)
	for _, n := range names {
		want[n] = true
	}
	for _, t := range checker.Tests() {
		if len(names) == 0 || want[t.Name] {
			fmt.Fprintln(stdout, t.Name)
		}
	}
	return exitOK
}
