// Package main provides the entry point for the Nova compiler front end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/nova-lang/novac/internal/diagnostic"
	"github.com/nova-lang/novac/internal/langver"
	"github.com/nova-lang/novac/internal/parser"
	"github.com/nova-lang/novac/internal/position"
)

var (
	version = "0.1.0-alpha"
	commit  = "dev"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		showHelp    = flag.Bool("help", false, "show help information")
		langVersion = flag.String("lang-version", "3.0.0", "language version to parse against (gates version-sensitive grammar)")
		watch       = flag.Bool("watch", false, "re-parse the input file on every write")
		printAST    = flag.Bool("ast", false, "print the parsed compilation unit to stdout")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("Nova Compiler v%s (%s)\n", version, commit)

		return
	}

	if *showHelp {
		showUsage()

		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Error: no input file specified")
		showUsage()
		os.Exit(1)
	}

	ver, err := langver.Parse(*langVersion)
	if err != nil {
		log.Fatalf("invalid -lang-version: %v", errors.Wrap(err, "parsing language version"))
	}

	filename := args[0]

	if err := parseAndReport(filename, ver, *printAST); err != nil {
		log.Fatalf("%v", err)
	}

	if *watch {
		if err := watchAndReparse(filename, ver, *printAST); err != nil {
			log.Fatalf("watch mode failed: %v", err)
		}
	}
}

func showUsage() {
	fmt.Println("Nova Compiler front end")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    novac [OPTIONS] <INPUT_FILE>")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    --version       Show version information")
	fmt.Println("    --help          Show this help message")
	fmt.Println("    --lang-version  Language version to parse against (default 3.0.0)")
	fmt.Println("    --ast           Print the parsed compilation unit to stdout")
	fmt.Println("    --watch         Re-parse on every write to the input file")
}

func parseAndReport(filename string, ver langver.Version, printAST bool) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "reading %s", filename)
	}

	sink := diagnostic.NewCollector()
	p := parser.New(filename, string(src), sink, ver)
	cu := p.Parse()

	sources := position.NewSourceMap()
	sources.AddFile(filename, string(src))

	renderer := diagnostic.NewStderrRenderer(sources)
	renderer.Render(sink)

	if printAST {
		fmt.Println(cu.String())

		for _, m := range cu.Members {
			fmt.Println("  " + m.String())
		}
	}

	if sink.HasErrors() {
		return errors.Errorf("%s: parsing failed with errors", filename)
	}

	return nil
}

func watchAndReparse(filename string, ver langver.Version, printAST bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filename); err != nil {
		return errors.Wrapf(err, "watching %s", filename)
	}

	fmt.Printf("watching %s for changes (ctrl-c to stop)\n", filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if err := parseAndReport(filename, ver, printAST); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			fmt.Fprintln(os.Stderr, errors.Wrap(err, "watch error"))
		}
	}
}
