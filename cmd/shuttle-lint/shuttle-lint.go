package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/shuttle-markup/shuttle"
	"github.com/shuttle-markup/shuttle/internal/cliutil"
)

type cmdopts struct {
	Check    bool   `long:"check" description:"parse only, do not emit HTML"`
	Encoding string `long:"encoding" description:"force the input encoding instead of sniffing a BOM"`
	Lenient  bool   `long:"lenient" description:"recover from grammar errors and keep parsing"`
	MaxDepth int    `long:"max-depth" default:"256" description:"maximum element nesting depth"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("shuttle-lint: using shuttle version %s\n", shuttle.Version)
}

func showUsage() {
	fmt.Printf(`Usage : shuttle-lint [options] files ...
	Parse the Shuttle files and emit the resulting HTML
	--version : display the version of the shuttle library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	inputCh := make(chan io.Reader)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	options := []shuttle.ParseOption{
		shuttle.WithMaxDepth(opts.MaxDepth),
	}
	if opts.Lenient {
		options = append(options, shuttle.WithRecovery(shuttle.RecoverLenient))
	}
	if opts.Encoding != "" {
		options = append(options, shuttle.WithEncoding(opts.Encoding))
	}

	p := shuttle.NewParser(options...)
	status := 0
	for in := range inputCh {
		buf, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		doc, parseErrs := p.Parse(buf)
		for _, pe := range parseErrs {
			fmt.Fprintf(os.Stderr, "%s\n", pe.Error())
			status = 1
		}

		if opts.Check || doc == nil {
			continue
		}

		d := shuttle.Dumper{}
		if err := d.DumpDoc(os.Stdout, doc); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		fmt.Println()
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return status
}
