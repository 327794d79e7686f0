package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/hayeah/jsonc"
)

// Args defines the command-line arguments
type Args struct {
	Input  string `arg:"positional" help:"Input file (reads stdin if omitted)"`
	Output string `arg:"-o,--output" help:"Output file (writes stdout if omitted)"`
}

func run(args Args) error {
	var src []byte
	var err error
	if args.Input == "" {
		src, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	} else {
		src, err = os.ReadFile(args.Input)
		if err != nil {
			return fmt.Errorf("read %s: %w", args.Input, err)
		}
	}

	out := jsonc.Convert(string(src))

	if args.Output == "" {
		if _, err := io.WriteString(os.Stdout, out); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(args.Output, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", args.Output, err)
	}
	return nil
}

func main() {
	var args Args
	arg.MustParse(&args)

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
