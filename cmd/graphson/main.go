/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// graphson converts GraphSON documents between wire format versions.
//
// Usage:
//
//	graphson [flags] [file]
//
// The input is read from file, or standard input if no file is given. It holds one or more
// documents; comments and trailing commas are tolerated. Each document is decoded with the input
// version and written with the output version, one per line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "graphson: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	var (
		opts       = defaultOptions()
		configPath string
		help       bool
	)

	flagSet := pflag.NewFlagSet("graphson", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.From, "from", opts.From, "version of the input (v1, v2 or v3)")
	flagSet.StringVar(&opts.To, "to", opts.To, "version of the output (default: the input version)")
	flagSet.BoolVar(&opts.Normalize, "normalize", opts.Normalize, "write map entries sorted by key")
	flagSet.BoolVar(&opts.NoTypes, "no-types", opts.NoTypes, "write values without type information")
	flagSet.BoolVar(&opts.GX, "gx", opts.GX, "read and write the extended types (gx: tags)")
	flagSet.StringVar(&configPath, "config", "", "read options from a YAML file; flags take precedence")
	flagSet.BoolVarP(&help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help {
		printHelp(stderr, flagSet)
		return nil
	}

	if len(configPath) > 0 {
		fileOpts, err := loadOptions(configPath)
		if err != nil {
			return err
		}
		opts = fileOpts.override(opts, flagSet)
	}

	rest := flagSet.Args()
	if len(rest) > 1 {
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}

	input, err := readInput(rest, stdin)
	if err != nil {
		return err
	}

	return convert(opts, input, stdout)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `graphson converts GraphSON documents between wire format versions.

Usage:
  graphson [flags] [file]

Flags:
%s`, flagSet.FlagUsages())
}
