// Command sfvfmt parses a Structured Field Value and re-serializes it,
// exercising the library end to end without pulling it into any transport
// or flag-parsing concern of its own.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	sfv "github.com/kyori19/net-http-structured-field-values"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sfvfmt:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("sfvfmt", flag.ContinueOnError)
	kindFlag := fs.String("kind", "item", "field value kind: list, dictionary, or item")
	if err := fs.Parse(args); err != nil {
		return err
	}

	kind, err := parseKind(*kindFlag)
	if err != nil {
		return err
	}

	var input []byte
	if fs.NArg() > 0 {
		input = []byte(fs.Arg(0))
	} else {
		input, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	value, err := sfv.Parse(input, kind)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", *kindFlag, err)
	}

	if err := sfv.NewEncoder(stdout).Encode(value); err != nil {
		return fmt.Errorf("serializing: %w", err)
	}
	_, err = fmt.Fprintln(stdout)
	return err
}

func parseKind(s string) (sfv.Kind, error) {
	switch s {
	case "list":
		return sfv.KindList, nil
	case "dictionary":
		return sfv.KindDictionary, nil
	case "item":
		return sfv.KindItem, nil
	default:
		return 0, fmt.Errorf("unknown -kind %q: must be list, dictionary, or item", s)
	}
}
