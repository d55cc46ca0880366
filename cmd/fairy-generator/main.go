// Package main provides the CLI entrypoint for fairy-generator.
//
// fairy-generator prints generated sample data:
//   - words: distinct words, one per line
//   - products, customers, orders: bewitched store models
//   - explain: how each store model field is treated
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"fairy-generator/fairy"
	"fairy-generator/internal/diagnostic"
	"fairy-generator/options"
	"fairy-generator/store"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "fairy-generator:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fairy-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fairy-generator [flags] words|products|customers|orders|explain")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "path to a YAML config file")
	count := fs.Int("n", 5, "number of values to print")
	field := fs.String("field", "", "explain only fields with this name")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one command")
	}

	if *count < 0 {
		return fmt.Errorf("invalid -n %d", *count)
	}

	cfg, err := options.Load(*configPath)
	if err != nil {
		return err
	}

	var opts []fairy.Option
	if cfg.Verbose {
		opts = append(opts, fairy.WithLogger(log.New(stderr, "fairy-generator: ", 0)))
	}

	f, err := fairy.New(cfg, opts...)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(stderr, "fairy-generator: seed %d\n", f.Seed())
	}

	switch cmd := fs.Arg(0); cmd {
	case "words":
		return words(f, *count, stdout)
	case "products":
		return dump(*count, stdout, func() (any, error) {
			var p store.Product
			return p, f.Bewitch(&p)
		})
	case "customers":
		return dump(*count, stdout, func() (any, error) {
			var c store.Customer
			return c, f.Bewitch(&c)
		})
	case "orders":
		return dump(*count, stdout, func() (any, error) {
			var o store.Order
			return o, f.Bewitch(&o)
		})
	case "explain":
		explain(f, *field, stdout, stderr)
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func words(f *fairy.Fairy, count int, w io.Writer) error {
	texts := f.UniqueTexts()
	for range count {
		word, err := texts.Word()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, word)
	}

	return nil
}

func dump(count int, w io.Writer, next func() (any, error)) error {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	for range count {
		v, err := next()
		if err != nil {
			return err
		}
		cfg.Fdump(w, v)
	}

	return nil
}

func explain(f *fairy.Fairy, field string, stdout, stderr io.Writer) {
	var all diagnostic.Diagnostics
	for _, target := range []any{&store.Product{}, &store.Customer{}, &store.Order{}} {
		all.Merge(f.Explain(target))
	}

	lines := append(all.Errors, all.Infos...)
	if field != "" {
		lines = all.ForField(field)
	}

	for _, d := range lines {
		fmt.Fprintln(stdout, d)
	}

	if all.HasErrors() {
		fmt.Fprintf(stderr, "fairy-generator: %d fields are left untouched\n", len(all.Errors))
	}
}
