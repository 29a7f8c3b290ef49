package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/transact"
	"github.com/etnz/transact/command"
	"github.com/etnz/transact/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// --- clear ---

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all persons and transactions" }
func (*clearCmd) Usage() string {
	return `clear -yes

  Deletes every person and every transaction. It requires -yes to proceed.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm that all the data can be deleted")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return run(command.NewClear(), true)
}

// --- query ---

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the data file with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `query <jsonpath>

  Evaluates a JSONPath expression over the data, and prints the result as JSON.
  The data is the document stored in the data file:

    {"persons": [...], "transactions": [...]}

Examples:
$ transact query '$.persons[*].email'
$ transact query '$.transactions[?(@.type == "expense")].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := loadStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	val, err := transact.Query(s, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	data, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(data))
	return subcommands.ExitSuccess
}

// --- export ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export persons and transactions as an HTML page" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Renders all the persons and all the transactions, with the balance, as an
  HTML page. The page is printed on the standard output unless -o is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, default to the standard output")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := loadStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	opts := renderer.Options{Currency: cfg.Currency}
	if c.output == "" {
		err = exportHTML(stdout, s, opts)
	} else {
		err = exportHTMLFile(c.output, s, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// createFile creates the export file.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// exportHTMLFile writes the HTML page to the file name. The page is only
// exported if the file is closed without error.
func exportHTMLFile(name string, s *transact.Store, opts renderer.Options) error {
	file, err := createFile(name)
	if err != nil {
		return err
	}
	if err := exportHTML(file, s, opts); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", name, err)
	}
	return nil
}

// exportHTML writes the persons and transactions of s as an HTML page.
func exportHTML(w io.Writer, s *transact.Store, opts renderer.Options) error {
	md := "# Transact\n\n" + renderer.RenderPersons(s, opts) + "\n" + renderer.RenderTransactions(s, opts)

	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := gm.Convert([]byte(md), &body); err != nil {
		return fmt.Errorf("could not convert to HTML: %w", err)
	}
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Transact</title></head>\n<body>\n%s</body>\n</html>\n", body.Bytes())
	return err
}
