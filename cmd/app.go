// Package cmd implements the CLI application to manage persons and
// transactions.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/transact"
	"github.com/etnz/transact/command"
	"github.com/etnz/transact/logging"
	"github.com/etnz/transact/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, sc := range subcommandsByGroup() {
		c.Register(sc.cmd, sc.group)
	}
}

type groupedCommand struct {
	cmd   subcommands.Command
	group string
}

// subcommandsByGroup lists the application subcommands.
func subcommandsByGroup() []groupedCommand {
	return []groupedCommand{
		{&addPersonCmd{}, "persons"},
		{&editPersonCmd{}, "persons"},
		{&deletePersonCmd{}, "persons"},
		{&findPersonCmd{}, "persons"},
		{&listPersonsCmd{}, "persons"},

		{&addTxCmd{}, "transactions"},
		{&editTxCmd{}, "transactions"},
		{&deleteTxCmd{}, "transactions"},
		{&findTxCmd{}, "transactions"},
		{&listTxCmd{}, "transactions"},
		{&sortCmd{}, "transactions"},
		{&clearSortCmd{}, "transactions"},

		{&clearCmd{}, "data"},
		{&queryCmd{}, "data"},
		{&exportCmd{}, "data"},
		{&configCmd{}, "data"},

		{&topicCmd{}, "help"},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "config.json", "Path to the configuration file (JSON)")
	dataFile   = flag.String("data-file", "", "Path to the data file, overrides the configuration")
	currency   = flag.String("currency", "", "Currency code used to display amounts (e.g. USD, EUR), overrides the configuration")
	Verbose    = flag.Bool("v", false, "Verbose mode, log debug messages")
)

// stdout is where the commands print their output.
var stdout io.Writer = os.Stdout

// openStorage returns the storage for the configured data file.
var openStorage = func(cfg Config) transact.Storage { return transact.NewFileStorage(cfg.DataFile) }

// LoadConfig resolves the configuration from the config file, the environment
// and the global flags.
func LoadConfig() (Config, error) {
	cfg, err := ReadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// SetupLogging configures the default logger from the configuration.
func SetupLogging(cfg Config) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	logging.Setup(level)
	return err
}

// loadStore loads the store from the configured storage. A store that was
// never saved is an empty store.
func loadStore(cfg Config) (*transact.Store, error) {
	s, err := openStorage(cfg).Load()
	if errors.Is(err, transact.ErrNotFound) {
		slog.Warn("data file does not exist, starting with an empty store", "path", cfg.DataFile)
		return transact.NewStore(), nil
	}
	return s, err
}

// run loads the store, executes c, saves the store if save is true and prints
// the result.
func run(c command.Command, save bool) subcommands.ExitStatus {
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

	res, err := c.Execute(s)
	if err != nil {
		slog.Debug("execute-command", "command", fmt.Sprintf("%T", c), "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	slog.Debug("execute-command", "command", fmt.Sprintf("%T", c), "tab", res.Tab)

	if save {
		if err := openStorage(cfg).Save(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	printMarkdown(renderer.RenderResult(res, s, renderer.Options{Currency: cfg.Currency}))
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal and prints it. The raw markdown is
// printed if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
