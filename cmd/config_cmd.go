package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type configCmd struct {
	save bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or save the configuration" }
func (*configCmd) Usage() string {
	return `config [-save]

  Prints the configuration in use, resolved from the defaults, the config
  file, the environment (TRANSACT_DATA_FILE, TRANSACT_CURRENCY,
  TRANSACT_LOG_LEVEL) and the global flags.

  With -save, writes it to the config file, so that the next invocations use
  it without flags.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.save, "save", false, "Save the configuration to the config file")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.save {
		if err := SaveConfig(*configFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(data))
	return subcommands.ExitSuccess
}
