package cmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/transact"
	"github.com/google/subcommands"
)

// setup isolates the CLI from the file system for the duration of the test:
// data lives in memory and output is captured.
func setup(t *testing.T) (*transact.MemoryStorage, *bytes.Buffer) {
	t.Helper()
	storage := new(transact.MemoryStorage)
	out := new(bytes.Buffer)

	oldStorage, oldStdout, oldConfig := openStorage, stdout, *configFile
	openStorage = func(Config) transact.Storage { return storage }
	stdout = out
	*configFile = filepath.Join(t.TempDir(), "config.json")
	t.Cleanup(func() {
		openStorage, stdout, *configFile = oldStorage, oldStdout, oldConfig
	})
	return storage, out
}

// execute runs a subcommand with args, like the commander would.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %q: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}
