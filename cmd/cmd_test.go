package cmd

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/transact"
	"github.com/etnz/transact/renderer"
	"github.com/google/subcommands"
)

func TestPersonsScenario(t *testing.T) {
	storage, out := setup(t)

	steps := []struct {
		cmd        subcommands.Command
		args       []string
		wantStatus subcommands.ExitStatus
		wantOut    string
	}{
		{&addPersonCmd{}, []string{"-n", "Alice Pauline", "-p", "94351253", "-e", "alice@example.com", "-a", "Jurong West", "-t", "friends"}, subcommands.ExitSuccess, "New person added"},
		{&addPersonCmd{}, []string{"-n", "Carl Kurz", "-p", "95352563", "-e", "heinz@example.com", "-a", "wall street"}, subcommands.ExitSuccess, "Carl Kurz"},
		{&addPersonCmd{}, []string{"-n", "Carl Kurz", "-p", "123", "-e", "c@example.com", "-a", "x"}, subcommands.ExitFailure, ""},
		{&addPersonCmd{}, []string{"-n", "Bob", "-p", "123", "-e", "not-an-email", "-a", "x"}, subcommands.ExitUsageError, ""},
		{&addPersonCmd{}, []string{"-n", "Bob"}, subcommands.ExitUsageError, ""},
		{&editPersonCmd{}, []string{"-p", "11111111", "2"}, subcommands.ExitSuccess, "Edited Person"},
		{&editPersonCmd{}, []string{"-p", "11111111", "3"}, subcommands.ExitFailure, ""},
		{&editPersonCmd{}, []string{"-p", "11111111", "zero"}, subcommands.ExitUsageError, ""},
		{&findPersonCmd{}, []string{"alice"}, subcommands.ExitSuccess, "1 persons listed!"},
		{&deletePersonCmd{}, []string{"1"}, subcommands.ExitSuccess, "Deleted Person"},
		{&listPersonsCmd{}, nil, subcommands.ExitSuccess, "Carl Kurz"},
	}
	for i, step := range steps {
		out.Reset()
		if got := execute(t, step.cmd, step.args...); got != step.wantStatus {
			t.Fatalf("step %d: %s %q = %v, want %v", i, step.cmd.Name(), step.args, got, step.wantStatus)
		}
		if !strings.Contains(out.String(), step.wantOut) {
			t.Errorf("step %d: %s output = %q, want it to contain %q", i, step.cmd.Name(), out.String(), step.wantOut)
		}
	}

	s, err := storage.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	persons := s.FilteredPersons()
	if len(persons) != 1 || persons[0].Name().String() != "Carl Kurz" || persons[0].Phone().String() != "11111111" {
		t.Errorf("saved persons = %v", persons)
	}
}

func TestTransactionsScenario(t *testing.T) {
	storage, out := setup(t)

	if got := execute(t, &addPersonCmd{}, "-n", "Carl Kurz", "-p", "95352563", "-e", "heinz@example.com", "-a", "wall street"); got != subcommands.ExitSuccess {
		t.Fatalf("addperson = %v", got)
	}
	if got := execute(t, &addTxCmd{}, "-ty", "in", "-d", "Consulting", "-amt", "500", "-on", "2025-03-01", "-s", "Carl Kurz"); got != subcommands.ExitSuccess {
		t.Fatalf("addtx = %v", got)
	}
	if got := execute(t, &addTxCmd{}, "-ty", "out", "-d", "Rent", "-amt", "1200", "-on", "2025-02-01"); got != subcommands.ExitSuccess {
		t.Fatalf("addtx = %v", got)
	}
	if got := execute(t, &addTxCmd{}, "-ty", "out", "-d", "Ghost", "-amt", "1", "-s", "Nobody"); got != subcommands.ExitFailure {
		t.Errorf("addtx with an unknown staff = %v, want failure", got)
	}
	if got := execute(t, &addTxCmd{}, "-ty", "gift", "-d", "Ghost", "-amt", "-1"); got != subcommands.ExitUsageError {
		t.Errorf("addtx with invalid fields = %v, want usage error", got)
	}

	s, err := storage.Load()
	if err != nil {
		t.Fatal(err)
	}
	txs := s.FilteredTransactions()
	if len(txs) != 2 {
		t.Fatalf("saved %d transactions, want 2", len(txs))
	}
	if staff, ok := txs[0].Person(); !ok || staff.Name().String() != "Carl Kurz" {
		t.Errorf("first transaction staff = %v, %v", staff, ok)
	}
	rent := txs[1].ID().String()

	if got := execute(t, &editTxCmd{}, "-amt", "1300", rent); got != subcommands.ExitSuccess {
		t.Errorf("edittx = %v", got)
	}
	out.Reset()
	if got := execute(t, &sortCmd{}, "-desc", "amount"); got != subcommands.ExitSuccess {
		t.Errorf("sort = %v", got)
	}
	if !strings.Contains(out.String(), "descending") {
		t.Errorf("sort output = %q", out.String())
	}
	out.Reset()
	if got := execute(t, &findTxCmd{}, "-ty", "expense", "-from", "2025-01-01", "-to", "2025-12-31"); got != subcommands.ExitSuccess {
		t.Errorf("findtx = %v", got)
	}
	if !strings.Contains(out.String(), "1 transactions listed!") {
		t.Errorf("findtx output = %q", out.String())
	}
	out.Reset()
	if got := execute(t, &findTxCmd{}, "-s", "Carl Kurz"); got != subcommands.ExitSuccess {
		t.Errorf("findtx -s = %v", got)
	}
	if !strings.Contains(out.String(), "1 transactions listed!") {
		t.Errorf("findtx -s output = %q", out.String())
	}
	if got := execute(t, &findTxCmd{}, "-s", "Carl*"); got != subcommands.ExitUsageError {
		t.Errorf("findtx with an invalid staff name = %v, want usage error", got)
	}

	out.Reset()
	if got := execute(t, &queryCmd{}, "$.transactions[1].amount"); got != subcommands.ExitSuccess {
		t.Errorf("query = %v", got)
	}
	if strings.TrimSpace(out.String()) != `"1300.00"` {
		t.Errorf("query output = %q, want %q", out.String(), `"1300.00"`)
	}

	if got := execute(t, &deleteTxCmd{}, rent); got != subcommands.ExitSuccess {
		t.Errorf("deletetx = %v", got)
	}
	if got := execute(t, &deleteTxCmd{}, rent); got != subcommands.ExitFailure {
		t.Errorf("deletetx twice = %v, want failure", got)
	}
	if got := execute(t, &clearSortCmd{}); got != subcommands.ExitUsageError {
		t.Errorf("clearsort without -yes = %v, want usage error", got)
	}
	if got := execute(t, &clearSortCmd{}, "-yes"); got != subcommands.ExitSuccess {
		t.Errorf("clearsort = %v", got)
	}
	s, err = storage.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsEmpty() {
		t.Errorf("clearsort should have emptied the data")
	}
}

func TestExport(t *testing.T) {
	_, out := setup(t)
	if got := execute(t, &addTxCmd{}, "-ty", "in", "-d", "Consulting", "-amt", "500", "-on", "2025-03-01"); got != subcommands.ExitSuccess {
		t.Fatalf("addtx = %v", got)
	}
	out.Reset()
	if got := execute(t, &exportCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("export = %v", got)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<h2>Transactions</h2>", "<table>", "<td>Consulting</td>", "$500.00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("export output does not contain %q:\n%s", want, out.String())
		}
	}

	file := filepath.Join(t.TempDir(), "export.html")
	if got := execute(t, &exportCmd{}, "-o", file); got != subcommands.ExitSuccess {
		t.Fatalf("export -o = %v", got)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<h2>Persons</h2>")) {
		t.Errorf("exported file = %s", data)
	}
}

func TestLoadStore_InvalidData(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "transact.json")
	if err := os.WriteFile(path, []byte(`{"persons":[{"name":"*"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	openStorage = func(Config) transact.Storage { return transact.NewFileStorage(path) }
	if got := execute(t, &listPersonsCmd{}); got != subcommands.ExitFailure {
		t.Errorf("listpersons on invalid data = %v, want failure", got)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion(flag.NewFlagSet("transact", flag.ContinueOnError))
	for _, name := range []string{"addperson", "addtx", "sort", "topic", "export", "help"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("completion is missing subcommand %q", name)
		}
	}
	if _, ok := c.Sub["addtx"].Flags[flagType]; !ok {
		t.Errorf("completion of addtx is missing flag -%s", flagType)
	}
}

// unflushedFile is an export file that fails when closed, like a file whose
// last write could not be flushed.
type unflushedFile struct{ bytes.Buffer }

func (*unflushedFile) Close() error { return errors.New("no space left on device") }

func TestExport_CloseError(t *testing.T) {
	setup(t)
	old := createFile
	createFile = func(string) (io.WriteCloser, error) { return new(unflushedFile), nil }
	t.Cleanup(func() { createFile = old })

	if got := execute(t, &exportCmd{}, "-o", "books.html"); got != subcommands.ExitFailure {
		t.Errorf("export -o with a failing close = %v, want failure", got)
	}
	err := exportHTMLFile("books.html", transact.NewStore(), renderer.Options{Currency: "USD"})
	if err == nil || !strings.Contains(err.Error(), "no space left on device") {
		t.Errorf("exportHTMLFile() error = %v, want the close error", err)
	}
}
