package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/transact"
	"github.com/etnz/transact/date"
	"github.com/google/subcommands"
)

// Field markers, shared by all the subcommands.
const (
	flagName        = "n"
	flagPhone       = "p"
	flagEmail       = "e"
	flagAddress     = "a"
	flagTag         = "t"
	flagType        = "ty"
	flagDescription = "d"
	flagAmount      = "amt"
	flagDate        = "on"
	flagStaff       = "s"
)

// stringsFlag is a repeatable string flag.
type stringsFlag struct {
	values []string
	set    bool
}

func (f *stringsFlag) String() string { return strings.Join(f.values, ",") }
func (f *stringsFlag) Set(v string) error {
	f.values = append(f.values, v)
	f.set = true
	return nil
}

// optionalFlag is a string flag that knows if it was set.
type optionalFlag struct {
	value string
	set   bool
}

func (f *optionalFlag) String() string { return f.value }
func (f *optionalFlag) Set(v string) error {
	f.value = v
	f.set = true
	return nil
}

// fields collects conversion errors of flag values into typed values, so that
// all the problems are reported at once.
type fields struct {
	errs []error
}

func (fs *fields) check(err error) {
	if err != nil {
		fs.errs = append(fs.errs, err)
	}
}

func (fs *fields) err() error { return errors.Join(fs.errs...) }

// required reports a missing mandatory flag.
func (fs *fields) required(f *optionalFlag, name, marker string) {
	if !f.set {
		fs.errs = append(fs.errs, fmt.Errorf("missing %s (-%s)", name, marker))
	}
}

func (fs *fields) name(s string) (v transact.Name) {
	v, err := transact.NewName(s)
	fs.check(err)
	return v
}

func (fs *fields) phone(s string) (v transact.Phone) {
	v, err := transact.NewPhone(s)
	fs.check(err)
	return v
}

func (fs *fields) email(s string) (v transact.Email) {
	v, err := transact.NewEmail(s)
	fs.check(err)
	return v
}

func (fs *fields) address(s string) (v transact.Address) {
	v, err := transact.NewAddress(s)
	fs.check(err)
	return v
}

func (fs *fields) tags(ss []string) []transact.Tag {
	tags := make([]transact.Tag, 0, len(ss))
	for _, s := range ss {
		t, err := transact.NewTag(s)
		fs.check(err)
		tags = append(tags, t)
	}
	return tags
}

func (fs *fields) ttype(s string) (v transact.TransactionType) {
	v, err := transact.ParseTransactionType(s)
	fs.check(err)
	return v
}

func (fs *fields) description(s string) (v transact.Description) {
	v, err := transact.NewDescription(s)
	fs.check(err)
	return v
}

func (fs *fields) amount(s string) (v transact.Amount) {
	v, err := transact.ParseAmount(s)
	fs.check(err)
	return v
}

func (fs *fields) date(s string) date.Date {
	v, err := date.Parse(s)
	if err != nil {
		fs.check(&transact.ValidationError{Field: "date", Value: s, Constraint: "dates should be like 2025-01-31, or relative to today like -1d"})
	}
	return v
}

// usageError prints the conversion errors and the usage of the subcommand.
func usageError(f *flag.FlagSet, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	f.Usage()
	return subcommands.ExitUsageError
}
