// Package command contains the operations a user can run against a
// transact.Store.
//
// A command is built from already validated values, then executed once. It
// reports what happened as a Result, and which list the user should look at.
// Commands never perform any I/O: loading and saving the store is the caller's
// job.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/transact"
)

// Command is an operation on a Store.
type Command interface {
	// Execute runs the command against s.
	//
	// A failure is reported as an *Error and leaves s unchanged. Execute must
	// be called at most once: a second call panics.
	Execute(s *transact.Store) (Result, error)
}

// Tab is the list a Result should be displayed with.
type Tab int

const (
	TabNone Tab = iota
	TabPersons
	TabTransactions
)

func (t Tab) String() string {
	switch t {
	case TabPersons:
		return "persons"
	case TabTransactions:
		return "transactions"
	default:
		return "none"
	}
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string // Feedback is the message for the user.
	Tab      Tab
}

// Error is a command failure. Its message is meant for the user, the cause, if
// any, is available to errors.Is and errors.As.
type Error struct {
	msg string
	err error
}

func errorf(cause error, format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), err: cause}
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.err }

// once guards a command against a second execution.
type once struct{ executed bool }

func (o *once) start(name string) {
	if o.executed {
		panic(fmt.Sprintf("command %s executed twice", name))
	}
	o.executed = true
}

// Index is a one-based position in a filtered view.
type Index int

// ParseIndex parses a positive Index.
func ParseIndex(s string) (Index, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, &transact.ValidationError{Field: "index", Value: s, Constraint: "the index must be a positive integer"}
	}
	return Index(v), nil
}

// lookup returns the element of view at i.
func lookup[E any](view []E, i Index) (e E, ok bool) {
	if i <= 0 || int(i) > len(view) {
		return e, false
	}
	return view[i-1], true
}

func (i Index) String() string { return strconv.Itoa(int(i)) }
