package transact

import (
	"regexp"
	"strings"
)

const nameConstraint = "names should only contain alphanumeric characters and spaces, and it should not be blank"

var nameRE = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

// Name is the name of a Person. It is the weak identity of a person.
type Name struct {
	value string
}

// NewName validates and returns a Name. Surrounding spaces are ignored.
func NewName(s string) (Name, error) {
	v := strings.TrimSpace(s)
	if !nameRE.MatchString(v) {
		return Name{}, &ValidationError{Field: "name", Value: s, Constraint: nameConstraint}
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }
