package transact

import (
	"regexp"
	"strings"
)

const phoneConstraint = "phone numbers should only contain numbers, and it should be at least 3 digits long"

var phoneRE = regexp.MustCompile(`^\d{3,}$`)

// Phone is a person's phone number.
type Phone struct {
	value string
}

// NewPhone validates and returns a Phone.
func NewPhone(s string) (Phone, error) {
	v := strings.TrimSpace(s)
	if !phoneRE.MatchString(v) {
		return Phone{}, &ValidationError{Field: "phone", Value: s, Constraint: phoneConstraint}
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }
