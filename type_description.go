package transact

import "strings"

// Description tells what a transaction is about.
type Description struct {
	value string
}

// NewDescription validates and returns a Description. Any non blank text is accepted.
func NewDescription(s string) (Description, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Description{}, &ValidationError{Field: "description", Value: s, Constraint: "descriptions can take any values, and it should not be blank"}
	}
	return Description{value: v}, nil
}

func (d Description) String() string { return d.value }
