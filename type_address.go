package transact

import "strings"

// Address is a person's postal address, free text.
type Address struct {
	value string
}

// NewAddress validates and returns an Address. Any non blank text is accepted.
func NewAddress(s string) (Address, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Address{}, &ValidationError{Field: "address", Value: s, Constraint: "addresses can take any values, and it should not be blank"}
	}
	return Address{value: v}, nil
}

func (a Address) String() string { return a.value }
