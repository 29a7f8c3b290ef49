package transact

import (
	"regexp"
	"strings"
)

var tagRE = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag is a short label attached to a person.
type Tag struct {
	value string
}

// NewTag validates and returns a Tag.
func NewTag(s string) (Tag, error) {
	v := strings.TrimSpace(s)
	if !tagRE.MatchString(v) {
		return Tag{}, &ValidationError{Field: "tag", Value: s, Constraint: "tags names should be alphanumeric"}
	}
	return Tag{value: v}, nil
}

func (t Tag) String() string { return t.value }
