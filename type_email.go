package transact

import (
	"regexp"
	"strings"
)

const emailConstraint = `emails should be of the format local-part@domain. ` +
	`The local-part should only contain alphanumeric characters and these special characters "+_.-", ` +
	`and may not start or end with a special character. ` +
	`The domain is made of labels of alphanumeric characters separated by periods or hyphens, ` +
	`and must end with a label at least 2 characters long`

var (
	localPartRE = regexp.MustCompile(`^[\p{L}\p{N}]([\p{L}\p{N}+_.-]*[\p{L}\p{N}])?$`)
	domainRE    = regexp.MustCompile(`^([\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])?\.)*[\p{L}\p{N}]([\p{L}\p{N}-]*[\p{L}\p{N}])$`)
)

// Email is a person's email address.
type Email struct {
	value string
}

// NewEmail validates and returns an Email.
func NewEmail(s string) (Email, error) {
	v := strings.TrimSpace(s)
	local, domain, ok := strings.Cut(v, "@")
	if !ok || !localPartRE.MatchString(local) || !domainRE.MatchString(domain) {
		return Email{}, &ValidationError{Field: "email", Value: s, Constraint: emailConstraint}
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }
