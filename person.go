package transact

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Person represents a contact in the address book.
//
// Guarantees: every field is present and validated, and a Person is immutable.
// Name, phone and email are its identity fields, address and tags its data
// fields.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    []Tag // sorted, without duplicates
}

// NewPerson creates a new Person. Tags are a set: duplicates are ignored and
// their order is irrelevant.
func NewPerson(name Name, phone Phone, email Email, address Address, tags ...Tag) Person {
	set := slices.Clone(tags)
	slices.SortFunc(set, func(a, b Tag) int { return strings.Compare(a.value, b.value) })
	set = slices.Compact(set)
	return Person{name: name, phone: phone, email: email, address: address, tags: set}
}

func (p Person) Name() Name       { return p.name }
func (p Person) Phone() Phone     { return p.phone }
func (p Person) Email() Email     { return p.email }
func (p Person) Address() Address { return p.address }

// Tags returns a copy of the person's tags, sorted.
func (p Person) Tags() []Tag { return slices.Clone(p.tags) }

// HasTag reports whether the person is tagged with t.
func (p Person) HasTag(t Tag) bool { return slices.Contains(p.tags, t) }

// IsSameEntry returns true if other is a person with the same name.
// This defines a weaker notion of equality between two persons.
func (p Person) IsSameEntry(other Entry) bool {
	o, ok := other.(Person)
	return ok && o.name == p.name
}

// Equal returns true if other is a person with the same identity and data fields.
// This defines a stronger notion of equality between two persons.
func (p Person) Equal(other Entry) bool {
	o, ok := other.(Person)
	return ok &&
		p.name == o.name &&
		p.phone == o.phone &&
		p.email == o.email &&
		p.address == o.address &&
		slices.Equal(p.tags, o.tags)
}

// Hash returns a hash of all the person's fields.
func (p Person) Hash() uint64 {
	d := xxhash.New()
	p.writeHash(d)
	return d.Sum64()
}

func (p Person) writeHash(d *xxhash.Digest) {
	for _, s := range []string{p.name.value, p.phone.value, p.email.value, p.address.value} {
		d.WriteString(s)
		d.Write([]byte{0})
	}
	for _, t := range p.tags {
		d.WriteString(t.value)
		d.Write([]byte{0})
	}
}

func (p Person) String() string {
	tags := make([]string, len(p.tags))
	for i, t := range p.tags {
		tags[i] = t.value
	}
	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; Tags: [%s]",
		p.name, p.phone, p.email, p.address, strings.Join(tags, ", "))
}

// MarshalJSON implements the json.Marshaler interface for Person.
func (p Person) MarshalJSON() ([]byte, error) {
	tags := make([]string, len(p.tags))
	for i, t := range p.tags {
		tags[i] = t.value
	}
	var w jsonObjectWriter
	w.Append("name", p.name.value)
	w.Append("phone", p.phone.value)
	w.Append("email", p.email.value)
	w.Append("address", p.address.value)
	w.Append("tags", tags)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Person.
// Every field is mandatory and validated.
func (p *Person) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name    *string  `json:"name"`
		Phone   *string  `json:"phone"`
		Email   *string  `json:"email"`
		Address *string  `json:"address"`
		Tags    []string `json:"tags"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	if err := missingFields(
		field{"name", temp.Name != nil},
		field{"phone", temp.Phone != nil},
		field{"email", temp.Email != nil},
		field{"address", temp.Address != nil},
	); err != nil {
		return err
	}

	name, nameErr := NewName(*temp.Name)
	phone, phoneErr := NewPhone(*temp.Phone)
	email, emailErr := NewEmail(*temp.Email)
	address, addressErr := NewAddress(*temp.Address)
	errs := errors.Join(nameErr, phoneErr, emailErr, addressErr)

	tags := make([]Tag, 0, len(temp.Tags))
	for _, s := range temp.Tags {
		tag, err := NewTag(s)
		errs = errors.Join(errs, err)
		tags = append(tags, tag)
	}
	if errs != nil {
		return errs
	}
	*p = NewPerson(name, phone, email, address, tags...)
	return nil
}

// field is a mandatory field read from JSON.
type field struct {
	name    string
	present bool
}

// missingFields returns an error listing the missing fields, if any.
func missingFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields %q", missing)
	}
	return nil
}
