package command

import (
	"errors"
	"fmt"
	"slices"

	"github.com/etnz/transact"
)

const (
	msgDuplicatePerson    = "This person already exists in the address book"
	msgInvalidPersonIndex = "invalid person index"
)

// --- AddPerson ---

// AddPerson adds a person to the address book.
type AddPerson struct {
	once
	Person transact.Person
}

func NewAddPerson(p transact.Person) *AddPerson { return &AddPerson{Person: p} }

func (c *AddPerson) Execute(s *transact.Store) (Result, error) {
	c.start("add person")
	if err := s.AddPerson(c.Person); err != nil {
		return Result{}, errorf(err, msgDuplicatePerson)
	}
	return Result{Feedback: fmt.Sprintf("New person added: %s", c.Person), Tab: TabPersons}, nil
}

// --- EditPerson ---

// PersonDescriptor holds the fields to change in a person. Nil fields are left
// unchanged. A non nil Tags replaces all the tags, an empty one removes them.
type PersonDescriptor struct {
	Name    *transact.Name
	Phone   *transact.Phone
	Email   *transact.Email
	Address *transact.Address
	Tags    *[]transact.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d PersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// apply returns a copy of p edited with d.
func (d PersonDescriptor) apply(p transact.Person) transact.Person {
	name, phone, email, address, tags := p.Name(), p.Phone(), p.Email(), p.Address(), p.Tags()
	if d.Name != nil {
		name = *d.Name
	}
	if d.Phone != nil {
		phone = *d.Phone
	}
	if d.Email != nil {
		email = *d.Email
	}
	if d.Address != nil {
		address = *d.Address
	}
	if d.Tags != nil {
		tags = slices.Clone(*d.Tags)
	}
	return transact.NewPerson(name, phone, email, address, tags...)
}

// EditPerson edits the person at an index of the person view.
//
// Transactions linked to the person keep their own copy of it, they are not
// edited.
type EditPerson struct {
	once
	Index      Index
	Descriptor PersonDescriptor
}

func NewEditPerson(i Index, d PersonDescriptor) *EditPerson {
	return &EditPerson{Index: i, Descriptor: d}
}

func (c *EditPerson) Execute(s *transact.Store) (Result, error) {
	c.start("edit person")
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, errorf(nil, "At least one field to edit must be provided.")
	}
	target, ok := lookup(s.FilteredPersons(), c.Index)
	if !ok {
		return Result{}, errorf(nil, msgInvalidPersonIndex)
	}
	edited := c.Descriptor.apply(target)
	if err := s.SetPerson(target, edited); err != nil {
		if errors.Is(err, transact.ErrDuplicateEntry) {
			return Result{}, errorf(err, msgDuplicatePerson)
		}
		return Result{}, errorf(err, "Cannot edit person %s", target.Name())
	}
	return Result{Feedback: fmt.Sprintf("Edited Person: %s", edited), Tab: TabPersons}, nil
}

// --- DeletePerson ---

// DeletePerson deletes the person at an index of the person view.
type DeletePerson struct {
	once
	Index Index
}

func NewDeletePerson(i Index) *DeletePerson { return &DeletePerson{Index: i} }

func (c *DeletePerson) Execute(s *transact.Store) (Result, error) {
	c.start("delete person")
	target, ok := lookup(s.FilteredPersons(), c.Index)
	if !ok {
		return Result{}, errorf(nil, msgInvalidPersonIndex)
	}
	if err := s.RemovePerson(target); err != nil {
		return Result{}, errorf(err, "Cannot delete person %s", target.Name())
	}
	return Result{Feedback: fmt.Sprintf("Deleted Person: %s", target), Tab: TabPersons}, nil
}

// --- FindPerson ---

// FindPerson shows the persons whose name contains any of the keywords.
type FindPerson struct {
	once
	Keywords []string
}

func NewFindPerson(keywords ...string) *FindPerson { return &FindPerson{Keywords: keywords} }

func (c *FindPerson) Execute(s *transact.Store) (Result, error) {
	c.start("find person")
	s.UpdateFilteredPersonList(transact.NameContainsKeywords(c.Keywords...))
	return Result{Feedback: fmt.Sprintf("%d persons listed!", len(s.FilteredPersons())), Tab: TabPersons}, nil
}

// --- ListPersons ---

// ListPersons shows all the persons.
type ListPersons struct{ once }

func NewListPersons() *ListPersons { return &ListPersons{} }

func (c *ListPersons) Execute(s *transact.Store) (Result, error) {
	c.start("list persons")
	s.UpdateFilteredPersonList(transact.AcceptAll[transact.Person])
	return Result{Feedback: "Listed all persons", Tab: TabPersons}, nil
}
