package cmd

import (
	"context"
	"flag"

	"github.com/etnz/transact"
	"github.com/etnz/transact/command"
	"github.com/google/subcommands"
)

// --- addperson ---

type addPersonCmd struct {
	name, phone, email, address optionalFlag
	tags                        stringsFlag
}

func (*addPersonCmd) Name() string     { return "addperson" }
func (*addPersonCmd) Synopsis() string { return "add a person to the address book" }
func (*addPersonCmd) Usage() string {
	return `addperson -n <name> -p <phone> -e <email> -a <address> [-t <tag>]...

  Adds a person to the address book. Names are unique.

Example:
$ transact addperson -n "John Doe" -p 98765432 -e johnd@example.com -a "311, Clementi Ave 2, #02-25" -t friends -t owesMoney
`
}

func (c *addPersonCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.name, flagName, "Name of the person")
	f.Var(&c.phone, flagPhone, "Phone number")
	f.Var(&c.email, flagEmail, "Email address")
	f.Var(&c.address, flagAddress, "Postal address")
	f.Var(&c.tags, flagTag, "A tag, can be repeated")
}

func (c *addPersonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var fs fields
	var p transact.Person
	fs.required(&c.name, "name", flagName)
	fs.required(&c.phone, "phone", flagPhone)
	fs.required(&c.email, "email", flagEmail)
	fs.required(&c.address, "address", flagAddress)
	if fs.err() == nil {
		p = transact.NewPerson(fs.name(c.name.value), fs.phone(c.phone.value), fs.email(c.email.value), fs.address(c.address.value), fs.tags(c.tags.values)...)
	}
	if err := fs.err(); err != nil {
		return usageError(f, err)
	}
	return run(command.NewAddPerson(p), true)
}

// --- editperson ---

type editPersonCmd struct {
	name, phone, email, address optionalFlag
	tags                        stringsFlag
}

func (*editPersonCmd) Name() string     { return "editperson" }
func (*editPersonCmd) Synopsis() string { return "edit a person of the address book" }
func (*editPersonCmd) Usage() string {
	return `editperson [-n <name>] [-p <phone>] [-e <email>] [-a <address>] [-t <tag>]... <index>

  Edits the person at <index> in the person list (see listpersons). Only the
  given fields are changed. Tags replace all existing tags, use -t "" to
  remove them all.

  Transactions already linked to the person are left unchanged.
`
}

func (c *editPersonCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.name, flagName, "New name")
	f.Var(&c.phone, flagPhone, "New phone number")
	f.Var(&c.email, flagEmail, "New email address")
	f.Var(&c.address, flagAddress, "New postal address")
	f.Var(&c.tags, flagTag, "A tag, can be repeated. Replaces all the tags")
}

func (c *editPersonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	index, err := command.ParseIndex(f.Arg(0))
	if err != nil {
		return usageError(f, err)
	}

	var fs fields
	var d command.PersonDescriptor
	if c.name.set {
		v := fs.name(c.name.value)
		d.Name = &v
	}
	if c.phone.set {
		v := fs.phone(c.phone.value)
		d.Phone = &v
	}
	if c.email.set {
		v := fs.email(c.email.value)
		d.Email = &v
	}
	if c.address.set {
		v := fs.address(c.address.value)
		d.Address = &v
	}
	if c.tags.set {
		var values []string
		for _, t := range c.tags.values {
			if t != "" {
				values = append(values, t)
			}
		}
		v := fs.tags(values)
		d.Tags = &v
	}
	if err := fs.err(); err != nil {
		return usageError(f, err)
	}
	return run(command.NewEditPerson(index, d), true)
}

// --- deleteperson ---

type deletePersonCmd struct{}

func (*deletePersonCmd) Name() string     { return "deleteperson" }
func (*deletePersonCmd) Synopsis() string { return "delete a person from the address book" }
func (*deletePersonCmd) Usage() string {
	return `deleteperson <index>

  Deletes the person at <index> in the person list (see listpersons).
`
}

func (c *deletePersonCmd) SetFlags(f *flag.FlagSet) {}

func (c *deletePersonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	index, err := command.ParseIndex(f.Arg(0))
	if err != nil {
		return usageError(f, err)
	}
	return run(command.NewDeletePerson(index), true)
}

// --- findperson ---

type findPersonCmd struct{}

func (*findPersonCmd) Name() string     { return "findperson" }
func (*findPersonCmd) Synopsis() string { return "find persons by name" }
func (*findPersonCmd) Usage() string {
	return `findperson <keyword>...

  Lists the persons whose name contains any of the keywords, as a full word.
  The search is case insensitive: "alice" finds "Alice Pauline", "ali" does not.
`
}

func (c *findPersonCmd) SetFlags(f *flag.FlagSet) {}

func (c *findPersonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return run(command.NewFindPerson(f.Args()...), false)
}

// --- listpersons ---

type listPersonsCmd struct{}

func (*listPersonsCmd) Name() string     { return "listpersons" }
func (*listPersonsCmd) Synopsis() string { return "list all persons" }
func (*listPersonsCmd) Usage() string {
	return `listpersons

  Lists all the persons of the address book, with their index.
`
}

func (c *listPersonsCmd) SetFlags(f *flag.FlagSet) {}

func (c *listPersonsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(command.NewListPersons(), false)
}
