package cmd

import (
	"context"
	"flag"

	"github.com/etnz/transact"
	"github.com/etnz/transact/command"
	"github.com/etnz/transact/date"
	"github.com/google/subcommands"
)

// --- addtx ---

type addTxCmd struct {
	ttype, description, amount optionalFlag
	on                         string
	staff                      optionalFlag
}

func (*addTxCmd) Name() string     { return "addtx" }
func (*addTxCmd) Synopsis() string { return "record a new transaction" }
func (*addTxCmd) Usage() string {
	return `addtx -ty <type> -d <description> -amt <amount> [-on <date>] [-s <staff>]

  Records a transaction. The type is "revenue" (or r, in) or "expense" (or e,
  out). The amount is a non-negative number with at most two decimals.
  The staff, if any, is the name of a person of the address book.

Example:
$ transact addtx -ty expense -d "Office chairs" -amt 250 -on 2025-03-01 -s "John Doe"
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.ttype, flagType, "Transaction type: revenue or expense")
	f.Var(&c.description, flagDescription, "Description")
	f.Var(&c.amount, flagAmount, "Amount, e.g. 12.50")
	f.StringVar(&c.on, flagDate, date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.Var(&c.staff, flagStaff, "Name of the staff who handled the transaction")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var fs fields
	fs.required(&c.ttype, "type", flagType)
	fs.required(&c.description, "description", flagDescription)
	fs.required(&c.amount, "amount", flagAmount)
	if fs.err() != nil {
		return usageError(f, fs.err())
	}
	ttype := fs.ttype(c.ttype.value)
	description := fs.description(c.description.value)
	amount := fs.amount(c.amount.value)
	on := fs.date(c.on)
	var staff *transact.Name
	if c.staff.set {
		v := fs.name(c.staff.value)
		staff = &v
	}
	if err := fs.err(); err != nil {
		return usageError(f, err)
	}
	return run(command.NewAddTransaction(ttype, description, amount, on, staff), true)
}

// --- edittx ---

type editTxCmd struct {
	ttype, description, amount, on, staff optionalFlag
	noStaff                               bool
}

func (*editTxCmd) Name() string     { return "edittx" }
func (*editTxCmd) Synopsis() string { return "edit a transaction" }
func (*editTxCmd) Usage() string {
	return `edittx [-ty <type>] [-d <description>] [-amt <amount>] [-on <date>] [-s <staff> | -nostaff] <id>

  Edits the transaction with the given id. Only the given fields are changed,
  the id never changes.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.ttype, flagType, "New type: revenue or expense")
	f.Var(&c.description, flagDescription, "New description")
	f.Var(&c.amount, flagAmount, "New amount")
	f.Var(&c.on, flagDate, "New date (YYYY-MM-DD)")
	f.Var(&c.staff, flagStaff, "Name of the new staff")
	f.BoolVar(&c.noStaff, "nostaff", false, "Unlink the staff")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	id, err := transact.ParseTransactionID(f.Arg(0))
	if err != nil {
		return usageError(f, err)
	}

	var fs fields
	d := command.TransactionDescriptor{NoStaff: c.noStaff}
	if c.ttype.set {
		v := fs.ttype(c.ttype.value)
		d.Type = &v
	}
	if c.description.set {
		v := fs.description(c.description.value)
		d.Description = &v
	}
	if c.amount.set {
		v := fs.amount(c.amount.value)
		d.Amount = &v
	}
	if c.on.set {
		v := fs.date(c.on.value)
		d.Date = &v
	}
	if c.staff.set {
		v := fs.name(c.staff.value)
		d.Staff = &v
	}
	if err := fs.err(); err != nil {
		return usageError(f, err)
	}
	return run(command.NewEditTransaction(id, d), true)
}

// --- deletetx ---

type deleteTxCmd struct{}

func (*deleteTxCmd) Name() string     { return "deletetx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction" }
func (*deleteTxCmd) Usage() string {
	return `deletetx <id>

  Deletes the transaction with the given id.
`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	id, err := transact.ParseTransactionID(f.Arg(0))
	if err != nil {
		return usageError(f, err)
	}
	return run(command.NewDeleteTransaction(id), true)
}

// --- findtx ---

type findTxCmd struct {
	from, to, ttype optionalFlag
	period, staff   optionalFlag
}

func (*findTxCmd) Name() string     { return "findtx" }
func (*findTxCmd) Synopsis() string { return "find transactions" }
func (*findTxCmd) Usage() string {
	return `findtx [-from <date>] [-to <date>] [-period <period>] [-ty <type>] [-s <staff>] [<keyword>...]

  Lists the transactions whose description contains any of the keywords, as
  a full word, case insensitive. The search can be restricted to a range of
  dates, to a type and to the transactions handled by a staff.

  -period selects the current day, week, month, quarter or year, relative to
  -to (default today).

Example:
$ transact findtx -period month -ty expense
`
}

func (c *findTxCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.from, "from", "Start date (included)")
	f.Var(&c.to, "to", "End date (included)")
	f.Var(&c.period, "period", "A period: day, week, month, quarter or year")
	f.Var(&c.ttype, flagType, "Transaction type: revenue or expense")
	f.Var(&c.staff, flagStaff, "Name of the staff")
}

func (c *findTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var fs fields
	find := command.NewFindTransaction(f.Args()...)
	if c.ttype.set {
		v := fs.ttype(c.ttype.value)
		find.Type = &v
	}
	if c.staff.set {
		v := fs.name(c.staff.value)
		find.Staff = &v
	}
	if c.from.set || c.to.set || c.period.set {
		to := date.Today()
		if c.to.set {
			to = fs.date(c.to.value)
		}
		from := date.New(1, 1, 1)
		switch {
		case c.period.set:
			period, err := date.ParsePeriod(c.period.value)
			fs.check(err)
			// the period around -to, or the current one.
			r := period.Range(to)
			from = r.From
			if !c.to.set {
				to = r.To
			}
		case c.from.set:
			from = fs.date(c.from.value)
		}
		r := date.NewRange(from, to)
		find.Range = &r
	}
	if err := fs.err(); err != nil {
		return usageError(f, err)
	}
	return run(find, false)
}

// --- listtx ---

type listTxCmd struct{}

func (*listTxCmd) Name() string     { return "listtx" }
func (*listTxCmd) Synopsis() string { return "list all transactions" }
func (*listTxCmd) Usage() string {
	return `listtx

  Lists all the transactions, ordered by id, with the balance.
`
}

func (c *listTxCmd) SetFlags(f *flag.FlagSet) {}

func (c *listTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(command.NewListTransactions(), false)
}

// --- sort ---

type sortCmd struct {
	desc bool
}

func (*sortCmd) Name() string     { return "sort" }
func (*sortCmd) Synopsis() string { return "list transactions sorted by date or amount" }
func (*sortCmd) Usage() string {
	return `sort [-desc] <date|amount>

  Lists all the transactions sorted by date or by amount. Transactions with
  the same date or amount keep their order by id.
`
}

func (c *sortCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order")
}

func (c *sortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	key, err := command.ParseSortKey(f.Arg(0))
	if err != nil {
		return usageError(f, err)
	}
	return run(command.NewSortTransactions(key, c.desc), false)
}

// --- clearsort ---

type clearSortCmd struct {
	yes bool
}

func (*clearSortCmd) Name() string     { return "clearsort" }
func (*clearSortCmd) Synopsis() string { return "clear the transaction sort, and all the data" }
func (*clearSortCmd) Usage() string {
	return `clearsort -yes

  Restores the order of transactions by id.

  Warning: clearsort also deletes every person and every transaction. It
  requires -yes to proceed.
`
}

func (c *clearSortCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm that all the data can be deleted")
}

func (c *clearSortCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return run(command.NewClearSort(), true)
}
