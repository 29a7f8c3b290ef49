package command

import (
	"fmt"

	"github.com/etnz/transact"
	"github.com/etnz/transact/date"
)

// resolveStaff returns the stored person named name.
func resolveStaff(s *transact.Store, name transact.Name) (transact.Person, error) {
	p, ok := s.Person(name)
	if !ok {
		return p, errorf(transact.ErrEntryNotFound, "Staff %q is not in the address book", name)
	}
	return p, nil
}

// --- AddTransaction ---

// AddTransaction records a new transaction, optionally linked to a staff.
type AddTransaction struct {
	once
	Type        transact.TransactionType
	Description transact.Description
	Amount      transact.Amount
	Date        date.Date
	Staff       *transact.Name // optional
}

func NewAddTransaction(ttype transact.TransactionType, description transact.Description, amount transact.Amount, on date.Date, staff *transact.Name) *AddTransaction {
	return &AddTransaction{Type: ttype, Description: description, Amount: amount, Date: on, Staff: staff}
}

func (c *AddTransaction) Execute(s *transact.Store) (Result, error) {
	c.start("add transaction")
	var staff *transact.Person
	if c.Staff != nil {
		p, err := resolveStaff(s, *c.Staff)
		if err != nil {
			return Result{}, err
		}
		staff = &p
	}
	tx := transact.NewTransaction(c.Type, c.Description, c.Amount, c.Date)
	if staff != nil {
		tx = tx.WithPerson(*staff)
	}
	if err := s.AddTransaction(tx); err != nil {
		return Result{}, errorf(err, "This transaction already exists")
	}
	return Result{Feedback: fmt.Sprintf("New transaction added: %s", tx), Tab: TabTransactions}, nil
}

// --- EditTransaction ---

// TransactionDescriptor holds the fields to change in a transaction. Nil
// fields are left unchanged. NoStaff unlinks the staff, it takes precedence
// over Staff.
type TransactionDescriptor struct {
	Type        *transact.TransactionType
	Description *transact.Description
	Amount      *transact.Amount
	Date        *date.Date
	Staff       *transact.Name
	NoStaff     bool
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d TransactionDescriptor) IsAnyFieldEdited() bool {
	return d.Type != nil || d.Description != nil || d.Amount != nil || d.Date != nil || d.Staff != nil || d.NoStaff
}

// EditTransaction edits the transaction with an id. The id is never changed.
type EditTransaction struct {
	once
	ID         transact.TransactionID
	Descriptor TransactionDescriptor
}

func NewEditTransaction(id transact.TransactionID, d TransactionDescriptor) *EditTransaction {
	return &EditTransaction{ID: id, Descriptor: d}
}

func (c *EditTransaction) Execute(s *transact.Store) (Result, error) {
	c.start("edit transaction")
	d := c.Descriptor
	if !d.IsAnyFieldEdited() {
		return Result{}, errorf(nil, "At least one field to edit must be provided.")
	}
	target, ok := s.Transaction(c.ID)
	if !ok {
		return Result{}, errorf(transact.ErrEntryNotFound, "Transaction %d does not exist", c.ID)
	}

	edited := target
	if d.Type != nil {
		edited = edited.WithType(*d.Type)
	}
	if d.Description != nil {
		edited = edited.WithDescription(*d.Description)
	}
	if d.Amount != nil {
		edited = edited.WithAmount(*d.Amount)
	}
	if d.Date != nil {
		edited = edited.WithDate(*d.Date)
	}
	switch {
	case d.NoStaff:
		edited = edited.WithoutPerson()
	case d.Staff != nil:
		p, err := resolveStaff(s, *d.Staff)
		if err != nil {
			return Result{}, err
		}
		edited = edited.WithPerson(p)
	}

	if err := s.SetTransaction(target, edited); err != nil {
		return Result{}, errorf(err, "Cannot edit transaction %d", c.ID)
	}
	return Result{Feedback: fmt.Sprintf("Edited Transaction: %s", edited), Tab: TabTransactions}, nil
}

// --- DeleteTransaction ---

// DeleteTransaction deletes the transaction with an id.
type DeleteTransaction struct {
	once
	ID transact.TransactionID
}

func NewDeleteTransaction(id transact.TransactionID) *DeleteTransaction {
	return &DeleteTransaction{ID: id}
}

func (c *DeleteTransaction) Execute(s *transact.Store) (Result, error) {
	c.start("delete transaction")
	target, ok := s.Transaction(c.ID)
	if !ok {
		return Result{}, errorf(transact.ErrEntryNotFound, "Transaction %d does not exist", c.ID)
	}
	if err := s.RemoveTransaction(target); err != nil {
		return Result{}, errorf(err, "Cannot delete transaction %d", c.ID)
	}
	return Result{Feedback: fmt.Sprintf("Deleted Transaction: %s", target), Tab: TabTransactions}, nil
}

// --- FindTransaction ---

// FindTransaction shows the transactions whose description contains any of
// the keywords. Range, Type and Staff, when set, further restrict the view.
type FindTransaction struct {
	once
	Keywords []string
	Range    *date.Range
	Type     *transact.TransactionType
	Staff    *transact.Name
}

func NewFindTransaction(keywords ...string) *FindTransaction {
	return &FindTransaction{Keywords: keywords}
}

func (c *FindTransaction) Execute(s *transact.Store) (Result, error) {
	c.start("find transaction")
	var filters []func(transact.Transaction) bool
	if len(c.Keywords) > 0 {
		filters = append(filters, transact.TransactionContainsKeywords(c.Keywords...))
	}
	if c.Range != nil {
		filters = append(filters, transact.TransactionInRange(*c.Range))
	}
	if c.Type != nil {
		filters = append(filters, transact.TransactionOfType(*c.Type))
	}
	if c.Staff != nil {
		filters = append(filters, transact.TransactionWithPerson(*c.Staff))
	}
	if len(filters) == 0 {
		return Result{}, errorf(nil, "At least one keyword, a date range, a type or a staff must be provided.")
	}
	s.UpdateFilteredTransactionList(transact.AllOf(filters...))
	return Result{Feedback: fmt.Sprintf("%d transactions listed!", len(s.FilteredTransactions())), Tab: TabTransactions}, nil
}

// --- ListTransactions ---

// ListTransactions shows all the transactions.
type ListTransactions struct{ once }

func NewListTransactions() *ListTransactions { return &ListTransactions{} }

func (c *ListTransactions) Execute(s *transact.Store) (Result, error) {
	c.start("list transactions")
	s.UpdateFilteredTransactionList(transact.AcceptAll[transact.Transaction])
	return Result{Feedback: "Listed all transactions", Tab: TabTransactions}, nil
}

// --- SortTransactions ---

// SortKey is the field transactions are sorted by.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

// ParseSortKey parses a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByDate, SortByAmount:
		return k, nil
	}
	return "", &transact.ValidationError{Field: "sort key", Value: s, Constraint: `transactions can be sorted by "date" or "amount"`}
}

// SortTransactions orders the transaction view.
type SortTransactions struct {
	once
	Key        SortKey
	Descending bool
}

func NewSortTransactions(key SortKey, descending bool) *SortTransactions {
	return &SortTransactions{Key: key, Descending: descending}
}

func (c *SortTransactions) Execute(s *transact.Store) (Result, error) {
	c.start("sort transactions")
	var order func(a, b transact.Transaction) int
	switch c.Key {
	case SortByDate:
		order = transact.ByDate
	case SortByAmount:
		order = transact.ByAmount
	default:
		return Result{}, errorf(nil, "Unknown sort key %q", c.Key)
	}
	direction := "ascending"
	if c.Descending {
		order = transact.Reverse(order)
		direction = "descending"
	}
	s.SortFilteredTransactionList(order)
	return Result{Feedback: fmt.Sprintf("Transactions sorted by %s (%s)", c.Key, direction), Tab: TabTransactions}, nil
}

// --- ClearSort ---

// ClearSort clears the transaction sort.
//
// Clearing the sort also clears the whole address book, and restores the
// order by id.
type ClearSort struct{ once }

func NewClearSort() *ClearSort { return &ClearSort{} }

func (c *ClearSort) Execute(s *transact.Store) (Result, error) {
	c.start("clear sort")
	s.ResetData(nil)
	s.SortFilteredTransactionList(transact.ByTransactionID)
	return Result{Feedback: "Transaction sort has been cleared!", Tab: TabTransactions}, nil
}

// --- Clear ---

// Clear removes every person and transaction.
type Clear struct{ once }

func NewClear() *Clear { return &Clear{} }

func (c *Clear) Execute(s *transact.Store) (Result, error) {
	c.start("clear")
	s.ResetData(nil)
	return Result{Feedback: "Address book has been cleared!", Tab: TabPersons}, nil
}
