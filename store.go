package transact

import (
	"iter"
	"slices"
)

// Store holds all the persons and transactions.
//
// Besides the full lists, a Store exposes a view of each list: the entries
// accepted by the active filter, in the active order (transactions only).
// Views are computed on access, they always reflect the latest content and the
// latest filter and order.
//
// A Store is not safe for concurrent use.
type Store struct {
	persons      *UniqueList[Person]
	transactions *UniqueList[Transaction]

	personFilter      func(Person) bool
	transactionFilter func(Transaction) bool
	transactionOrder  func(a, b Transaction) int
}

// NewStore creates an empty store that shows all entries, transactions ordered
// by id.
func NewStore() *Store {
	s := &Store{
		persons:      NewUniqueList[Person](),
		transactions: NewUniqueList[Transaction](),
	}
	s.resetViews()
	return s
}

func (s *Store) resetViews() {
	s.personFilter = AcceptAll[Person]
	s.transactionFilter = AcceptAll[Transaction]
	s.transactionOrder = ByTransactionID
}

// ResetData replaces the content of s by a copy of the content of other, and
// resets the views to show all entries, transactions ordered by id.
// A nil other is an empty store.
func (s *Store) ResetData(other *Store) {
	var persons []Person
	var transactions []Transaction
	if other != nil {
		persons, transactions = other.persons.Slice(), other.transactions.Slice()
	}
	// other is a Store, hence its lists have no duplicates.
	if err := s.persons.SetAll(persons); err != nil {
		panic(err)
	}
	if err := s.transactions.SetAll(transactions); err != nil {
		panic(err)
	}
	s.resetViews()
}

// IsEmpty reports whether the store holds no entry at all.
func (s *Store) IsEmpty() bool {
	return s.persons.Len() == 0 && s.transactions.Len() == 0
}

// --- Persons ---

// HasPerson reports whether a person with the same name as p is stored.
func (s *Store) HasPerson(p Person) bool { return s.persons.Contains(p) }

// AddPerson adds p, or fails with ErrDuplicateEntry.
func (s *Store) AddPerson(p Person) error { return s.persons.Add(p) }

// SetPerson replaces target with edited.
//
// Transactions linked to target are not updated: they keep the snapshot of
// the person they were created with.
func (s *Store) SetPerson(target, edited Person) error { return s.persons.Set(target, edited) }

// RemovePerson removes p, or fails with ErrEntryNotFound.
func (s *Store) RemovePerson(p Person) error { return s.persons.Remove(p) }

// Person returns the stored person with this name.
func (s *Store) Person(name Name) (Person, bool) {
	return s.persons.Find(func(p Person) bool { return p.name == name })
}

// Persons returns an iterator over all the persons, in insertion order.
func (s *Store) Persons() iter.Seq2[int, Person] { return s.persons.All() }

// UpdateFilteredPersonList sets the filter of the person view. A nil filter
// accepts all persons.
func (s *Store) UpdateFilteredPersonList(filter func(Person) bool) {
	if filter == nil {
		filter = AcceptAll[Person]
	}
	s.personFilter = filter
}

// FilteredPersons returns the person view: the persons accepted by the active
// filter, in insertion order.
func (s *Store) FilteredPersons() []Person {
	view := make([]Person, 0, s.persons.Len())
	for _, p := range s.persons.All() {
		if s.personFilter(p) {
			view = append(view, p)
		}
	}
	return view
}

// --- Transactions ---

// HasTransaction reports whether a transaction with the same id as t is stored.
func (s *Store) HasTransaction(t Transaction) bool { return s.transactions.Contains(t) }

// AddTransaction adds t, or fails with ErrDuplicateEntry.
func (s *Store) AddTransaction(t Transaction) error { return s.transactions.Add(t) }

// SetTransaction replaces target with edited.
func (s *Store) SetTransaction(target, edited Transaction) error {
	return s.transactions.Set(target, edited)
}

// RemoveTransaction removes t, or fails with ErrEntryNotFound.
func (s *Store) RemoveTransaction(t Transaction) error { return s.transactions.Remove(t) }

// Transaction returns the stored transaction with this id.
func (s *Store) Transaction(id TransactionID) (Transaction, bool) {
	return s.transactions.Find(func(t Transaction) bool { return t.id == id })
}

// Transactions returns an iterator over all the transactions, in insertion order.
func (s *Store) Transactions() iter.Seq2[int, Transaction] { return s.transactions.All() }

// UpdateFilteredTransactionList sets the filter of the transaction view. A nil
// filter accepts all transactions.
func (s *Store) UpdateFilteredTransactionList(filter func(Transaction) bool) {
	if filter == nil {
		filter = AcceptAll[Transaction]
	}
	s.transactionFilter = filter
}

// SortFilteredTransactionList sets the order of the transaction view. A nil
// order is ByTransactionID.
func (s *Store) SortFilteredTransactionList(order func(a, b Transaction) int) {
	if order == nil {
		order = ByTransactionID
	}
	s.transactionOrder = order
}

// FilteredTransactions returns the transaction view: the transactions accepted
// by the active filter, sorted by the active order. The sort is stable.
func (s *Store) FilteredTransactions() []Transaction {
	view := make([]Transaction, 0, s.transactions.Len())
	for _, t := range s.transactions.All() {
		if s.transactionFilter(t) {
			view = append(view, t)
		}
	}
	slices.SortStableFunc(view, s.transactionOrder)
	return view
}

// Balance returns the total of revenues and the total of expenses of the
// transaction view.
func (s *Store) Balance() (revenue, expense Amount) {
	for _, t := range s.FilteredTransactions() {
		switch t.ttype {
		case Revenue:
			revenue = revenue.Add(t.amount)
		case Expense:
			expense = expense.Add(t.amount)
		}
	}
	return revenue, expense
}
