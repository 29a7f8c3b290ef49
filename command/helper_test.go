package command

import (
	"testing"

	"github.com/etnz/transact"
	"github.com/etnz/transact/date"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func name(s string) transact.Name { return must(transact.NewName(s)) }

func person(n, phone, email, address string) transact.Person {
	return transact.NewPerson(name(n), must(transact.NewPhone(phone)), must(transact.NewEmail(email)), must(transact.NewAddress(address)))
}

func tx(id int64, ttype transact.TransactionType, description, amount, on string) transact.Transaction {
	return transact.NewTransactionWithID(transact.TransactionID(id), ttype, must(transact.NewDescription(description)), must(transact.ParseAmount(amount)), date.MustParse(on))
}

var (
	alice  = person("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6")
	benson = person("Benson Meier", "98765432", "johnd@example.com", "311, Clementi Ave 2")
	carl   = person("Carl Kurz", "95352563", "heinz@example.com", "wall street")
)

// newStore returns a store with three persons and three transactions.
func newStore(t *testing.T) *transact.Store {
	t.Helper()
	s := transact.NewStore()
	for _, p := range []transact.Person{alice, benson, carl} {
		if err := s.AddPerson(p); err != nil {
			t.Fatal(err)
		}
	}
	for _, x := range []transact.Transaction{
		tx(1, transact.Revenue, "Consulting fees", "500", "2025-03-15").WithPerson(alice),
		tx(2, transact.Expense, "Office rent", "1200", "2025-02-01"),
		tx(3, transact.Expense, "Coffee beans", "45.5", "2025-01-20"),
	} {
		if err := s.AddTransaction(x); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func personNames(s *transact.Store) []string {
	var names []string
	for _, p := range s.FilteredPersons() {
		names = append(names, p.Name().String())
	}
	return names
}

func transactionIDs(s *transact.Store) []transact.TransactionID {
	var ids []transact.TransactionID
	for _, x := range s.FilteredTransactions() {
		ids = append(ids, x.ID())
	}
	return ids
}
