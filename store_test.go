package transact

import (
	"errors"
	"testing"

	"github.com/etnz/transact/date"
	"github.com/google/go-cmp/cmp"
)

// newTestStore returns a store with three persons and four transactions.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	for _, p := range []Person{alice, benson, carl} {
		if err := s.AddPerson(p); err != nil {
			t.Fatalf("AddPerson() unexpected error: %v", err)
		}
	}
	for _, tx := range []Transaction{
		newTx(3, Expense, "Office rent", "1200", "2025-02-01"),
		newTx(1, Revenue, "Consulting fees", "500", "2025-03-15").WithPerson(alice),
		newTx(4, Expense, "Coffee beans", "45.5", "2025-01-20"),
		newTx(2, Revenue, "Workshop fees", "500", "2025-01-05").WithPerson(benson),
	} {
		if err := s.AddTransaction(tx); err != nil {
			t.Fatalf("AddTransaction() unexpected error: %v", err)
		}
	}
	return s
}

func ids(txs []Transaction) []TransactionID {
	got := make([]TransactionID, len(txs))
	for i, tx := range txs {
		got[i] = tx.ID()
	}
	return got
}

func TestStore_Empty(t *testing.T) {
	s := NewStore()
	if !s.IsEmpty() {
		t.Errorf("NewStore() should be empty")
	}
	if len(s.FilteredPersons()) != 0 || len(s.FilteredTransactions()) != 0 {
		t.Errorf("views of an empty store should be empty")
	}
	if err := s.AddTransaction(newTx(1, Revenue, "x", "1", "2025-01-01")); err != nil {
		t.Fatalf("AddTransaction() unexpected error: %v", err)
	}
	if s.IsEmpty() {
		t.Errorf("IsEmpty() = true after an add")
	}
}

func TestStore_Persons(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddPerson(newPerson("Carl Kurz", "123", "a@bc", "x")); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("AddPerson() error = %v, want ErrDuplicateEntry", err)
	}
	got, ok := s.Person(must(NewName("Benson Meier")))
	if !ok || !got.Equal(benson) {
		t.Errorf("Person(Benson Meier) = %v, %v", got, ok)
	}
	if _, ok := s.Person(must(NewName("Nobody"))); ok {
		t.Errorf("Person(Nobody) should not be found")
	}

	edited := newPerson("Alice Pauline", "11111111", "new@example.com", "new address")
	if err := s.SetPerson(alice, edited); err != nil {
		t.Fatalf("SetPerson() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Person{edited, benson, carl}, s.FilteredPersons()); diff != "" {
		t.Errorf("FilteredPersons() mismatch (-want +got):\n%s", diff)
	}
	// Transactions keep the snapshot they were linked with.
	tx, _ := s.Transaction(1)
	if p, _ := tx.Person(); !p.Equal(alice) {
		t.Errorf("linked person = %v, want the original snapshot %v", p, alice)
	}

	if err := s.RemovePerson(benson); err != nil {
		t.Fatalf("RemovePerson() unexpected error: %v", err)
	}
	if s.HasPerson(benson) {
		t.Errorf("HasPerson() = true after RemovePerson()")
	}
	if err := s.RemovePerson(benson); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("RemovePerson() error = %v, want ErrEntryNotFound", err)
	}
}

func TestStore_FilteredPersons(t *testing.T) {
	s := newTestStore(t)

	s.UpdateFilteredPersonList(NameContainsKeywords("alice", "KURZ"))
	if diff := cmp.Diff([]Person{alice, carl}, s.FilteredPersons()); diff != "" {
		t.Errorf("FilteredPersons() mismatch (-want +got):\n%s", diff)
	}

	// The view follows the content.
	if err := s.RemovePerson(carl); err != nil {
		t.Fatalf("RemovePerson() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Person{alice}, s.FilteredPersons()); diff != "" {
		t.Errorf("FilteredPersons() mismatch (-want +got):\n%s", diff)
	}

	s.UpdateFilteredPersonList(nil)
	if diff := cmp.Diff([]Person{alice, benson}, s.FilteredPersons()); diff != "" {
		t.Errorf("FilteredPersons() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_FilteredTransactions(t *testing.T) {
	testCases := []struct {
		name   string
		filter func(Transaction) bool
		order  func(a, b Transaction) int
		want   []TransactionID
	}{
		{
			name: "default order is by id",
			want: []TransactionID{1, 2, 3, 4},
		},
		{
			name:  "by date",
			order: ByDate,
			want:  []TransactionID{2, 4, 3, 1},
		},
		{
			name:  "by amount is stable",
			order: ByAmount,
			want:  []TransactionID{4, 1, 2, 3},
		},
		{
			name:  "by amount descending is stable",
			order: Reverse(ByAmount),
			want:  []TransactionID{3, 1, 2, 4},
		},
		{
			name:   "expenses",
			filter: TransactionOfType(Expense),
			want:   []TransactionID{3, 4},
		},
		{
			name:   "keywords by date descending",
			filter: TransactionContainsKeywords("FEES"),
			order:  Reverse(ByDate),
			want:   []TransactionID{1, 2},
		},
		{
			name:   "in range",
			filter: TransactionInRange(date.NewRange(date.MustParse("2025-01-10"), date.MustParse("2025-02-28"))),
			want:   []TransactionID{3, 4},
		},
		{
			name:   "with person",
			filter: TransactionWithPerson(must(NewName("Benson Meier"))),
			want:   []TransactionID{2},
		},
		{
			name:   "all of",
			filter: AllOf(TransactionOfType(Revenue), TransactionInRange(date.NewRange(date.MustParse("2025-03-01"), date.MustParse("2025-03-31")))),
			want:   []TransactionID{1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			s.UpdateFilteredTransactionList(tc.filter)
			s.SortFilteredTransactionList(tc.order)
			if diff := cmp.Diff(tc.want, ids(s.FilteredTransactions())); diff != "" {
				t.Errorf("FilteredTransactions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStore_Transactions(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddTransaction(newTx(2, Expense, "Other", "1", "2025-01-01")); !errors.Is(err, ErrDuplicateEntry) {
		t.Errorf("AddTransaction() error = %v, want ErrDuplicateEntry", err)
	}
	old, ok := s.Transaction(3)
	if !ok {
		t.Fatalf("Transaction(3) not found")
	}
	edited := newTx(3, Expense, "Office rent", "1300", "2025-02-01")
	if err := s.SetTransaction(old, edited); err != nil {
		t.Fatalf("SetTransaction() unexpected error: %v", err)
	}
	if got, _ := s.Transaction(3); !got.Equal(edited) {
		t.Errorf("Transaction(3) = %v, want %v", got, edited)
	}
	if err := s.RemoveTransaction(edited); err != nil {
		t.Fatalf("RemoveTransaction() unexpected error: %v", err)
	}
	if s.HasTransaction(edited) {
		t.Errorf("HasTransaction() = true after RemoveTransaction()")
	}

	revenue, expense := s.Balance()
	if revenue.String() != "1000.00" || expense.String() != "45.50" {
		t.Errorf("Balance() = %s, %s, want 1000.00, 45.50", revenue, expense)
	}
}

func TestStore_ResetData(t *testing.T) {
	s := newTestStore(t)
	s.UpdateFilteredPersonList(NameContainsKeywords("alice"))
	s.UpdateFilteredTransactionList(TransactionOfType(Expense))
	s.SortFilteredTransactionList(ByDate)

	other := newTestStore(t)
	if err := other.RemovePerson(alice); err != nil {
		t.Fatalf("RemovePerson() unexpected error: %v", err)
	}
	s.ResetData(other)

	if diff := cmp.Diff([]Person{benson, carl}, s.FilteredPersons()); diff != "" {
		t.Errorf("FilteredPersons() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]TransactionID{1, 2, 3, 4}, ids(s.FilteredTransactions())); diff != "" {
		t.Errorf("FilteredTransactions() mismatch (-want +got):\n%s", diff)
	}

	// s is a copy: changing other does not change s.
	if err := other.RemovePerson(carl); err != nil {
		t.Fatalf("RemovePerson() unexpected error: %v", err)
	}
	if !s.HasPerson(carl) {
		t.Errorf("ResetData() should copy the content")
	}

	s.ResetData(nil)
	if !s.IsEmpty() {
		t.Errorf("ResetData(nil) should empty the store")
	}
}
