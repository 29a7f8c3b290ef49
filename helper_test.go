package transact

import "github.com/etnz/transact/date"

// must is a helper for test to unwrap constructors that cannot fail.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// newPerson is a helper for test to create a person from strings.
func newPerson(name, phone, email, address string, tags ...string) Person {
	ts := make([]Tag, len(tags))
	for i, t := range tags {
		ts[i] = must(NewTag(t))
	}
	return NewPerson(must(NewName(name)), must(NewPhone(phone)), must(NewEmail(email)), must(NewAddress(address)), ts...)
}

// newTx is a helper for test to create a transaction with an explicit id.
func newTx(id int64, ttype TransactionType, description, amount, on string) Transaction {
	return NewTransactionWithID(TransactionID(id), ttype, must(NewDescription(description)), must(ParseAmount(amount)), date.MustParse(on))
}

var (
	alice  = newPerson("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6, #08-111", "friends")
	benson = newPerson("Benson Meier", "98765432", "johnd@example.com", "311, Clementi Ave 2, #02-25", "owesMoney", "friends")
	carl   = newPerson("Carl Kurz", "95352563", "heinz@example.com", "wall street")
)
