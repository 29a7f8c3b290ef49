package transact

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/etnz/transact/date"
)

// Transaction represents a financial transaction.
//
// A transaction may be linked to a person (the staff who handled it). The
// person is a snapshot of its value when the link was made: editing the person
// later does not change the transaction.
type Transaction struct {
	id          TransactionID
	ttype       TransactionType
	description Description
	amount      Amount
	date        date.Date
	person      *Person // nil when the transaction has no linked person
}

// NewTransaction creates a new Transaction with a newly generated id.
func NewTransaction(ttype TransactionType, description Description, amount Amount, on date.Date) Transaction {
	return Transaction{
		id:          NextTransactionID(),
		ttype:       ttype,
		description: description,
		amount:      amount,
		date:        on,
	}
}

// NewTransactionWithID creates a Transaction with an explicit id, typically when
// reconstructing it from storage. Ids generated afterwards are greater than id.
func NewTransactionWithID(id TransactionID, ttype TransactionType, description Description, amount Amount, on date.Date) Transaction {
	observeTransactionID(id)
	return Transaction{
		id:          id,
		ttype:       ttype,
		description: description,
		amount:      amount,
		date:        on,
	}
}

func (t Transaction) ID() TransactionID        { return t.id }
func (t Transaction) Type() TransactionType    { return t.ttype }
func (t Transaction) Description() Description { return t.description }
func (t Transaction) Amount() Amount           { return t.amount }
func (t Transaction) Date() date.Date          { return t.date }
func (t Transaction) HasPerson() bool          { return t.person != nil }

// Person returns the person linked to this transaction, and false if there is none.
func (t Transaction) Person() (Person, bool) {
	if t.person == nil {
		return Person{}, false
	}
	return *t.person, true
}

// WithPerson returns a copy of t linked to p.
func (t Transaction) WithPerson(p Person) Transaction {
	t.person = &p
	return t
}

// WithoutPerson returns a copy of t with no linked person.
func (t Transaction) WithoutPerson() Transaction {
	t.person = nil
	return t
}

// WithType returns a copy of t with another type.
func (t Transaction) WithType(ttype TransactionType) Transaction {
	t.ttype = ttype
	return t
}

func (t Transaction) WithDescription(d Description) Transaction {
	t.description = d
	return t
}

func (t Transaction) WithAmount(a Amount) Transaction {
	t.amount = a
	return t
}

func (t Transaction) WithDate(on date.Date) Transaction {
	t.date = on
	return t
}

// IsSameEntry returns true if other is a transaction with the same id.
func (t Transaction) IsSameEntry(other Entry) bool {
	o, ok := other.(Transaction)
	return ok && o.id == t.id
}

// Equal returns true if other is a transaction with the same id, type,
// description, amount and person.
//
// The date is deliberately not compared: two records of the same transaction
// that only differ by their date are equal.
func (t Transaction) Equal(other Entry) bool {
	o, ok := other.(Transaction)
	if !ok {
		return false
	}
	if t.id != o.id || t.ttype != o.ttype || t.description != o.description || !t.amount.Equal(o.amount) {
		return false
	}
	if t.person == nil || o.person == nil {
		return t.person == nil && o.person == nil
	}
	return t.person.Equal(*o.person)
}

// Hash returns a hash of the fields compared by Equal.
func (t Transaction) Hash() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%d\x00%s\x00%s\x00%s\x00", t.id, t.ttype, t.description.value, t.amount)
	if t.person != nil {
		d.Write([]byte{1})
		t.person.writeHash(d)
	}
	return d.Sum64()
}

func (t Transaction) String() string {
	var staff string
	if t.person != nil {
		staff = t.person.name.value
	}
	return fmt.Sprintf("#%d %s %q %s on %s; Staff: %s", t.id, t.ttype, t.description, t.amount, t.date, staff)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.id)
	w.Append("type", t.ttype)
	w.Append("description", t.description.value)
	w.Append("amount", t.amount)
	w.Append("date", t.date)
	w.Optional("person", t.person)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// Every field but the person is mandatory and validated.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          *int64          `json:"id"`
		Type        *string         `json:"type"`
		Description *string         `json:"description"`
		Amount      json.RawMessage `json:"amount"`
		Date        *string         `json:"date"`
		Person      *Person         `json:"person"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	if err := missingFields(
		field{"id", temp.ID != nil},
		field{"type", temp.Type != nil},
		field{"description", temp.Description != nil},
		field{"amount", temp.Amount != nil && string(temp.Amount) != "null"},
		field{"date", temp.Date != nil},
	); err != nil {
		return err
	}

	var amount Amount
	var idErr, dateErr error
	if *temp.ID <= 0 {
		idErr = &ValidationError{Field: "transaction id", Value: fmt.Sprint(*temp.ID), Constraint: "transaction ids should be positive integers"}
	}
	ttype, typeErr := ParseTransactionType(*temp.Type)
	description, descErr := NewDescription(*temp.Description)
	amountErr := amount.UnmarshalJSON(temp.Amount)
	on, err := date.ParseISO(*temp.Date)
	if err != nil {
		dateErr = &ValidationError{Field: "date", Value: *temp.Date, Constraint: err.Error()}
	}
	if err := errors.Join(idErr, typeErr, descErr, amountErr, dateErr); err != nil {
		return err
	}

	tx := NewTransactionWithID(TransactionID(*temp.ID), ttype, description, amount, on)
	if temp.Person != nil {
		tx = tx.WithPerson(*temp.Person)
	}
	*t = tx
	return nil
}
