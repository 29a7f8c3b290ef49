package renderer

import (
	"strings"

	"github.com/etnz/transact"
	"github.com/etnz/transact/command"
)

// Page is the data of a rendered page.
type Page struct {
	Feedback     string
	Tab          string
	Persons      []PersonRow
	Transactions []TransactionRow

	Revenue string
	Expense string
	Net     string
}

// PersonRow is a person, as displayed in the person table.
type PersonRow struct {
	Index   int // one-based, as used by editperson and deleteperson
	Name    string
	Phone   string
	Email   string
	Address string
	Tags    []string
}

// TransactionRow is a transaction, as displayed in the transaction table.
type TransactionRow struct {
	ID          string
	Date        string
	Type        string
	Description string
	Amount      string
	Staff       string
}

func newPage(feedback string, tab command.Tab, s *transact.Store, opts Options) *Page {
	p := &Page{Feedback: strings.TrimSpace(feedback), Tab: tab.String()}
	switch tab {
	case command.TabPersons:
		for i, person := range s.FilteredPersons() {
			p.Persons = append(p.Persons, newPersonRow(i+1, person))
		}
	case command.TabTransactions:
		for _, tx := range s.FilteredTransactions() {
			p.Transactions = append(p.Transactions, newTransactionRow(tx, opts))
		}
		revenue, expense := s.Balance()
		p.Revenue = revenue.Format(opts.Currency)
		p.Expense = expense.Format(opts.Currency)
		p.Net = transact.FormatDecimal(revenue.Decimal().Sub(expense.Decimal()), opts.Currency)
	}
	return p
}

func newPersonRow(index int, p transact.Person) PersonRow {
	row := PersonRow{
		Index:   index,
		Name:    p.Name().String(),
		Phone:   p.Phone().String(),
		Email:   p.Email().String(),
		Address: p.Address().String(),
	}
	for _, t := range p.Tags() {
		row.Tags = append(row.Tags, t.String())
	}
	return row
}

func newTransactionRow(tx transact.Transaction, opts Options) TransactionRow {
	row := TransactionRow{
		ID:          tx.ID().String(),
		Date:        tx.Date().String(),
		Type:        tx.Type().String(),
		Description: tx.Description().String(),
		Amount:      tx.Amount().Format(opts.Currency),
	}
	if staff, ok := tx.Person(); ok {
		row.Staff = staff.Name().String()
	}
	return row
}
