package transact

import (
	"encoding/json"
	"strings"
)

// TransactionType tells whether money flows in or out.
type TransactionType string

const (
	Revenue TransactionType = "revenue" // Revenue is an inflow of money.
	Expense TransactionType = "expense" // Expense is an outflow of money.
)

// ParseTransactionType parses a TransactionType, case insensitive.
// Accepted values are "revenue" (or "r", "in") and "expense" (or "e", "out").
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "revenue", "r", "in":
		return Revenue, nil
	case "expense", "e", "out":
		return Expense, nil
	default:
		return "", &ValidationError{Field: "type", Value: s, Constraint: `transaction types should be either "revenue" or "expense"`}
	}
}

func (t TransactionType) String() string { return string(t) }

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
