package transact

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amountPlaces is the fixed number of fractional digits of an Amount.
const amountPlaces = 2

const amountConstraint = "amounts should be non-negative numbers with at most 2 decimal places"

// Amount is the non-negative value of a transaction, with a fixed precision of
// two fractional digits. Amounts carry no currency: the currency is a display
// setting.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates and returns an Amount.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() || !d.Equal(d.Round(amountPlaces)) {
		return Amount{}, &ValidationError{Field: "amount", Value: d.String(), Constraint: amountConstraint}
	}
	return Amount{value: d.Round(amountPlaces)}, nil
}

// ParseAmount parses and validates an Amount like "12.5" or "1000".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, &ValidationError{Field: "amount", Value: s, Constraint: amountConstraint}
	}
	a, err := NewAmount(d)
	if err != nil {
		// report the raw input rather than the decimal representation.
		return Amount{}, &ValidationError{Field: "amount", Value: s, Constraint: amountConstraint}
	}
	return a, nil
}

// Decimal returns the amount as an exact decimal.
func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) Equal(b Amount) bool  { return a.value.Equal(b.value) }
func (a Amount) Compare(b Amount) int { return a.value.Cmp(b.value) }
func (a Amount) Add(b Amount) Amount  { return Amount{value: a.value.Add(b.value)} }
func (a Amount) String() string       { return a.value.StringFixed(amountPlaces) }

// Format returns the amount formatted in a currency, e.g. "$1,234.50" for USD.
// Unknown currency codes are formatted with two digits and the code as symbol.
func (a Amount) Format(currency string) string { return FormatDecimal(a.value, currency) }

// FormatDecimal formats a possibly negative decimal in currency, rounded to
// the currency fraction. Amounts of any size are formatted exactly.
func FormatDecimal(d decimal.Decimal, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, currency).Currency()
	d = d.Round(int32(cur.Fraction))

	integer, fraction, _ := strings.Cut(d.Abs().StringFixed(int32(cur.Fraction)), ".")
	if cur.Thousand != "" {
		for i := len(integer) - 3; i > 0; i -= 3 {
			integer = integer[:i] + cur.Thousand + integer[i:]
		}
	}
	number := integer
	if fraction != "" {
		number += cur.Decimal + fraction
	}
	// same template expansion as the money formatter.
	out := strings.Replace(cur.Template, "1", number, 1)
	out = strings.Replace(out, "$", cur.Grapheme, 1)
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// MarshalJSON persists the amount as a string to keep it exact.
func (a Amount) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return &ValidationError{Field: "amount", Value: string(data), Constraint: amountConstraint}
	}
	v, err := NewAmount(d)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
