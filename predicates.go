package transact

import (
	"cmp"
	"slices"
	"strings"

	"github.com/etnz/transact/date"
	"golang.org/x/text/cases"
)

// AcceptAll accepts every entry.
func AcceptAll[E any](E) bool { return true }

// fold returns the Unicode case folding of s. A Caser is stateful, hence one
// per call.
func fold(s string) string { return cases.Fold().String(s) }

// foldedWords returns the set of case folded words of s.
func foldedWords(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(fold(s)) {
		words[w] = true
	}
	return words
}

// containsAnyWord reports whether any keyword is a full word of text.
func containsAnyWord(text string, keywords []string) bool {
	words := foldedWords(text)
	for _, k := range keywords {
		if words[fold(strings.TrimSpace(k))] {
			return true
		}
	}
	return false
}

// NameContainsKeywords accepts persons whose name contains any of the keywords
// as a full word, ignoring case.
//
// "alice" matches "Alice Pauline" but "ali" does not.
func NameContainsKeywords(keywords ...string) func(Person) bool {
	keywords = slices.Clone(keywords)
	return func(p Person) bool { return containsAnyWord(p.name.value, keywords) }
}

// TransactionContainsKeywords accepts transactions whose description contains
// any of the keywords as a full word, ignoring case.
func TransactionContainsKeywords(keywords ...string) func(Transaction) bool {
	keywords = slices.Clone(keywords)
	return func(t Transaction) bool { return containsAnyWord(t.description.value, keywords) }
}

// TransactionInRange accepts transactions dated within r.
func TransactionInRange(r date.Range) func(Transaction) bool {
	return func(t Transaction) bool { return r.Contains(t.date) }
}

// TransactionOfType accepts transactions of type ttype.
func TransactionOfType(ttype TransactionType) func(Transaction) bool {
	return func(t Transaction) bool { return t.ttype == ttype }
}

// TransactionWithPerson accepts transactions linked to a person named name.
func TransactionWithPerson(name Name) func(Transaction) bool {
	return func(t Transaction) bool { return t.person != nil && t.person.name == name }
}

// AllOf accepts the entries accepted by all the filters. AllOf() accepts
// everything.
func AllOf[E any](filters ...func(E) bool) func(E) bool {
	return func(e E) bool {
		for _, f := range filters {
			if !f(e) {
				return false
			}
		}
		return true
	}
}

// ByTransactionID orders transactions by ascending id.
func ByTransactionID(a, b Transaction) int { return cmp.Compare(a.id, b.id) }

// ByDate orders transactions by ascending date.
func ByDate(a, b Transaction) int { return a.date.Compare(b.date) }

// ByAmount orders transactions by ascending amount.
func ByAmount(a, b Transaction) int { return a.amount.Compare(b.amount) }

// Reverse returns the reverse order of order.
func Reverse(order func(a, b Transaction) int) func(a, b Transaction) int {
	return func(a, b Transaction) int { return order(b, a) }
}
