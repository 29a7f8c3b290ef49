package transact

import (
	"fmt"
	"iter"
	"slices"
)

// UniqueList is an ordered list of entries in which no two entries are the same
// entry (see Entry.IsSameEntry).
//
// Entries are kept in insertion order. Operations that fail leave the list
// unchanged. Its zero value is an empty list ready to use.
type UniqueList[E Entry] struct {
	entries []E
}

// NewUniqueList creates an empty list.
func NewUniqueList[E Entry]() *UniqueList[E] {
	return &UniqueList[E]{entries: make([]E, 0)}
}

// Contains reports whether the list holds an entry that is the same entry as e.
func (l *UniqueList[E]) Contains(e E) bool {
	return l.index(e) >= 0
}

// index returns the position of the entry that is the same entry as e, or -1.
func (l *UniqueList[E]) index(e E) int {
	return slices.IndexFunc(l.entries, func(x E) bool { return x.IsSameEntry(e) })
}

// Add appends e to the list, or fails with ErrDuplicateEntry.
func (l *UniqueList[E]) Add(e E) error {
	if l.Contains(e) {
		return fmt.Errorf("cannot add %v: %w", e, ErrDuplicateEntry)
	}
	l.entries = append(l.entries, e)
	return nil
}

// Set replaces target with replacement, at the same position.
//
// It fails with ErrEntryNotFound if target is not in the list, and with
// ErrDuplicateEntry if replacement is the same entry as another entry of the
// list.
func (l *UniqueList[E]) Set(target, replacement E) error {
	i := l.index(target)
	if i < 0 {
		return fmt.Errorf("cannot replace %v: %w", target, ErrEntryNotFound)
	}
	for j, x := range l.entries {
		if j != i && x.IsSameEntry(replacement) {
			return fmt.Errorf("cannot replace %v by %v: %w", target, replacement, ErrDuplicateEntry)
		}
	}
	l.entries[i] = replacement
	return nil
}

// Remove removes the entry that is the same entry as e, or fails with
// ErrEntryNotFound.
func (l *UniqueList[E]) Remove(e E) error {
	i := l.index(e)
	if i < 0 {
		return fmt.Errorf("cannot remove %v: %w", e, ErrEntryNotFound)
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	return nil
}

// SetAll replaces the whole content of the list. It fails with
// ErrDuplicateEntry if entries contains the same entry twice.
func (l *UniqueList[E]) SetAll(entries []E) error {
	for i, e := range entries {
		for _, x := range entries[:i] {
			if x.IsSameEntry(e) {
				return fmt.Errorf("cannot set %v: %w", e, ErrDuplicateEntry)
			}
		}
	}
	l.entries = append(make([]E, 0, len(entries)), entries...)
	return nil
}

// Len returns the number of entries.
func (l *UniqueList[E]) Len() int { return len(l.entries) }

// All returns an iterator over the entries in order.
func (l *UniqueList[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Slice returns a copy of the entries in order. It is never nil.
func (l *UniqueList[E]) Slice() []E { return append(make([]E, 0, len(l.entries)), l.entries...) }

// Find returns the first entry accepted by match.
func (l *UniqueList[E]) Find(match func(E) bool) (e E, found bool) {
	if i := slices.IndexFunc(l.entries, match); i >= 0 {
		return l.entries[i], true
	}
	return e, false
}
