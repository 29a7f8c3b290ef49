// Package transact keeps the records of a small business: the persons it deals
// with and the financial transactions it makes. It is designed to be
// local-first: everything lives in memory in a Store, and is persisted as a
// single human-readable JSON document.
//
// The core functionalities include:
//   - Entries: Person and Transaction are immutable values with validated
//     fields. Both implement Entry, which separates weak identity
//     (IsSameEntry: same name, same transaction id) from full value equality
//     (Equal).
//   - Unique lists: a UniqueList keeps insertion order and refuses two entries
//     that are the same entry.
//   - Store: holds one unique list per kind of entry and derived views that are
//     filtered and sorted on demand.
//   - Persistence: encoding and decoding the Store to and from JSON, and a file
//     based Storage.
//
// Stores are mutated by the commands of the command package, which is the
// foundational logic for the `transact` command-line tool.
package transact
