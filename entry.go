package transact

// Entry is the contract shared by everything a Store can hold.
//
// Entries have two distinct notions of equality:
//   - IsSameEntry is the weak identity used for deduplication (same name for
//     persons, same id for transactions).
//   - Equal is the full value equality.
//
// Hash is consistent with Equal: equal entries have the same hash.
type Entry interface {
	IsSameEntry(other Entry) bool
	Equal(other Entry) bool
	Hash() uint64
}
