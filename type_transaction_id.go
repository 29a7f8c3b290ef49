package transact

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// TransactionID identifies a transaction. It is the weak identity of a
// transaction.
type TransactionID int64

// lastTransactionID is the process-wide counter used to generate ids.
var lastTransactionID atomic.Int64

// NextTransactionID returns a new id, strictly greater than every id generated
// or observed before.
func NextTransactionID() TransactionID {
	return TransactionID(lastTransactionID.Add(1))
}

// observeTransactionID advances the id counter so that it never generates id
// again.
func observeTransactionID(id TransactionID) {
	for {
		last := lastTransactionID.Load()
		if int64(id) <= last || lastTransactionID.CompareAndSwap(last, int64(id)) {
			return
		}
	}
}

// ParseTransactionID parses and validates a TransactionID.
func ParseTransactionID(s string) (TransactionID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return 0, &ValidationError{Field: "transaction id", Value: s, Constraint: "transaction ids should be positive integers"}
	}
	return TransactionID(v), nil
}

func (id TransactionID) String() string { return strconv.FormatInt(int64(id), 10) }
