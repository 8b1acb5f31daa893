package models

const (
	DefaultBatchLimit    = 5
	DefaultSelectedBatch = 1
)

// TransactionQuery contains the parsed filtering and batching options of a transaction query
type TransactionQuery struct {
	// PurchaseMonth is a YYYY-MM prefix; empty means no month filter
	PurchaseMonth string
	// CustomerID is compared as a string; empty means no customer filter
	CustomerID    string
	Limit         int
	SelectedBatch int
}

// NewTransactionQuery returns a query with default batching and no filters
func NewTransactionQuery() TransactionQuery {
	return TransactionQuery{
		Limit:         DefaultBatchLimit,
		SelectedBatch: DefaultSelectedBatch,
	}
}

// Matches reports whether a record passes both optional filters
func (q TransactionQuery) Matches(record TransactionRecord) bool {
	if q.PurchaseMonth != "" && !record.InMonth(q.PurchaseMonth) {
		return false
	}
	if q.CustomerID != "" && record.CustomerID != q.CustomerID {
		return false
	}
	return true
}
