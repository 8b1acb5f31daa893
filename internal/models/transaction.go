package models

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	FieldPurchaseDate = "purchase_date"
	FieldCustomerID   = "customer_id"
)

// purchaseDateLayouts lists the accepted purchase_date encodings, most specific last
var purchaseDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// TransactionRecord is one row of the transaction dataset.
// Attributes holds every column of the row as loaded, including the two typed fields,
// and is never modified after construction.
type TransactionRecord struct {
	PurchaseDate string
	CustomerID   string
	Attributes   Attributes
}

// NewTransactionRecord builds a record from a header-keyed tabular row
func NewTransactionRecord(row map[string]string) TransactionRecord {
	attributes := make(Attributes, len(row))
	for key, value := range row {
		attributes[key] = value
	}

	return TransactionRecord{
		PurchaseDate: strings.TrimSpace(row[FieldPurchaseDate]),
		CustomerID:   strings.TrimSpace(row[FieldCustomerID]),
		Attributes:   attributes,
	}
}

// PurchaseTime parses the purchase date. The boolean is false when the date is unparsable.
func (r TransactionRecord) PurchaseTime() (time.Time, bool) {
	for _, layout := range purchaseDateLayouts {
		if t, err := time.Parse(layout, r.PurchaseDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InMonth reports whether the purchase date starts with the given YYYY-MM prefix
func (r TransactionRecord) InMonth(month string) bool {
	return strings.HasPrefix(r.PurchaseDate, month)
}

// MarshalJSON renders the record as a flat object of its original columns
func (r TransactionRecord) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(r.Attributes)+2)
	for key, value := range r.Attributes {
		flat[key] = value
	}
	flat[FieldPurchaseDate] = r.PurchaseDate
	flat[FieldCustomerID] = r.CustomerID

	return json.Marshal(flat)
}

// UnmarshalJSON accepts the flat object produced by MarshalJSON
func (r *TransactionRecord) UnmarshalJSON(data []byte) error {
	var row map[string]string
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*r = NewTransactionRecord(row)
	return nil
}

// TransactionRow is the database representation of a TransactionRecord
type TransactionRow struct {
	ID           uint       `gorm:"primaryKey;autoIncrement"`
	PurchaseDate string     `gorm:"type:varchar(32);not null;index"`
	CustomerID   string     `gorm:"type:varchar(64);not null;index"`
	Attributes   Attributes `gorm:"type:text"`
	CreatedAt    time.Time  `gorm:"not null"`
}

// TableName overrides the table name used by TransactionRow
func (TransactionRow) TableName() string {
	return "transactions"
}

// ToRecord converts the row back into the dataset record it was imported from
func (r TransactionRow) ToRecord() TransactionRecord {
	row := make(map[string]string, len(r.Attributes)+2)
	for key, value := range r.Attributes {
		row[key] = value
	}
	row[FieldPurchaseDate] = r.PurchaseDate
	row[FieldCustomerID] = r.CustomerID
	return NewTransactionRecord(row)
}

// NewTransactionRow converts a dataset record into its database representation
func NewTransactionRow(record TransactionRecord) TransactionRow {
	return TransactionRow{
		PurchaseDate: record.PurchaseDate,
		CustomerID:   record.CustomerID,
		Attributes:   record.Attributes,
	}
}
