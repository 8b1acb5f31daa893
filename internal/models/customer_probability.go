package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const FieldPrediction = "prediction"

var (
	ErrPredictionEmpty     = errors.New("prediction is empty")
	ErrPredictionMalformed = errors.New("prediction is not a JSON array of numbers")
)

// CustomerProbabilityRecord is one row of the category probability dataset.
// Prediction keeps the serialized vector exactly as stored in the source.
type CustomerProbabilityRecord struct {
	CustomerID string
	Prediction string
}

// NewCustomerProbabilityRecord builds a record from a header-keyed tabular row
func NewCustomerProbabilityRecord(row map[string]string) CustomerProbabilityRecord {
	return CustomerProbabilityRecord{
		CustomerID: strings.TrimSpace(row[FieldCustomerID]),
		Prediction: strings.TrimSpace(row[FieldPrediction]),
	}
}

// DecodePrediction parses the serialized probability vector
func (r CustomerProbabilityRecord) DecodePrediction() ([]float64, error) {
	if r.Prediction == "" {
		return nil, ErrPredictionEmpty
	}

	var vector []float64
	if err := json.Unmarshal([]byte(r.Prediction), &vector); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPredictionMalformed, err)
	}
	if vector == nil {
		return nil, ErrPredictionMalformed
	}

	return vector, nil
}

// CustomerProbabilityRow is the database representation of a CustomerProbabilityRecord
type CustomerProbabilityRow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CustomerID string    `gorm:"type:varchar(64);not null;index"`
	Prediction string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName overrides the table name used by CustomerProbabilityRow
func (CustomerProbabilityRow) TableName() string {
	return "customer_probabilities"
}

// ToRecord converts the row into a dataset record
func (r CustomerProbabilityRow) ToRecord() CustomerProbabilityRecord {
	return CustomerProbabilityRecord{
		CustomerID: r.CustomerID,
		Prediction: r.Prediction,
	}
}

// NewCustomerProbabilityRow converts a dataset record into its database representation
func NewCustomerProbabilityRow(record CustomerProbabilityRecord) CustomerProbabilityRow {
	return CustomerProbabilityRow{
		CustomerID: record.CustomerID,
		Prediction: record.Prediction,
	}
}
