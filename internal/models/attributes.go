package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// Attributes holds the passthrough columns of a dataset row.
// Stored as JSON text so the same column type works on PostgreSQL and SQLite.
type Attributes map[string]string

// Value implements driver.Valuer interface
func (a Attributes) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(map[string]string(a))
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

// Scan implements sql.Scanner interface
func (a *Attributes) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Attributes", value)
	}

	if len(bytes) == 0 {
		*a = nil
		return nil
	}

	m := make(map[string]string)
	if err := json.Unmarshal(bytes, &m); err != nil {
		return err
	}
	*a = m
	return nil
}
