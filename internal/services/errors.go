package services

import "errors"

// Query error kinds. Every failure returned by the query services wraps exactly one of these.
var (
	ErrInvalidFormat      = errors.New("invalid format")
	ErrBatchNotFound      = errors.New("selected batch not found")
	ErrMissingField       = errors.New("required field is missing")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrDecode             = errors.New("prediction could not be decoded")
	ErrSchemaMismatch     = errors.New("prediction width does not match category mapping")
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)
