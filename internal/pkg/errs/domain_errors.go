package errs

import "errors"

// Sentinel errors shared by the query layer and the HTTP handlers
var (
	// Catalog errors
	ErrCityNotFound = errors.New("city not found")

	// Promotion errors
	ErrInvalidEvaluationTime = errors.New("invalid evaluation time")

	// Configuration errors
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
