package services

import "errors"

// Sentinel errors for the flat-file stores. Callers match them with
// errors.Is; wrapping adds the file or field context.
var (
	// ErrNotFound marks a profile or saved-bid identifier that does not
	// resolve to a file.
	ErrNotFound = errors.New("not found")

	// ErrMissingField marks a profile record missing a required key.
	ErrMissingField = errors.New("missing required field")

	// ErrMalformedData marks a stored file that is not valid JSON of the
	// expected shape.
	ErrMalformedData = errors.New("malformed data")
)
