package csvstore

import "errors"

var (
	// ErrFileNotFound is returned by Load when the backing file does not exist
	ErrFileNotFound = errors.New("customer file not found")

	// ErrInvalidEncoding is returned when a field is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the file has rows but no header row
	ErrMissingHeader = errors.New("CSV file missing header row")
)
