package store

import "errors"

// ErrInvalidDataFile reports a data file that exists but is not valid JSON
// or does not match the data file schema.
var ErrInvalidDataFile = errors.New("invalid data file")

// ErrSaveFailed reports a failure serializing or writing the data file.
var ErrSaveFailed = errors.New("save failed")
