package task

import "errors"

// Error variables for task and config operations.
var (
	ErrInvalidIndex       = errors.New("invalid task index")
	ErrAccountNotFound    = errors.New("no such account")
	ErrUnknownPriority    = errors.New("unknown priority")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrDataFileEmpty      = errors.New("data-file cannot be empty")
	ErrInvalidColor       = errors.New("invalid color mode (must be auto|always|never)")
)
