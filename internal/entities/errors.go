// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrSummaryService signals a failed call to the generation service.
	ErrSummaryService = errors.New("summary service failure")
	// ErrEmptySummary signals the generation service produced no usable text.
	ErrEmptySummary = errors.New("empty summary")
)
