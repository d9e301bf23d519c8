package models

import "errors"

// Domain specific errors surfaced to the client.
var (
	ErrNotFound        = errors.New("requested item not found")
	ErrBadRequest      = errors.New("bad request")
	ErrEmptyQuery      = errors.New("query cannot be empty")
	ErrNoResults       = errors.New("the model did not return any map data for this query")
	ErrSessionNotFound = errors.New("no active exploration session")
	ErrEmptyPlan       = errors.New("no day plan has been generated yet")
)
