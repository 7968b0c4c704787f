package domain

import "errors"

// ErrEmptyQuery is returned when a query is empty or whitespace-only
// after trimming. No network call is made in this case.
var ErrEmptyQuery = errors.New("query cannot be empty")
