package repository

import "errors"

// ErrNotFound is returned when an update or delete matched no document.
var ErrNotFound = errors.New("record not found")
