package repositories

import "errors"

// ErrNotFound is returned by every repository when no document matches.
// Implementations translate their driver's miss (e.g. mongo.ErrNoDocuments)
// into this sentinel so use cases stay storage-agnostic.
var ErrNotFound = errors.New("document not found")
