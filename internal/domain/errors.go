package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("word not found")
	ErrServer     = errors.New("dictionary service error")
	ErrConnection = errors.New("connection failed")
	ErrValidation = errors.New("validation error")
)

// ErrorKind is the closed classification of a failed lookup.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "not_found"
	KindServer     ErrorKind = "server"
	KindConnection ErrorKind = "connection"
)

// LookupError describes why a lookup for a specific word failed.
// It unwraps to the sentinel matching its Kind, so callers may use
// errors.Is(err, domain.ErrNotFound) etc.
type LookupError struct {
	Kind ErrorKind
	Word string
	Err  error // underlying transport or decode error, may be nil
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lookup %q: %s: %v", e.Word, e.Kind, e.Err)
	}
	return fmt.Sprintf("lookup %q: %s", e.Word, e.Kind)
}

func (e *LookupError) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	case KindConnection:
		return ErrConnection
	}
	return nil
}

// NewLookupError creates a LookupError of the given kind, optionally
// wrapping an underlying cause.
func NewLookupError(kind ErrorKind, word string, cause error) *LookupError {
	return &LookupError{Kind: kind, Word: word, Err: cause}
}
