package repos

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Store error taxonomy. Every repository method returns one of these (or a
// raw driver error for failures the handlers map to a 500).
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrConstraint        = errors.New("constraint violation")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// classify folds driver errors into the taxonomy. The sqlite driver exposes
// constraint failures only through the message text, so we match on the
// constraint class it names.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrStoreUnavailable
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicateKey
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrConstraint
	}
	return err
}
