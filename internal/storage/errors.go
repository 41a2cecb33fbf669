package storage

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrQuotaExceeded reports a write that does not fit in the store.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrSecurity reports a write the store is not permitted to perform.
	ErrSecurity = errors.New("storage operation is not permitted")
)

// classify maps sqlite result codes onto the store's sentinel errors.
// Errors it does not recognise are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	// extended result codes keep the primary code in the low byte
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_FULL:
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case sqlite3.SQLITE_READONLY, sqlite3.SQLITE_PERM, sqlite3.SQLITE_AUTH:
		return fmt.Errorf("%w: %w", ErrSecurity, err)
	default:
		return err
	}
}
