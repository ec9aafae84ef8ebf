package rsscripter

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates the database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrCatalogShape indicates the catalog returned a value the renderer
	// has no safe handling for (unknown constraint type, unsupported export
	// value type). Never recoverable: guessing would produce wrong scripts.
	ErrCatalogShape = errors.New("unrecognized catalog shape")

	// ErrDuplicateName indicates an insert into an owned collection collided
	// with an existing member (names are case-insensitive-unique).
	ErrDuplicateName = errors.New("duplicate object name")

	// ErrAlreadyOwned indicates an object already held by one parent was
	// inserted into a different parent's collection.
	ErrAlreadyOwned = errors.New("object already owned by another parent")

	// ErrRowLimitExceeded marks a table whose estimated row count exceeds
	// the export ceiling. Non-fatal: the table's data export is skipped.
	ErrRowLimitExceeded = errors.New("row count exceeds export limit")
)

// ExitCodeForError returns the process exit code for an error.
// The external contract is narrow: 0 on success, 1 on any failure.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneralError
}
