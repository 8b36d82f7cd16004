package quotes

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable is returned when the database cannot be opened,
	// prepared or queried. It is fatal to the operation, not to the process.
	ErrStorageUnavailable = errors.New("quote storage unavailable")

	// ErrValidationFailed is returned when a required field reaches the store empty.
	ErrValidationFailed = errors.New("quote validation failed")

	// ErrSchemaVersion is returned when the database file was written by a
	// newer schema than this build understands.
	ErrSchemaVersion = errors.New("unsupported quote schema version")
)

func storageError(action string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", action, ErrStorageUnavailable, err)
}
