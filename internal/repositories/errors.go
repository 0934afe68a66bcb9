package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Store errors. Callers match them with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("record already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidStockDelta  = errors.New("stock delta out of range")
)

// CreateResult tells a caller whether an insert-if-absent actually stored a row.
type CreateResult int

const (
	Created CreateResult = iota
	AlreadyExists
)

func (r CreateResult) String() string {
	if r == AlreadyExists {
		return "already_exists"
	}
	return "created"
}

// wrapDBError classifies a GORM error into one of the store errors.
func wrapDBError(action string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", action, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueConstraintError(err):
		return fmt.Errorf("%s: %w", action, ErrConflict)
	case isMissingTableError(err):
		return fmt.Errorf("%s: %w: %v", action, ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// isMissingTableError reports schema faults such as a table that was never created.
func isMissingTableError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "malformed") ||
		(strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"))
}
