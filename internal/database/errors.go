package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// DatabaseError is the single error type surfaced by store operations
type DatabaseError struct {
	Type    string
	Message string
	Err     error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

const (
	// ErrTypeStorage covers connection, statement and constraint failures.
	ErrTypeStorage = "STORAGE_ERROR"
	// ErrTypeTypeConversion covers stored values that do not fit the in-memory type.
	ErrTypeTypeConversion = "TYPE_CONVERSION_ERROR"
	// ErrTypeInvalidState covers double inserts and updates of unsaved or missing rows.
	ErrTypeInvalidState = "INVALID_STATE"
)

// WrapDatabaseError wraps a database error with additional context
func WrapDatabaseError(errType, message string, err error) *DatabaseError {
	return &DatabaseError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// StorageError wraps a failure reported by the store
func StorageError(message string, err error) *DatabaseError {
	return WrapDatabaseError(ErrTypeStorage, message, err)
}

// ConversionError wraps a failure converting a column into its Go type
func ConversionError(message string, err error) *DatabaseError {
	return WrapDatabaseError(ErrTypeTypeConversion, message, err)
}

// InvalidStateError reports an operation the entity's lifecycle does not allow
func InvalidStateError(message string) *DatabaseError {
	return WrapDatabaseError(ErrTypeInvalidState, message, nil)
}

// IsType reports whether err is a DatabaseError of the given type
func IsType(err error, errType string) bool {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return dbErr.Type == errType
	}
	return false
}

// IsNotFound reports whether err is a storage error for a missing row
func IsNotFound(err error) bool {
	return IsType(err, ErrTypeStorage) && errors.Is(err, sql.ErrNoRows)
}
