package shared

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
	ErrorReadFile   = Error("could not read the file")
	ErrorFileExists = Error("file already exists")
)

// repository errors
const (
	ErrUnsupportedScheme = Error("unsupported database scheme")
	ErrInsertNoResult    = Error("insert produced no result")
	ErrSchemaMismatch    = Error("database schema does not match the expected layout")
)

//------------
// Application errors
//------------

// Kind classifies an application error. Each kind maps to exactly one HTTP status.
type Kind string

const (
	KindDbError          Kind = "DbError"
	KindNotFound         Kind = "NotFound"
	KindConflict         Kind = "Conflict"
	KindStoreUnavailable Kind = "StoreUnavailable"
	KindInvalidInput     Kind = "InvalidInput"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError is the single application-level error value.
// Message is safe to show to clients. Cause is for operator logs only.
type AppError struct {
	Kind    Kind
	Message string
	Cause   string
	err     error
}

func (e *AppError) Error() string {
	if e.Cause == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError builds an AppError without an underlying error.
func NewAppError(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// WrapAppError builds an AppError of a fixed kind around err.
func WrapAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: err.Error(), err: err}
}

// AsAppError extracts an AppError from err. Errors that are not AppErrors are
// reported as a generic DbError so that their text never reaches a client.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindDbError, Message: "Internal server error", Cause: err.Error(), err: err}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Classify converts a low-level store failure into an AppError.
// message is the client-facing text used when the failure has no more specific one.
func Classify(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	e := &AppError{Kind: KindDbError, Message: message, Cause: err.Error(), err: err}

	switch {
	case errors.Is(err, ErrInsertNoResult), errors.Is(err, sql.ErrNoRows):
		e.Kind = KindDbError
		e.Cause = ErrInsertNoResult.Error()
		return e
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		e.Kind = KindStoreUnavailable
		e.Message = "Store unavailable"
		return e
	case errors.Is(err, sql.ErrConnDone), errors.Is(err, driver.ErrBadConn):
		e.Kind = KindStoreUnavailable
		e.Message = "Store unavailable"
		return e
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		classifyPg(e, pgErr)
		return e
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		e.Kind = KindStoreUnavailable
		e.Message = "Store unavailable"
		return e
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		classifySqlite(e, liteErr.Code())
		return e
	}

	return e
}

// classifyPg maps PostgreSQL error codes.
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
func classifyPg(e *AppError, pgErr *pgconn.PgError) {
	switch pgErr.Code {
	case "23503": // foreign_key_violation
		e.Kind = KindNotFound
		e.Message = "Referenced todo list not found"
	case "23505": // unique_violation
		e.Kind = KindConflict
		e.Message = "Resource already exists"
	case "40001", "40P01": // serialization_failure, deadlock_detected
		e.Kind = KindConflict
		e.Message = "Concurrent update conflict, retry the request"
	case "23502", "23514", "22001", "22P02": // not_null, check, string_data_right_truncation, invalid_text_representation
		e.Kind = KindInvalidInput
		e.Message = "Invalid input"
	case "57014", "57P01", "57P02", "57P03", "53300", "08000", "08003", "08006", "08001", "08004":
		e.Kind = KindStoreUnavailable
		e.Message = "Store unavailable"
	}
}

// classifySqlite maps SQLite result codes. Extended codes are checked first,
// the primary code is the low byte.
func classifySqlite(e *AppError, code int) {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		e.Kind = KindNotFound
		e.Message = "Referenced todo list not found"
		return
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		e.Kind = KindConflict
		e.Message = "Resource already exists"
		return
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL, sqlite3.SQLITE_CONSTRAINT_CHECK:
		e.Kind = KindInvalidInput
		e.Message = "Invalid input"
		return
	}

	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_IOERR:
		e.Kind = KindStoreUnavailable
		e.Message = "Store unavailable"
	}
}
