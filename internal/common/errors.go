package common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Error kinds. Match with errors.Is(err, common.ErrNotFound).
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage error")
)

const pgUniqueViolation = "23505"

// AppError carries a kind, a caller-facing message and the underlying cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func NewValidationError(format string, args ...any) error {
	return &AppError{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) error {
	return &AppError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewForbiddenError(format string, args ...any) error {
	return &AppError{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(message string, cause error) error {
	return &AppError{Kind: ErrConflict, Message: message, Err: cause}
}

func NewStorageError(message string, cause error) error {
	return &AppError{Kind: ErrStorage, Message: message, Err: cause}
}

// IsUniqueViolation recognises duplicate-key failures from GORM (TranslateError),
// pgx and lib/pq.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}

// TranslateStoreError maps a persistence error onto the error taxonomy.
// Errors that already carry a kind pass through untouched.
func TranslateStoreError(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &AppError{Kind: ErrNotFound, Message: message, Err: err}
	case IsUniqueViolation(err):
		return NewConflictError(message, err)
	default:
		return NewStorageError(message, err)
	}
}

// HTTPStatus maps an error kind to its response code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage hides storage internals from API clients.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
