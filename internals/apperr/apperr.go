package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind is the error taxonomy every feature resolves against at its
// controller boundary. Anything that is not one of these is treated as an
// internal failure after rollback.
type Kind int

const (
	KindValidation Kind = iota + 1 // malformed or missing input
	KindReference                  // a referenced foreign entity does not exist
	KindNotFound                   // the primary subject of the operation does not exist
	KindConflict                   // a uniqueness constraint would be violated
	KindTx                         // unexpected fault inside a composite operation
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Reference(message string) *Error {
	return &Error{Kind: KindReference, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Tx(err error) *Error {
	return &Error{Kind: KindTx, Message: "internal error", Err: err}
}

// IsKind reports whether err carries the given taxonomy kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// Postgres SQLSTATE codes the original controllers switched on.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Translate maps a store error to the taxonomy: FK violations become
// ReferenceError (refMsg), unique violations ConflictError (conflictMsg),
// gorm's missing-record sentinel NotFoundError. Errors that already carry a
// kind pass through untouched; everything else is a transaction failure.
func Translate(err error, refMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("record not found")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return Reference(refMsg)
		case pgUniqueViolation:
			return Conflict(conflictMsg)
		}
	}
	return Tx(err)
}

// TranslateDelete is Translate for delete paths, where an FK violation means
// "other rows still reference this one" and is a conflict, not a dangling
// reference.
func TranslateDelete(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return Conflict(conflictMsg)
	}
	return Translate(err, "referenced record not found", conflictMsg)
}

// HTTPStatus maps the taxonomy to the status codes the original API used:
// 400 validation, 404 for both missing subjects and dangling references,
// 409 conflicts, 500 otherwise.
func HTTPStatus(err error) int {
	var ae *Error
	if !errors.As(err, &ae) {
		return fiber.StatusInternalServerError
	}
	switch ae.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindReference, KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Message returns the client-facing message. Internal failures never leak
// their cause.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != KindTx {
		return ae.Message
	}
	return "internal error"
}
