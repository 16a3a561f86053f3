package apperr

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateForeignKeyViolation(t *testing.T) {
	err := Translate(&pgconn.PgError{Code: "23503"}, "user or game not found", "duplicate")
	assert.True(t, IsKind(err, KindReference))
	assert.Equal(t, "user or game not found", Message(err))
	assert.Equal(t, fiber.StatusNotFound, HTTPStatus(err))
}

func TestTranslateUniqueViolation(t *testing.T) {
	err := Translate(&pgconn.PgError{Code: "23505"}, "ref", "a game with this name already exists")
	assert.True(t, IsKind(err, KindConflict))
	assert.Equal(t, fiber.StatusConflict, HTTPStatus(err))
}

func TestTranslateRecordNotFound(t *testing.T) {
	err := Translate(gorm.ErrRecordNotFound, "ref", "dup")
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, fiber.StatusNotFound, HTTPStatus(err))
}

func TestTranslateKeepsTypedErrors(t *testing.T) {
	in := Validation("score is required")
	out := Translate(in, "ref", "dup")
	assert.Same(t, in, out.(*Error))
	assert.Equal(t, fiber.StatusBadRequest, HTTPStatus(out))
}

func TestTranslateUnknownBecomesTxFailure(t *testing.T) {
	cause := errors.New("connection reset")
	err := Translate(cause, "ref", "dup")
	assert.True(t, IsKind(err, KindTx))
	assert.Equal(t, fiber.StatusInternalServerError, HTTPStatus(err))
	// internal causes must not leak to clients
	assert.Equal(t, "internal error", Message(err))
	assert.True(t, errors.Is(err, cause))
}

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, Translate(nil, "ref", "dup"))
}
