package service

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/catalog/content/model"
)

func TestCreateGameWithTagsRollsBackOnBadTag(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()
	badTag := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "games"`)).
		WillReturnRows(sqlmock.NewRows([]string{"game_id"}).AddRow(gameID.String()))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM game_subjects")).
		WithArgs(gameID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_subjects")).
		WithArgs(gameID, badTag).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	m := &model.GameModel{GameName: "fractions-frenzy"}
	err := CreateGameWithTags(db, m, []uuid.UUID{badTag}, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindReference))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGameWithTagsDuplicateName(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "games"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := CreateGameWithTags(db, &model.GameModel{GameName: "dup"}, nil, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGameWithTagsZeroRowsAborts(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()
	tags := []uuid.UUID{uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "games" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := UpdateGameWithTags(db, gameID, map[string]interface{}{"game_name": "x"}, &tags, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGameWithTagsNilSlicesTouchNothing(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "games" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := UpdateGameWithTags(db, gameID, map[string]interface{}{"game_name": "renamed"}, nil, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
