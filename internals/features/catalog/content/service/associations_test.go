package service

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eduplay_backend/internals/apperr"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func expectGameExists(mock sqlmock.Sqlmock, gameID uuid.UUID, n int64) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "games"`)).
		WithArgs(gameID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(n))
}

func TestReplaceContentAssociationsSwapsFullSet(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()
	tagA, tagB := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectGameExists(mock, gameID, 1)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM game_subjects WHERE game_subject_game_id = $1")).
		WithArgs(gameID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_subjects (game_subject_game_id, game_subject_subject_id) VALUES ($1, $2)")).
		WithArgs(gameID, tagA).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_subjects (game_subject_game_id, game_subject_subject_id) VALUES ($1, $2)")).
		WithArgs(gameID, tagB).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := ReplaceContentAssociations(db, ContentGame, gameID, AssociationSubject, []uuid.UUID{tagA, tagB})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceContentAssociationsEmptyListClears(t *testing.T) {
	db, mock := newMockDB(t)
	videoID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "videos"`)).
		WithArgs(videoID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM video_years WHERE video_year_video_id = $1")).
		WithArgs(videoID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := ReplaceContentAssociations(db, ContentVideo, videoID, AssociationYear, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceContentAssociationsUnknownTagRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()
	badTag := uuid.New()

	mock.ExpectBegin()
	expectGameExists(mock, gameID, 1)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM game_subjects WHERE game_subject_game_id = $1")).
		WithArgs(gameID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_subjects")).
		WithArgs(gameID, badTag).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	err := ReplaceContentAssociations(db, ContentGame, gameID, AssociationSubject, []uuid.UUID{badTag})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindReference))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceContentAssociationsMissingContent(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()

	mock.ExpectBegin()
	expectGameExists(mock, gameID, 0)
	mock.ExpectRollback()

	err := ReplaceContentAssociations(db, ContentGame, gameID, AssociationSubject, []uuid.UUID{uuid.New()})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseAssociationType(t *testing.T) {
	typ, err := ParseAssociationType("subjects")
	require.NoError(t, err)
	assert.Equal(t, AssociationSubject, typ)

	typ, err = ParseAssociationType("years")
	require.NoError(t, err)
	assert.Equal(t, AssociationYear, typ)

	_, err = ParseAssociationType("flavors")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
