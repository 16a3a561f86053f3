package service

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func row(username string, score int) BestScoreRow {
	return BestScoreRow{
		UserID:       uuid.New(),
		UserName:     username,
		UserUsername: username,
		BestScore:    score,
	}
}

func TestAssignRanksTiesShareRankAndSkip(t *testing.T) {
	entries := assignRanks([]BestScoreRow{
		row("ana", 80),
		row("bia", 80),
		row("caio", 65),
	})

	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestAssignRanksDistinctScores(t *testing.T) {
	entries := assignRanks([]BestScoreRow{
		row("ana", 90),
		row("bia", 70),
		row("caio", 50),
	})

	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestAssignRanksNonIncreasingScores(t *testing.T) {
	entries := assignRanks([]BestScoreRow{
		row("a", 100), row("b", 100), row("c", 90), row("d", 90), row("e", 10),
	})

	for i := 1; i < len(entries); i++ {
		assert.LessOrEqual(t, entries[i].BestScore, entries[i-1].BestScore)
		assert.GreaterOrEqual(t, entries[i].Rank, entries[i-1].Rank)
	}
	assert.Equal(t, 5, entries[4].Rank)
}

func TestAssignRanksEmpty(t *testing.T) {
	assert.Empty(t, assignRanks(nil))
}

func TestNormalizeState(t *testing.T) {
	assert.Equal(t, "SP", NormalizeState("SP"))
	assert.Equal(t, "SP", NormalizeState("sp"))
	assert.Equal(t, "SP", NormalizeState("{SP}"))
	assert.Equal(t, "SP", NormalizeState("{sp}"))
	assert.Equal(t, "SP", NormalizeState("  {sp} "))
	assert.Equal(t, "", NormalizeState("{}"))
}

func TestLeaderboardTruncatesAfterRanking(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"user_id", "user_name", "user_username", "best_score", "school_name", "city_name",
	}).
		AddRow(uuid.New().String(), "Ana", "ana", 80, nil, nil).
		AddRow(uuid.New().String(), "Bia", "bia", 80, nil, nil).
		AddRow(uuid.New().String(), "Caio", "caio", 65, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("MAX(gs.game_score_value) AS best_score")).
		WithArgs(gameID).
		WillReturnRows(rows)

	entries, err := Leaderboard(db, GameScope(gameID), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 1, entries[1].Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardStateScopeFiltersByState(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("AND c.city_state =")).
		WithArgs(gameID, "SP").
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "user_name", "user_username", "best_score", "school_name", "city_name",
		}))

	entries, err := Leaderboard(db, StateScope(gameID, "{sp}"), 100)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRankRanked(t *testing.T) {
	db, mock := newMockDB(t)
	userID, gameID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("MAX(game_score_value) AS best_score")).
		WithArgs(userID, gameID).
		WillReturnRows(sqlmock.NewRows([]string{"best_score"}).AddRow(80))
	mock.ExpectQuery(regexp.QuoteMeta("HAVING MAX(gs.game_score_value) >")).
		WithArgs(gameID, int64(80)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	res, err := UserRank(db, userID, gameID)
	require.NoError(t, err)
	require.NotNil(t, res.Rank)
	require.NotNil(t, res.BestScore)
	assert.Equal(t, 3, *res.Rank)
	assert.Equal(t, 80, *res.BestScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRankUnrankedIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	userID, gameID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("MAX(game_score_value) AS best_score")).
		WithArgs(userID, gameID).
		WillReturnRows(sqlmock.NewRows([]string{"best_score"}).AddRow(nil))

	res, err := UserRank(db, userID, gameID)
	require.NoError(t, err)
	assert.Nil(t, res.Rank)
	assert.Nil(t, res.BestScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
