package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/scoring/leaderboard/dto"
)

/* ================= Scope ================= */

// Scope narrows a ranking to one of four populations, always keyed to a
// single game. School, city and state resolve through the user's current
// school assignment at read time.
type Scope struct {
	GameID   uuid.UUID
	SchoolID *uuid.UUID
	CityID   *uuid.UUID
	State    *string
}

func GameScope(gameID uuid.UUID) Scope {
	return Scope{GameID: gameID}
}

func SchoolScope(gameID, schoolID uuid.UUID) Scope {
	return Scope{GameID: gameID, SchoolID: &schoolID}
}

func CityScope(gameID, cityID uuid.UUID) Scope {
	return Scope{GameID: gameID, CityID: &cityID}
}

func StateScope(gameID uuid.UUID, state string) Scope {
	s := NormalizeState(state)
	return Scope{GameID: gameID, State: &s}
}

// NormalizeState strips stray enclosing braces and uppercases the code, so
// "{sp}" and "sp" both match rows stored as "SP".
func NormalizeState(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "{}")
	return strings.ToUpper(strings.TrimSpace(raw))
}

/* ================= Best-score aggregation ================= */

// BestScoreRow is one user's best result within the scope, pre-ranking.
type BestScoreRow struct {
	UserID       uuid.UUID `gorm:"column:user_id"`
	UserName     string    `gorm:"column:user_name"`
	UserUsername string    `gorm:"column:user_username"`
	BestScore    int       `gorm:"column:best_score"`
	SchoolName   *string   `gorm:"column:school_name"`
	CityName     *string   `gorm:"column:city_name"`
}

// Username is the secondary sort key so equal scores come back in a stable
// order across reads.
const bestScoresQuery = `
SELECT u.user_id, u.user_name, u.user_username,
       MAX(gs.game_score_value) AS best_score,
       s.school_name, c.city_name
FROM game_scores AS gs
JOIN users AS u ON u.user_id = gs.game_score_user_id AND u.user_is_active = TRUE
LEFT JOIN schools AS s ON s.school_id = u.user_school_id
LEFT JOIN cities AS c ON c.city_id = s.school_city_id
WHERE gs.game_score_game_id = ?%s
GROUP BY u.user_id, u.user_name, u.user_username, s.school_name, c.city_name
ORDER BY best_score DESC, u.user_username ASC`

func bestScores(db *gorm.DB, scope Scope) ([]BestScoreRow, error) {
	predicate := ""
	args := []interface{}{scope.GameID}
	switch {
	case scope.SchoolID != nil:
		predicate = " AND u.user_school_id = ?"
		args = append(args, *scope.SchoolID)
	case scope.CityID != nil:
		predicate = " AND s.school_city_id = ?"
		args = append(args, *scope.CityID)
	case scope.State != nil:
		predicate = " AND c.city_state = ?"
		args = append(args, *scope.State)
	}

	var rows []BestScoreRow
	query := fmt.Sprintf(bestScoresQuery, predicate)
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, apperr.Tx(err)
	}
	return rows, nil
}

/* ================= Ranking ================= */

// assignRanks applies competition ranking to rows already sorted by best
// score descending: ties share a rank and the next distinct score skips by
// the tie count (two tied at rank 1, next distinct at rank 3).
func assignRanks(rows []BestScoreRow) []dto.LeaderboardEntry {
	entries := make([]dto.LeaderboardEntry, 0, len(rows))
	rank := 0
	prevScore := 0
	for i, r := range rows {
		if i == 0 || r.BestScore != prevScore {
			rank = i + 1
			prevScore = r.BestScore
		}
		entries = append(entries, dto.LeaderboardEntry{
			Rank:         rank,
			UserID:       r.UserID,
			UserName:     r.UserName,
			UserUsername: r.UserUsername,
			BestScore:    r.BestScore,
			SchoolName:   r.SchoolName,
			CityName:     r.CityName,
		})
	}
	return entries
}

// Leaderboard ranks the scope's population and truncates to limit after
// ranking, so a tied group straddling the boundary is cut mid-tie.
func Leaderboard(db *gorm.DB, scope Scope, limit int) ([]dto.LeaderboardEntry, error) {
	rows, err := bestScores(db, scope)
	if err != nil {
		return nil, err
	}
	entries := assignRanks(rows)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

/* ================= Single-user rank lookup ================= */

const userBestQuery = `
SELECT MAX(game_score_value) AS best_score
FROM game_scores
WHERE game_score_user_id = ? AND game_score_game_id = ?`

const betterUsersQuery = `
SELECT COUNT(*) FROM (
  SELECT gs.game_score_user_id
  FROM game_scores AS gs
  JOIN users AS u ON u.user_id = gs.game_score_user_id AND u.user_is_active = TRUE
  WHERE gs.game_score_game_id = ?
  GROUP BY gs.game_score_user_id
  HAVING MAX(gs.game_score_value) > ?
) AS better`

// UserRank returns the caller's game-scope rank and best score, or both
// fields null when the user has no qualifying score. The rank equals one
// plus the number of users with a strictly higher best, which matches the
// competition ranking the leaderboard emits.
func UserRank(db *gorm.DB, userID, gameID uuid.UUID) (dto.UserRankResponse, error) {
	var best sql.NullInt64
	if err := db.Raw(userBestQuery, userID, gameID).Scan(&best).Error; err != nil {
		return dto.UserRankResponse{}, apperr.Tx(err)
	}
	if !best.Valid {
		return dto.UserRankResponse{}, nil
	}

	var better int64
	if err := db.Raw(betterUsersQuery, gameID, best.Int64).Scan(&better).Error; err != nil {
		return dto.UserRankResponse{}, apperr.Tx(err)
	}
	rank := int(better) + 1
	score := int(best.Int64)
	return dto.UserRankResponse{Rank: &rank, BestScore: &score}, nil
}
