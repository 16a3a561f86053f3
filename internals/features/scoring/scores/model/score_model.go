package model

import (
	"time"

	"github.com/google/uuid"
)

// Append-only play history: every submission is a new row, so the best
// score per user per game is an aggregate, never a column.
type GameScoreModel struct {
	GameScoreID         uuid.UUID `gorm:"column:game_score_id;type:uuid;default:gen_random_uuid();primaryKey" json:"game_score_id"`
	GameScoreUserID     uuid.UUID `gorm:"column:game_score_user_id;type:uuid;not null;index" json:"game_score_user_id"`
	GameScoreGameID     uuid.UUID `gorm:"column:game_score_game_id;type:uuid;not null;index" json:"game_score_game_id"`
	GameScoreValue      int       `gorm:"column:game_score_value;not null" json:"game_score_value"`
	GameScoreRecordedAt time.Time `gorm:"column:game_score_recorded_at;autoCreateTime" json:"game_score_recorded_at"`
}

func (GameScoreModel) TableName() string {
	return "game_scores"
}
