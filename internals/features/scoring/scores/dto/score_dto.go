// dto/score_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/scoring/scores/model"
)

/* ========== REQUEST DTOs ========== */

// Score is a pointer so an explicit 0 survives validation.
type SubmitScoreRequest struct {
	UserID uuid.UUID `json:"user_id" form:"user_id" validate:"required"`
	GameID uuid.UUID `json:"game_id" form:"game_id" validate:"required"`
	Score  *int      `json:"score"   form:"score"   validate:"required,min=0"`
}

type SubmitOwnScoreRequest struct {
	GameID uuid.UUID `json:"game_id" form:"game_id" validate:"required"`
	Score  *int      `json:"score"   form:"score"   validate:"required,min=0"`
}

type AmendScoreRequest struct {
	Score *int `json:"score" form:"score" validate:"required,min=0"`
}

/* ========== RESPONSE DTOs ========== */

type ScoreResponse struct {
	GameScoreID         uuid.UUID `json:"game_score_id"`
	GameScoreUserID     uuid.UUID `json:"game_score_user_id"`
	GameScoreGameID     uuid.UUID `json:"game_score_game_id"`
	GameScoreValue      int       `json:"game_score_value"`
	GameScoreRecordedAt time.Time `json:"game_score_recorded_at"`
}

// ClassroomScoreRow carries the player columns a classroom listing joins in.
type ClassroomScoreRow struct {
	GameScoreID         uuid.UUID `gorm:"column:game_score_id"          json:"game_score_id"`
	GameScoreUserID     uuid.UUID `gorm:"column:game_score_user_id"     json:"game_score_user_id"`
	GameScoreGameID     uuid.UUID `gorm:"column:game_score_game_id"     json:"game_score_game_id"`
	GameScoreValue      int       `gorm:"column:game_score_value"       json:"game_score_value"`
	GameScoreRecordedAt time.Time `gorm:"column:game_score_recorded_at" json:"game_score_recorded_at"`
	UserName            string    `gorm:"column:user_name"              json:"user_name"`
	UserUsername        string    `gorm:"column:user_username"          json:"user_username"`
}

func NewScoreResponse(m *model.GameScoreModel) *ScoreResponse {
	if m == nil {
		return nil
	}
	return &ScoreResponse{
		GameScoreID:         m.GameScoreID,
		GameScoreUserID:     m.GameScoreUserID,
		GameScoreGameID:     m.GameScoreGameID,
		GameScoreValue:      m.GameScoreValue,
		GameScoreRecordedAt: m.GameScoreRecordedAt,
	}
}

func (r *SubmitScoreRequest) ToModel() *model.GameScoreModel {
	return &model.GameScoreModel{
		GameScoreUserID: r.UserID,
		GameScoreGameID: r.GameID,
		GameScoreValue:  *r.Score,
	}
}
