// dto/game_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/catalog/content/model"
)

/* ========== REQUEST DTOs ========== */

type CreateGameRequest struct {
	GameName         string      `json:"game_name"          form:"game_name"          validate:"required,min=2,max=160"`
	GameDescription  *string     `json:"game_description"   form:"game_description"`
	GameURL          *string     `json:"game_url"           form:"game_url"           validate:"omitempty,url"`
	GameThumbnailURL *string     `json:"game_thumbnail_url" form:"game_thumbnail_url" validate:"omitempty,url"`
	SubjectIDs       []uuid.UUID `json:"subject_ids"        form:"subject_ids"`
	YearIDs          []uuid.UUID `json:"year_ids"           form:"year_ids"`
}

// UpdateGameRequest: nil tag list = leave that category untouched, empty
// list = clear it.
type UpdateGameRequest struct {
	GameName         *string      `json:"game_name"          form:"game_name"          validate:"omitempty,min=2,max=160"`
	GameDescription  *string      `json:"game_description"   form:"game_description"`
	GameURL          *string      `json:"game_url"           form:"game_url"           validate:"omitempty,url"`
	GameThumbnailURL *string      `json:"game_thumbnail_url" form:"game_thumbnail_url" validate:"omitempty,url"`
	SubjectIDs       *[]uuid.UUID `json:"subject_ids"        form:"subject_ids"`
	YearIDs          *[]uuid.UUID `json:"year_ids"           form:"year_ids"`
}

type ReplaceAssociationsRequest struct {
	TagIDs []uuid.UUID `json:"tag_ids" form:"tag_ids"`
}

/* ========== RESPONSE DTO ========== */

type GameResponse struct {
	GameID           uuid.UUID   `json:"game_id"`
	GameName         string      `json:"game_name"`
	GameDescription  *string     `json:"game_description,omitempty"`
	GameURL          *string     `json:"game_url,omitempty"`
	GameThumbnailURL *string     `json:"game_thumbnail_url,omitempty"`
	SubjectIDs       []uuid.UUID `json:"subject_ids"`
	YearIDs          []uuid.UUID `json:"year_ids"`
	GameCreatedAt    time.Time   `json:"game_created_at"`
	GameUpdatedAt    *time.Time  `json:"game_updated_at,omitempty"`
}

func NewGameResponse(m *model.GameModel, subjectIDs, yearIDs []uuid.UUID) *GameResponse {
	if m == nil {
		return nil
	}
	if subjectIDs == nil {
		subjectIDs = []uuid.UUID{}
	}
	if yearIDs == nil {
		yearIDs = []uuid.UUID{}
	}
	return &GameResponse{
		GameID:           m.GameID,
		GameName:         m.GameName,
		GameDescription:  m.GameDescription,
		GameURL:          m.GameURL,
		GameThumbnailURL: m.GameThumbnailURL,
		SubjectIDs:       subjectIDs,
		YearIDs:          yearIDs,
		GameCreatedAt:    m.GameCreatedAt,
		GameUpdatedAt:    m.GameUpdatedAt,
	}
}

func (r *CreateGameRequest) ToModel() *model.GameModel {
	return &model.GameModel{
		GameName:         strings.TrimSpace(r.GameName),
		GameDescription:  r.GameDescription,
		GameURL:          r.GameURL,
		GameThumbnailURL: r.GameThumbnailURL,
	}
}

func (r *UpdateGameRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.GameName != nil {
		patch["game_name"] = strings.TrimSpace(*r.GameName)
	}
	if r.GameDescription != nil {
		patch["game_description"] = *r.GameDescription
	}
	if r.GameURL != nil {
		patch["game_url"] = *r.GameURL
	}
	if r.GameThumbnailURL != nil {
		patch["game_thumbnail_url"] = *r.GameThumbnailURL
	}
	if len(patch) > 0 {
		patch["game_updated_at"] = time.Now()
	}
	return patch
}
