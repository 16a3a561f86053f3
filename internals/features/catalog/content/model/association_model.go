// models/association_model.go
package model

import (
	"github.com/google/uuid"
)

// Join tables between content entities and their classification tags. Each
// pair is unique; the whole set for one (content, tag category) is always
// replaced wholesale, never patched row by row.

type GameSubjectModel struct {
	GameSubjectGameID    uuid.UUID `json:"game_subject_game_id" gorm:"column:game_subject_game_id;type:uuid;primaryKey"`
	GameSubjectSubjectID uuid.UUID `json:"game_subject_subject_id" gorm:"column:game_subject_subject_id;type:uuid;primaryKey"`
}

func (GameSubjectModel) TableName() string { return "game_subjects" }

type GameYearModel struct {
	GameYearGameID uuid.UUID `json:"game_year_game_id" gorm:"column:game_year_game_id;type:uuid;primaryKey"`
	GameYearYearID uuid.UUID `json:"game_year_year_id" gorm:"column:game_year_year_id;type:uuid;primaryKey"`
}

func (GameYearModel) TableName() string { return "game_years" }

type VideoSubjectModel struct {
	VideoSubjectVideoID   uuid.UUID `json:"video_subject_video_id" gorm:"column:video_subject_video_id;type:uuid;primaryKey"`
	VideoSubjectSubjectID uuid.UUID `json:"video_subject_subject_id" gorm:"column:video_subject_subject_id;type:uuid;primaryKey"`
}

func (VideoSubjectModel) TableName() string { return "video_subjects" }

type VideoYearModel struct {
	VideoYearVideoID uuid.UUID `json:"video_year_video_id" gorm:"column:video_year_video_id;type:uuid;primaryKey"`
	VideoYearYearID  uuid.UUID `json:"video_year_year_id" gorm:"column:video_year_year_id;type:uuid;primaryKey"`
}

func (VideoYearModel) TableName() string { return "video_years" }
