// models/video_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel represents the `videos` table.
type VideoModel struct {
	VideoID              uuid.UUID `json:"video_id" gorm:"column:video_id;type:uuid;default:gen_random_uuid();primaryKey"`
	VideoName            string    `json:"video_name" gorm:"column:video_name;type:varchar(160);not null"`
	VideoDescription     *string   `json:"video_description,omitempty" gorm:"column:video_description;type:text"`
	VideoURL             string    `json:"video_url" gorm:"column:video_url;type:text;not null"`
	VideoThumbnailURL    *string   `json:"video_thumbnail_url,omitempty" gorm:"column:video_thumbnail_url;type:text"`
	VideoDurationSeconds *int      `json:"video_duration_seconds,omitempty" gorm:"column:video_duration_seconds"`

	VideoCreatedAt time.Time  `json:"video_created_at" gorm:"column:video_created_at;not null;autoCreateTime"`
	VideoUpdatedAt *time.Time `json:"video_updated_at,omitempty" gorm:"column:video_updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}
