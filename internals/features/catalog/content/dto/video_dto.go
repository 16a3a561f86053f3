// dto/video_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/catalog/content/model"
)

/* ========== REQUEST DTOs ========== */

type CreateVideoRequest struct {
	VideoName            string      `json:"video_name"             form:"video_name"             validate:"required,min=2,max=160"`
	VideoDescription     *string     `json:"video_description"      form:"video_description"`
	VideoURL             string      `json:"video_url"              form:"video_url"              validate:"required,url"`
	VideoThumbnailURL    *string     `json:"video_thumbnail_url"    form:"video_thumbnail_url"    validate:"omitempty,url"`
	VideoDurationSeconds *int        `json:"video_duration_seconds" form:"video_duration_seconds" validate:"omitempty,min=0"`
	SubjectIDs           []uuid.UUID `json:"subject_ids"            form:"subject_ids"`
	YearIDs              []uuid.UUID `json:"year_ids"               form:"year_ids"`
}

type UpdateVideoRequest struct {
	VideoName            *string      `json:"video_name"             form:"video_name"             validate:"omitempty,min=2,max=160"`
	VideoDescription     *string      `json:"video_description"      form:"video_description"`
	VideoURL             *string      `json:"video_url"              form:"video_url"              validate:"omitempty,url"`
	VideoThumbnailURL    *string      `json:"video_thumbnail_url"    form:"video_thumbnail_url"    validate:"omitempty,url"`
	VideoDurationSeconds *int         `json:"video_duration_seconds" form:"video_duration_seconds" validate:"omitempty,min=0"`
	SubjectIDs           *[]uuid.UUID `json:"subject_ids"            form:"subject_ids"`
	YearIDs              *[]uuid.UUID `json:"year_ids"               form:"year_ids"`
}

/* ========== RESPONSE DTO ========== */

type VideoResponse struct {
	VideoID              uuid.UUID   `json:"video_id"`
	VideoName            string      `json:"video_name"`
	VideoDescription     *string     `json:"video_description,omitempty"`
	VideoURL             string      `json:"video_url"`
	VideoThumbnailURL    *string     `json:"video_thumbnail_url,omitempty"`
	VideoDurationSeconds *int        `json:"video_duration_seconds,omitempty"`
	SubjectIDs           []uuid.UUID `json:"subject_ids"`
	YearIDs              []uuid.UUID `json:"year_ids"`
	VideoCreatedAt       time.Time   `json:"video_created_at"`
	VideoUpdatedAt       *time.Time  `json:"video_updated_at,omitempty"`
}

func NewVideoResponse(m *model.VideoModel, subjectIDs, yearIDs []uuid.UUID) *VideoResponse {
	if m == nil {
		return nil
	}
	if subjectIDs == nil {
		subjectIDs = []uuid.UUID{}
	}
	if yearIDs == nil {
		yearIDs = []uuid.UUID{}
	}
	return &VideoResponse{
		VideoID:              m.VideoID,
		VideoName:            m.VideoName,
		VideoDescription:     m.VideoDescription,
		VideoURL:             m.VideoURL,
		VideoThumbnailURL:    m.VideoThumbnailURL,
		VideoDurationSeconds: m.VideoDurationSeconds,
		SubjectIDs:           subjectIDs,
		YearIDs:              yearIDs,
		VideoCreatedAt:       m.VideoCreatedAt,
		VideoUpdatedAt:       m.VideoUpdatedAt,
	}
}

func (r *CreateVideoRequest) ToModel() *model.VideoModel {
	return &model.VideoModel{
		VideoName:            strings.TrimSpace(r.VideoName),
		VideoDescription:     r.VideoDescription,
		VideoURL:             r.VideoURL,
		VideoThumbnailURL:    r.VideoThumbnailURL,
		VideoDurationSeconds: r.VideoDurationSeconds,
	}
}

func (r *UpdateVideoRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.VideoName != nil {
		patch["video_name"] = strings.TrimSpace(*r.VideoName)
	}
	if r.VideoDescription != nil {
		patch["video_description"] = *r.VideoDescription
	}
	if r.VideoURL != nil {
		patch["video_url"] = *r.VideoURL
	}
	if r.VideoThumbnailURL != nil {
		patch["video_thumbnail_url"] = *r.VideoThumbnailURL
	}
	if r.VideoDurationSeconds != nil {
		patch["video_duration_seconds"] = *r.VideoDurationSeconds
	}
	if len(patch) > 0 {
		patch["video_updated_at"] = time.Now()
	}
	return patch
}
