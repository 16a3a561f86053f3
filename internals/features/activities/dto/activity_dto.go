// dto/activity_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/activities/model"
)

/* ========== REQUEST DTOs ========== */

type CreateActivityRequest struct {
	GameID      uuid.UUID  `json:"game_id"      form:"game_id"      validate:"required"`
	ClassroomID uuid.UUID  `json:"classroom_id" form:"classroom_id" validate:"required"`
	StartsAt    time.Time  `json:"starts_at"    form:"starts_at"    validate:"required"`
	EndsAt      *time.Time `json:"ends_at"      form:"ends_at"`
}

type UpdateActivityStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=scheduled active closed"`
}

func (r *CreateActivityRequest) ToModel(teacherID uuid.UUID) *model.ActivityModel {
	return &model.ActivityModel{
		ActivityGameID:      r.GameID,
		ActivityClassroomID: r.ClassroomID,
		ActivityTeacherID:   teacherID,
		ActivityStartsAt:    r.StartsAt,
		ActivityEndsAt:      r.EndsAt,
	}
}
