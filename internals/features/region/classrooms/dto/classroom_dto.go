// dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/region/classrooms/model"
)

/* ========== REQUEST DTOs ========== */

type CreateClassroomRequest struct {
	ClassroomName     string    `json:"classroom_name"      form:"classroom_name"      validate:"required,min=1,max=120"`
	ClassroomSchoolID uuid.UUID `json:"classroom_school_id" form:"classroom_school_id" validate:"required"`
}

type UpdateClassroomRequest struct {
	ClassroomName     *string    `json:"classroom_name"      form:"classroom_name"      validate:"omitempty,min=1,max=120"`
	ClassroomSchoolID *uuid.UUID `json:"classroom_school_id" form:"classroom_school_id"`
}

/* ========== RESPONSE DTOs ========== */

type ClassroomResponse struct {
	ClassroomID        uuid.UUID  `json:"classroom_id"`
	ClassroomName      string     `json:"classroom_name"`
	ClassroomSchoolID  uuid.UUID  `json:"classroom_school_id"`
	SchoolName         *string    `json:"school_name,omitempty"`
	ClassroomCreatedAt time.Time  `json:"classroom_created_at"`
	ClassroomUpdatedAt *time.Time `json:"classroom_updated_at,omitempty"`
}

// RosterEntry is one student in the classroom listing.
type RosterEntry struct {
	UserID   uuid.UUID `json:"user_id" gorm:"column:user_id"`
	UserName string    `json:"user_name" gorm:"column:user_name"`
	Username string    `json:"username" gorm:"column:username"`
}

func NewClassroomResponse(m *model.ClassroomModel) *ClassroomResponse {
	if m == nil {
		return nil
	}
	return &ClassroomResponse{
		ClassroomID:        m.ClassroomID,
		ClassroomName:      m.ClassroomName,
		ClassroomSchoolID:  m.ClassroomSchoolID,
		ClassroomCreatedAt: m.ClassroomCreatedAt,
		ClassroomUpdatedAt: m.ClassroomUpdatedAt,
	}
}

func (r *CreateClassroomRequest) ToModel() *model.ClassroomModel {
	return &model.ClassroomModel{
		ClassroomName:     strings.TrimSpace(r.ClassroomName),
		ClassroomSchoolID: r.ClassroomSchoolID,
	}
}

func (r *UpdateClassroomRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.ClassroomName != nil {
		patch["classroom_name"] = strings.TrimSpace(*r.ClassroomName)
	}
	if r.ClassroomSchoolID != nil {
		patch["classroom_school_id"] = *r.ClassroomSchoolID
	}
	if len(patch) > 0 {
		patch["classroom_updated_at"] = time.Now()
	}
	return patch
}
