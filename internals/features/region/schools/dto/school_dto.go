// dto/school_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/region/schools/model"
)

/* ========== REQUEST DTOs ========== */

type CreateSchoolRequest struct {
	SchoolName   string    `json:"school_name"    form:"school_name"    validate:"required,min=2,max=160"`
	SchoolCityID uuid.UUID `json:"school_city_id" form:"school_city_id" validate:"required"`
}

type UpdateSchoolRequest struct {
	SchoolName   *string    `json:"school_name"    form:"school_name"    validate:"omitempty,min=2,max=160"`
	SchoolCityID *uuid.UUID `json:"school_city_id" form:"school_city_id"`
}

/* ========== RESPONSE DTO ========== */

// SchoolResponse carries the joined city columns the listing exposes.
type SchoolResponse struct {
	SchoolID        uuid.UUID  `json:"school_id"`
	SchoolName      string     `json:"school_name"`
	SchoolCityID    uuid.UUID  `json:"school_city_id"`
	CityName        *string    `json:"city_name,omitempty"`
	CityState       *string    `json:"city_state,omitempty"`
	SchoolCreatedAt time.Time  `json:"school_created_at"`
	SchoolUpdatedAt *time.Time `json:"school_updated_at,omitempty"`
}

func NewSchoolResponse(m *model.SchoolModel) *SchoolResponse {
	if m == nil {
		return nil
	}
	return &SchoolResponse{
		SchoolID:        m.SchoolID,
		SchoolName:      m.SchoolName,
		SchoolCityID:    m.SchoolCityID,
		SchoolCreatedAt: m.SchoolCreatedAt,
		SchoolUpdatedAt: m.SchoolUpdatedAt,
	}
}

func (r *CreateSchoolRequest) ToModel() *model.SchoolModel {
	return &model.SchoolModel{
		SchoolName:   strings.TrimSpace(r.SchoolName),
		SchoolCityID: r.SchoolCityID,
	}
}

func (r *UpdateSchoolRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.SchoolName != nil {
		patch["school_name"] = strings.TrimSpace(*r.SchoolName)
	}
	if r.SchoolCityID != nil {
		patch["school_city_id"] = *r.SchoolCityID
	}
	if len(patch) > 0 {
		patch["school_updated_at"] = time.Now()
	}
	return patch
}
