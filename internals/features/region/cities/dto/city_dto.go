// dto/city_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/region/cities/model"
)

/* ========== REQUEST DTOs ========== */

type CreateCityRequest struct {
	CityName  string `json:"city_name"  form:"city_name"  validate:"required,min=2,max=120"`
	CityState string `json:"city_state" form:"city_state" validate:"required,len=2"`
}

type UpdateCityRequest struct {
	CityName  *string `json:"city_name"  form:"city_name"  validate:"omitempty,min=2,max=120"`
	CityState *string `json:"city_state" form:"city_state" validate:"omitempty,len=2"`
}

/* ========== RESPONSE DTO ========== */

type CityResponse struct {
	CityID        uuid.UUID  `json:"city_id"`
	CityName      string     `json:"city_name"`
	CityState     string     `json:"city_state"`
	CityCreatedAt time.Time  `json:"city_created_at"`
	CityUpdatedAt *time.Time `json:"city_updated_at,omitempty"`
}

func NewCityResponse(m *model.CityModel) *CityResponse {
	if m == nil {
		return nil
	}
	return &CityResponse{
		CityID:        m.CityID,
		CityName:      m.CityName,
		CityState:     m.CityState,
		CityCreatedAt: m.CityCreatedAt,
		CityUpdatedAt: m.CityUpdatedAt,
	}
}

func (r *CreateCityRequest) ToModel() *model.CityModel {
	return &model.CityModel{
		CityName:  strings.TrimSpace(r.CityName),
		CityState: strings.ToUpper(strings.TrimSpace(r.CityState)),
	}
}

// Patch builds the fixed, reviewable field list for partial updates.
func (r *UpdateCityRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.CityName != nil {
		patch["city_name"] = strings.TrimSpace(*r.CityName)
	}
	if r.CityState != nil {
		patch["city_state"] = strings.ToUpper(strings.TrimSpace(*r.CityState))
	}
	if len(patch) > 0 {
		patch["city_updated_at"] = time.Now()
	}
	return patch
}
