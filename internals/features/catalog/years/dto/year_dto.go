// dto/year_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/catalog/years/model"
)

type YearRequest struct {
	YearName string `json:"year_name" form:"year_name" validate:"required,min=1,max=120"`
}

type YearResponse struct {
	YearID        uuid.UUID `json:"year_id"`
	YearName      string    `json:"year_name"`
	YearCreatedAt time.Time `json:"year_created_at"`
}

func NewYearResponse(m *model.YearModel) *YearResponse {
	if m == nil {
		return nil
	}
	return &YearResponse{
		YearID:        m.YearID,
		YearName:      m.YearName,
		YearCreatedAt: m.YearCreatedAt,
	}
}

func (r *YearRequest) ToModel() *model.YearModel {
	return &model.YearModel{YearName: strings.TrimSpace(r.YearName)}
}
