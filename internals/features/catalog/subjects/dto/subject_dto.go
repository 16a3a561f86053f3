// dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/catalog/subjects/model"
)

type SubjectRequest struct {
	SubjectName string `json:"subject_name" form:"subject_name" validate:"required,min=2,max=120"`
}

type SubjectResponse struct {
	SubjectID        uuid.UUID `json:"subject_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func NewSubjectResponse(m *model.SubjectModel) *SubjectResponse {
	if m == nil {
		return nil
	}
	return &SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectName:      m.SubjectName,
		SubjectCreatedAt: m.SubjectCreatedAt,
	}
}

func (r *SubjectRequest) ToModel() *model.SubjectModel {
	return &model.SubjectModel{SubjectName: strings.TrimSpace(r.SubjectName)}
}
