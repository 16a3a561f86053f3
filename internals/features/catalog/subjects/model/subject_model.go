// models/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectModel represents the `subjects` tag vocabulary.
type SubjectModel struct {
	SubjectID   uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SubjectName string    `json:"subject_name" gorm:"column:subject_name;type:varchar(120);unique;not null"`

	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
