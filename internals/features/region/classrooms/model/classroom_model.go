// models/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassroomModel represents the `classrooms` table.
type ClassroomModel struct {
	ClassroomID       uuid.UUID `json:"classroom_id" gorm:"column:classroom_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassroomName     string    `json:"classroom_name" gorm:"column:classroom_name;type:varchar(120);not null"`
	ClassroomSchoolID uuid.UUID `json:"classroom_school_id" gorm:"column:classroom_school_id;type:uuid;not null"` // FK -> schools(school_id)

	ClassroomCreatedAt time.Time  `json:"classroom_created_at" gorm:"column:classroom_created_at;not null;autoCreateTime"`
	ClassroomUpdatedAt *time.Time `json:"classroom_updated_at,omitempty" gorm:"column:classroom_updated_at"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}
