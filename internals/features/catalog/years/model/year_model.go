// models/year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// YearModel represents the `years` grade-year vocabulary (e.g. "6º ano").
type YearModel struct {
	YearID   uuid.UUID `json:"year_id" gorm:"column:year_id;type:uuid;default:gen_random_uuid();primaryKey"`
	YearName string    `json:"year_name" gorm:"column:year_name;type:varchar(120);unique;not null"`

	YearCreatedAt time.Time `json:"year_created_at" gorm:"column:year_created_at;not null;autoCreateTime"`
}

func (YearModel) TableName() string {
	return "years"
}
