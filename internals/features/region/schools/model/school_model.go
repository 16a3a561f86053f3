// models/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolModel represents the `schools` table.
type SchoolModel struct {
	SchoolID     uuid.UUID `json:"school_id" gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SchoolName   string    `json:"school_name" gorm:"column:school_name;type:varchar(160);not null"`
	SchoolCityID uuid.UUID `json:"school_city_id" gorm:"column:school_city_id;type:uuid;not null"` // FK -> cities(city_id)

	SchoolCreatedAt time.Time  `json:"school_created_at" gorm:"column:school_created_at;not null;autoCreateTime"`
	SchoolUpdatedAt *time.Time `json:"school_updated_at,omitempty" gorm:"column:school_updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
