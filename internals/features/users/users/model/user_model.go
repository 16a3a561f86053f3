// models/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel represents the `users` table. Credentials are owned by the
// external auth service; this table carries profile and scoping fields only.
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName     string    `json:"user_name" gorm:"column:user_name;type:varchar(160);not null"`
	UserUsername string    `json:"user_username" gorm:"column:user_username;type:varchar(80);unique;not null"`
	UserRole     string    `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'student'"`

	UserSchoolID    *uuid.UUID `json:"user_school_id,omitempty" gorm:"column:user_school_id;type:uuid"`       // FK -> schools(school_id)
	UserClassroomID *uuid.UUID `json:"user_classroom_id,omitempty" gorm:"column:user_classroom_id;type:uuid"` // FK -> classrooms(classroom_id)

	// denormalized self-reported location, kept from the original schema;
	// leaderboard scoping always goes through the school join instead
	UserEnrollment *string `json:"user_enrollment,omitempty" gorm:"column:user_enrollment;type:varchar(40)"`
	UserYear       *string `json:"user_year,omitempty" gorm:"column:user_year;type:varchar(40)"`
	UserState      *string `json:"user_state,omitempty" gorm:"column:user_state;type:varchar(2)"`
	UserCity       *string `json:"user_city,omitempty" gorm:"column:user_city;type:varchar(120)"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time  `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty" gorm:"column:user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
