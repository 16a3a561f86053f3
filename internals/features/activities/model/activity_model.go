// models/activity_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityModel struct {
	ActivityID          uuid.UUID `json:"activity_id" gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ActivityGameID      uuid.UUID `json:"activity_game_id" gorm:"column:activity_game_id;type:uuid;not null"`           // FK -> games(game_id)
	ActivityClassroomID uuid.UUID `json:"activity_classroom_id" gorm:"column:activity_classroom_id;type:uuid;not null"` // FK -> classrooms(classroom_id)
	ActivityTeacherID   uuid.UUID `json:"activity_teacher_id" gorm:"column:activity_teacher_id;type:uuid;not null"`     // FK -> users(user_id)

	ActivityStartsAt time.Time  `json:"activity_starts_at" gorm:"column:activity_starts_at;not null"`
	ActivityEndsAt   *time.Time `json:"activity_ends_at,omitempty" gorm:"column:activity_ends_at"`
	ActivityStatus   string     `json:"activity_status" gorm:"column:activity_status;type:varchar(20);not null;default:'scheduled'"`

	ActivityCreatedAt time.Time `json:"activity_created_at" gorm:"column:activity_created_at;not null;autoCreateTime"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
