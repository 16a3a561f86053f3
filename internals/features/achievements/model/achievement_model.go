// models/achievement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AchievementModel struct {
	AchievementID          uuid.UUID `json:"achievement_id" gorm:"column:achievement_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AchievementName        string    `json:"achievement_name" gorm:"column:achievement_name;type:varchar(120);unique;not null"`
	AchievementDescription *string   `json:"achievement_description,omitempty" gorm:"column:achievement_description;type:text"`
	AchievementIconURL     *string   `json:"achievement_icon_url,omitempty" gorm:"column:achievement_icon_url;type:text"`

	AchievementCreatedAt time.Time  `json:"achievement_created_at" gorm:"column:achievement_created_at;not null;autoCreateTime"`
	AchievementUpdatedAt *time.Time `json:"achievement_updated_at,omitempty" gorm:"column:achievement_updated_at"`
}

func (AchievementModel) TableName() string {
	return "achievements"
}

// UserAchievementModel is a pure join row; the pair is the primary key so a
// duplicate grant surfaces as a unique violation.
type UserAchievementModel struct {
	UserAchievementUserID        uuid.UUID `json:"user_achievement_user_id" gorm:"column:user_achievement_user_id;type:uuid;primaryKey"`
	UserAchievementAchievementID uuid.UUID `json:"user_achievement_achievement_id" gorm:"column:user_achievement_achievement_id;type:uuid;primaryKey"`
	UserAchievementGrantedAt     time.Time `json:"user_achievement_granted_at" gorm:"column:user_achievement_granted_at;not null;autoCreateTime"`
}

func (UserAchievementModel) TableName() string {
	return "user_achievements"
}
