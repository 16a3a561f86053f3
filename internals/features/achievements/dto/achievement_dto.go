// dto/achievement_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/achievements/model"
)

/* ========== REQUEST DTOs ========== */

type CreateAchievementRequest struct {
	AchievementName        string  `json:"achievement_name"        form:"achievement_name"        validate:"required,min=2,max=120"`
	AchievementDescription *string `json:"achievement_description" form:"achievement_description"`
	AchievementIconURL     *string `json:"achievement_icon_url"    form:"achievement_icon_url"    validate:"omitempty,url"`
}

type UpdateAchievementRequest struct {
	AchievementName        *string `json:"achievement_name"        form:"achievement_name"        validate:"omitempty,min=2,max=120"`
	AchievementDescription *string `json:"achievement_description" form:"achievement_description"`
	AchievementIconURL     *string `json:"achievement_icon_url"    form:"achievement_icon_url"    validate:"omitempty,url"`
}

type GrantAchievementRequest struct {
	AchievementID uuid.UUID `json:"achievement_id" form:"achievement_id" validate:"required"`
}

/* ========== RESPONSE DTO ========== */

// GrantedAchievementRow joins the grant with the achievement it names.
type GrantedAchievementRow struct {
	AchievementID          uuid.UUID `gorm:"column:achievement_id"          json:"achievement_id"`
	AchievementName        string    `gorm:"column:achievement_name"        json:"achievement_name"`
	AchievementDescription *string   `gorm:"column:achievement_description" json:"achievement_description,omitempty"`
	AchievementIconURL     *string   `gorm:"column:achievement_icon_url"    json:"achievement_icon_url,omitempty"`
	GrantedAt              time.Time `gorm:"column:user_achievement_granted_at" json:"granted_at"`
}

func (r *CreateAchievementRequest) ToModel() *model.AchievementModel {
	return &model.AchievementModel{
		AchievementName:        strings.TrimSpace(r.AchievementName),
		AchievementDescription: r.AchievementDescription,
		AchievementIconURL:     r.AchievementIconURL,
	}
}

func (r *UpdateAchievementRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.AchievementName != nil {
		patch["achievement_name"] = strings.TrimSpace(*r.AchievementName)
	}
	if r.AchievementDescription != nil {
		patch["achievement_description"] = *r.AchievementDescription
	}
	if r.AchievementIconURL != nil {
		patch["achievement_icon_url"] = *r.AchievementIconURL
	}
	if len(patch) > 0 {
		patch["achievement_updated_at"] = time.Now()
	}
	return patch
}
