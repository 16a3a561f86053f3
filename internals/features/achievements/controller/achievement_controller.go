package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/achievements/dto"
	"eduplay_backend/internals/features/achievements/model"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type AchievementController struct {
	DB *gorm.DB
}

func NewAchievementController(db *gorm.DB) *AchievementController {
	return &AchievementController{DB: db}
}

var validate = validator.New()

// POST /achievements
func (ctl *AchievementController) CreateAchievement(c *fiber.Ctx) error {
	var req dto.CreateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"referenced record not found", "an achievement with this name already exists"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "achievement created", m)
}

// GET /achievements
func (ctl *AchievementController) ListAchievements(c *fiber.Ctx) error {
	var rows []model.AchievementModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("achievement_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list achievements")
	}
	return helper.Success(c, "ok", rows)
}

// GET /achievements/:id
func (ctl *AchievementController) GetAchievementByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.AchievementModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "achievement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "achievement not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch achievement")
	}
	return helper.Success(c, "ok", m)
}

// PUT /achievements/:id
func (ctl *AchievementController) UpdateAchievement(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	patch := req.Patch()
	if len(patch) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "no fields to update")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.AchievementModel{}).
		Where("achievement_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return helper.HandleError(c, apperr.Translate(res.Error,
			"referenced record not found", "an achievement with this name already exists"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "achievement not found")
	}
	return ctl.GetAchievementByID(c)
}

// DELETE /achievements/:id
func (ctl *AchievementController) DeleteAchievement(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.AchievementModel{}, "achievement_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the achievement because grants still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "achievement not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

/* ================= Grants ================= */

// POST /users/:userId/achievements
func (ctl *AchievementController) GrantAchievement(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return err
	}
	var req dto.GrantAchievementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &model.UserAchievementModel{
		UserAchievementUserID:        userID,
		UserAchievementAchievementID: req.AchievementID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"user or achievement not found", "achievement already granted to this user"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "achievement granted", m)
}

// GET /users/:userId/achievements
func (ctl *AchievementController) ListUserAchievements(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return err
	}
	var rows []dto.GrantedAchievementRow
	err = ctl.DB.WithContext(c.UserContext()).
		Table("user_achievements AS ua").
		Select("a.achievement_id, a.achievement_name, a.achievement_description, a.achievement_icon_url, ua.user_achievement_granted_at").
		Joins("JOIN achievements AS a ON a.achievement_id = ua.user_achievement_achievement_id").
		Where("ua.user_achievement_user_id = ?", userID).
		Order("ua.user_achievement_granted_at DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list user achievements")
	}
	return helper.Success(c, "ok", rows)
}

// DELETE /users/:userId/achievements/:achievementId
func (ctl *AchievementController) RevokeAchievement(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return err
	}
	achievementID, err := helper.ParseUUIDParam(c, "achievementId")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("user_achievement_user_id = ? AND user_achievement_achievement_id = ?", userID, achievementID).
		Delete(&model.UserAchievementModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to revoke achievement")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "grant not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
