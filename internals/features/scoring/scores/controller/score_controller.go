package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/scoring/scores/dto"
	"eduplay_backend/internals/features/scoring/scores/model"
	helper "eduplay_backend/internals/helpers"
	authmw "eduplay_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type ScoreController struct {
	DB *gorm.DB
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db}
}

var validate = validator.New()

// POST /scores
func (ctl *ScoreController) SubmitScore(c *fiber.Ctx) error {
	var req dto.SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"user or game not found", "duplicate score entry"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "score recorded", dto.NewScoreResponse(m))
}

// POST /scores/mine
// Player identity comes from the token, not the body.
func (ctl *ScoreController) SubmitMyScore(c *fiber.Ctx) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req dto.SubmitOwnScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &model.GameScoreModel{
		GameScoreUserID: userID,
		GameScoreGameID: req.GameID,
		GameScoreValue:  *req.Score,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"user or game not found", "duplicate score entry"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "score recorded", dto.NewScoreResponse(m))
}

// PUT /scores/:id
// Amending bumps recorded_at so the row reflects when it was last touched.
func (ctl *ScoreController) AmendScore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.AmendScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.GameScoreModel{}).
		Where("game_score_id = ?", id).
		Updates(map[string]interface{}{
			"game_score_value":       *req.Score,
			"game_score_recorded_at": time.Now(),
		})
	if res.Error != nil {
		return helper.HandleError(c, apperr.Tx(res.Error))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "score not found")
	}

	var m model.GameScoreModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "game_score_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch score")
	}
	return helper.Success(c, "score updated", dto.NewScoreResponse(&m))
}

// DELETE /scores/:id
func (ctl *ScoreController) RemoveScore(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.GameScoreModel{}, "game_score_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete score")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "score not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /scores/user/:userId
func (ctl *ScoreController) ListScoresByUser(c *fiber.Ctx) error {
	userID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return err
	}
	return ctl.listForUser(c, userID)
}

// GET /scores/me
func (ctl *ScoreController) ListMyScores(c *fiber.Ctx) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return ctl.listForUser(c, userID)
}

func (ctl *ScoreController) listForUser(c *fiber.Ctx, userID interface{}) error {
	var rows []model.GameScoreModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("game_score_user_id = ?", userID).
		Order("game_score_value DESC, game_score_recorded_at DESC").
		Find(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list scores")
	}
	return helper.Success(c, "ok", rows)
}

// GET /scores/classroom/:classroomId
func (ctl *ScoreController) ListScoresByClassroom(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUUIDParam(c, "classroomId")
	if err != nil {
		return err
	}
	var rows []dto.ClassroomScoreRow
	err = ctl.DB.WithContext(c.UserContext()).
		Table("game_scores AS gs").
		Select("gs.game_score_id, gs.game_score_user_id, gs.game_score_game_id, gs.game_score_value, gs.game_score_recorded_at, u.user_name, u.user_username").
		Joins("JOIN users AS u ON u.user_id = gs.game_score_user_id").
		Where("u.user_classroom_id = ? AND u.user_is_active = TRUE", classroomID).
		Order("gs.game_score_value DESC, gs.game_score_recorded_at DESC").
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list classroom scores")
	}
	return helper.Success(c, "ok", rows)
}
