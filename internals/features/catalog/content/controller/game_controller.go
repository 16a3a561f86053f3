package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/catalog/content/dto"
	"eduplay_backend/internals/features/catalog/content/model"
	"eduplay_backend/internals/features/catalog/content/service"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type GameController struct {
	DB *gorm.DB
}

func NewGameController(db *gorm.DB) *GameController {
	return &GameController{DB: db}
}

var validate = validator.New()

// POST /games
// The row and both tag sets land in one transaction; a failed tag insert
// rolls the game itself back.
func (ctl *GameController) CreateGame(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := service.CreateGameWithTags(ctl.DB.WithContext(c.UserContext()), m, req.SubjectIDs, req.YearIDs); err != nil {
		return helper.HandleError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "game created",
		dto.NewGameResponse(m, req.SubjectIDs, req.YearIDs))
}

// GET /games?subject_id=...&year_id=...
func (ctl *GameController) ListGames(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Table("games AS g").
		Select("DISTINCT g.*").
		Order("g.game_name ASC")
	if raw := c.Query("subject_id"); raw != "" {
		q = q.Joins("JOIN game_subjects AS gs ON gs.game_subject_game_id = g.game_id").
			Where("gs.game_subject_subject_id = ?", raw)
	}
	if raw := c.Query("year_id"); raw != "" {
		q = q.Where("g.game_id IN (SELECT game_year_game_id FROM game_years WHERE game_year_year_id = ?)", raw)
	}

	var rows []model.GameModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list games")
	}
	return helper.Success(c, "ok", rows)
}

// GET /games/:id
func (ctl *GameController) GetGameByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.GameModel
	if err := db.First(&m, "game_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "game not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch game")
	}

	subjectIDs, err := service.AssociationIDs(db, service.ContentGame, id, service.AssociationSubject)
	if err != nil {
		return helper.HandleError(c, err)
	}
	yearIDs, err := service.AssociationIDs(db, service.ContentGame, id, service.AssociationYear)
	if err != nil {
		return helper.HandleError(c, err)
	}
	return helper.Success(c, "ok", dto.NewGameResponse(&m, subjectIDs, yearIDs))
}

// PUT /games/:id
func (ctl *GameController) UpdateGame(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	patch := req.Patch()
	if len(patch) == 0 && req.SubjectIDs == nil && req.YearIDs == nil {
		return helper.Error(c, fiber.StatusBadRequest, "no fields to update")
	}

	db := ctl.DB.WithContext(c.UserContext())
	if err := service.UpdateGameWithTags(db, id, patch, req.SubjectIDs, req.YearIDs); err != nil {
		return helper.HandleError(c, err)
	}
	return ctl.GetGameByID(c)
}

// PUT /games/:id/:tagType  (tagType: subjects|years)
// Atomic wholesale replacement of one tag category.
func (ctl *GameController) ReplaceGameTags(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	typ, terr := service.ParseAssociationType(c.Params("tagType"))
	if terr != nil {
		return helper.HandleError(c, terr)
	}
	var req dto.ReplaceAssociationsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}

	db := ctl.DB.WithContext(c.UserContext())
	if err := service.ReplaceContentAssociations(db, service.ContentGame, id, typ, req.TagIDs); err != nil {
		return helper.HandleError(c, err)
	}
	return helper.Success(c, "associations replaced", fiber.Map{
		"game_id": id,
		"type":    typ,
		"tag_ids": req.TagIDs,
	})
}

// DELETE /games/:id
func (ctl *GameController) DeleteGame(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.GameModel{}, "game_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the game because scores still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "game not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
