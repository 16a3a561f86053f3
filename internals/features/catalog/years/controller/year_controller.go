package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/catalog/years/dto"
	"eduplay_backend/internals/features/catalog/years/model"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type YearController struct {
	DB *gorm.DB
}

func NewYearController(db *gorm.DB) *YearController {
	return &YearController{DB: db}
}

var validate = validator.New()

// POST /years
func (ctl *YearController) CreateYear(c *fiber.Ctx) error {
	var req dto.YearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"", "a year with this name already exists"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "year created", dto.NewYearResponse(m))
}

// GET /years
func (ctl *YearController) ListYears(c *fiber.Ctx) error {
	var rows []model.YearModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("year_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list years")
	}
	out := make([]*dto.YearResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewYearResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

// GET /years/:id
func (ctl *YearController) GetYearByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.YearModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "year not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch year")
	}
	return helper.Success(c, "ok", dto.NewYearResponse(&m))
}

// PUT /years/:id
func (ctl *YearController) UpdateYear(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.YearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.YearModel{}).
		Where("year_id = ?", id).
		Update("year_name", req.ToModel().YearName)
	if res.Error != nil {
		return helper.HandleError(c, apperr.Translate(res.Error,
			"", "a year with this name already exists"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "year not found")
	}

	var m model.YearModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "year_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch year")
	}
	return helper.Success(c, "year updated", dto.NewYearResponse(&m))
}

// DELETE /years/:id
func (ctl *YearController) DeleteYear(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.YearModel{}, "year_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the year because games or videos still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "year not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /years/:id/games
func (ctl *YearController) GetGamesByYear(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var rows []map[string]interface{}
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("games AS g").
		Joins("JOIN game_years AS gy ON gy.game_year_game_id = g.game_id").
		Where("gy.game_year_year_id = ?", id).
		Select("g.*").
		Order("g.game_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list games for year")
	}
	return helper.Success(c, "ok", rows)
}
