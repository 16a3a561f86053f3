package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/region/cities/dto"
	"eduplay_backend/internals/features/region/cities/model"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type CityController struct {
	DB *gorm.DB
}

func NewCityController(db *gorm.DB) *CityController {
	return &CityController{DB: db}
}

var validate = validator.New()

// POST /cities
func (ctl *CityController) CreateCity(c *fiber.Ctx) error {
	var req dto.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err, "", "this city already exists in this state"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "city created", dto.NewCityResponse(m))
}

// GET /cities
func (ctl *CityController) ListCities(c *fiber.Ctx) error {
	var rows []model.CityModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("city_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list cities")
	}
	out := make([]*dto.CityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewCityResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

// GET /cities/:id
func (ctl *CityController) GetCityByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CityModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "city_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "city not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch city")
	}
	return helper.Success(c, "ok", dto.NewCityResponse(&m))
}

// PUT /cities/:id
func (ctl *CityController) UpdateCity(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCityRequest
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
		Model(&model.CityModel{}).
		Where("city_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return helper.HandleError(c, apperr.Translate(res.Error, "", "this city already exists in this state"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "city not found")
	}

	var m model.CityModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "city_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch city")
	}
	return helper.Success(c, "city updated", dto.NewCityResponse(&m))
}

// DELETE /cities/:id
func (ctl *CityController) DeleteCity(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.CityModel{}, "city_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the city because schools still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "city not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
