package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/region/schools/dto"
	"eduplay_backend/internals/features/region/schools/model"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

var validate = validator.New()

const schoolWithCitySelect = `
	s.school_id, s.school_name, s.school_city_id,
	s.school_created_at, s.school_updated_at,
	c.city_name AS city_name, c.city_state AS city_state
`

// POST /schools
func (ctl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"the given city does not exist", "a school with this name already exists"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "school created", dto.NewSchoolResponse(m))
}

// GET /schools
func (ctl *SchoolController) ListSchools(c *fiber.Ctx) error {
	var rows []dto.SchoolResponse
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("schools AS s").
		Joins("JOIN cities AS c ON c.city_id = s.school_city_id").
		Select(schoolWithCitySelect).
		Order("s.school_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list schools")
	}
	return helper.Success(c, "ok", rows)
}

// GET /schools/:id
func (ctl *SchoolController) GetSchoolByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var row dto.SchoolResponse
	res := ctl.DB.WithContext(c.UserContext()).
		Table("schools AS s").
		Joins("JOIN cities AS c ON c.city_id = s.school_city_id").
		Select(schoolWithCitySelect).
		Where("s.school_id = ?", id).
		Scan(&row)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch school")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "school not found")
	}
	return helper.Success(c, "ok", row)
}

// PUT /schools/:id
func (ctl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSchoolRequest
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
		Model(&model.SchoolModel{}).
		Where("school_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return helper.HandleError(c, apperr.Translate(res.Error,
			"the given city does not exist", "a school with this name already exists"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "school not found")
	}

	var m model.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "school_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch school")
	}
	return helper.Success(c, "school updated", dto.NewSchoolResponse(&m))
}

// DELETE /schools/:id
func (ctl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.SchoolModel{}, "school_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the school because classrooms or users still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "school not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
