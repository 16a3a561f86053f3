package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/region/classrooms/dto"
	"eduplay_backend/internals/features/region/classrooms/model"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassroomController struct {
	DB *gorm.DB
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db}
}

var validate = validator.New()

// POST /classrooms
func (ctl *ClassroomController) CreateClassroom(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"the given school does not exist", "a classroom with this name already exists"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "classroom created", dto.NewClassroomResponse(m))
}

// GET /classrooms
func (ctl *ClassroomController) ListClassrooms(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Table("classrooms AS cr").
		Joins("JOIN schools AS s ON s.school_id = cr.classroom_school_id").
		Select(`
			cr.classroom_id, cr.classroom_name, cr.classroom_school_id,
			cr.classroom_created_at, cr.classroom_updated_at,
			s.school_name AS school_name
		`).
		Order("cr.classroom_name ASC")
	if raw := c.Query("school_id"); raw != "" {
		q = q.Where("cr.classroom_school_id = ?", raw)
	}

	var rows []dto.ClassroomResponse
	if err := q.Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list classrooms")
	}
	return helper.Success(c, "ok", rows)
}

// GET /classrooms/:id
func (ctl *ClassroomController) GetClassroomByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch classroom")
	}
	return helper.Success(c, "ok", dto.NewClassroomResponse(&m))
}

// GET /classrooms/:id/students
func (ctl *ClassroomController) GetRoster(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var rows []dto.RosterEntry
	if err := ctl.DB.WithContext(c.UserContext()).
		Table("users AS u").
		Select("u.user_id, u.user_name, u.user_username AS username").
		Where("u.user_classroom_id = ? AND u.user_is_active = TRUE", id).
		Order("u.user_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch roster")
	}
	return helper.Success(c, "ok", rows)
}

// PUT /classrooms/:id
func (ctl *ClassroomController) UpdateClassroom(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateClassroomRequest
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
		Model(&model.ClassroomModel{}).
		Where("classroom_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return helper.HandleError(c, apperr.Translate(res.Error,
			"the given school does not exist", "a classroom with this name already exists"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "classroom not found")
	}

	var m model.ClassroomModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "classroom_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch classroom")
	}
	return helper.Success(c, "classroom updated", dto.NewClassroomResponse(&m))
}

// DELETE /classrooms/:id
func (ctl *ClassroomController) DeleteClassroom(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.ClassroomModel{}, "classroom_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the classroom because users or activities still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "classroom not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
