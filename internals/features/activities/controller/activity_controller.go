package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/activities/dto"
	"eduplay_backend/internals/features/activities/model"
	helper "eduplay_backend/internals/helpers"
	authmw "eduplay_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

var validate = validator.New()

// POST /activities
// The teacher is always the caller; the body never names one.
func (ctl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	teacherID, err := authmw.UserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req dto.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(teacherID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"game or classroom not found", "duplicate activity"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "activity created", m)
}

// GET /activities/classroom/:classroomId
func (ctl *ActivityController) ListActivitiesByClassroom(c *fiber.Ctx) error {
	classroomID, err := helper.ParseUUIDParam(c, "classroomId")
	if err != nil {
		return err
	}
	return ctl.listForClassroom(c, classroomID)
}

// GET /activities/mine
// Students see their own classroom's activities; the classroom comes from
// the token, not a parameter.
func (ctl *ActivityController) ListMyClassroomActivities(c *fiber.Ctx) error {
	classroomID := authmw.ClassroomID(c)
	if classroomID == nil {
		return helper.Error(c, fiber.StatusForbidden, "no classroom in identity context")
	}
	return ctl.listForClassroom(c, *classroomID)
}

func (ctl *ActivityController) listForClassroom(c *fiber.Ctx, classroomID interface{}) error {
	var rows []model.ActivityModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("activity_classroom_id = ?", classroomID).
		Order("activity_starts_at DESC").
		Find(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list activities")
	}
	return helper.Success(c, "ok", rows)
}

// PUT /activities/:id/status
func (ctl *ActivityController) UpdateActivityStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	teacherID, uerr := authmw.UserID(c)
	if uerr != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req dto.UpdateActivityStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.ActivityModel{}).
		Where("activity_id = ? AND activity_teacher_id = ?", id, teacherID).
		Update("activity_status", req.Status)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to update activity")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "activity not found")
	}
	return helper.Success(c, "activity updated", fiber.Map{"activity_id": id, "status": req.Status})
}

// DELETE /activities/:id
// Only the creating teacher may remove an activity; the ownership predicate
// sits in the WHERE clause so a foreign activity reads as not found.
func (ctl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	teacherID, uerr := authmw.UserID(c)
	if uerr != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Where("activity_id = ? AND activity_teacher_id = ?", id, teacherID).
		Delete(&model.ActivityModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to delete activity")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "activity not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
