package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/catalog/subjects/dto"
	"eduplay_backend/internals/features/catalog/subjects/model"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

// POST /subjects
func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"", "a subject with this name already exists"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "subject created", dto.NewSubjectResponse(m))
}

// GET /subjects
func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	var rows []model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("subject_name ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list subjects")
	}
	out := make([]*dto.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewSubjectResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

// GET /subjects/:id
func (ctl *SubjectController) GetSubjectByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "subject not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch subject")
	}
	return helper.Success(c, "ok", dto.NewSubjectResponse(&m))
}

// PUT /subjects/:id
func (ctl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SubjectModel{}).
		Where("subject_id = ?", id).
		Update("subject_name", req.ToModel().SubjectName)
	if res.Error != nil {
		return helper.HandleError(c, apperr.Translate(res.Error,
			"", "a subject with this name already exists"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "subject not found")
	}

	var m model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "subject_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch subject")
	}
	return helper.Success(c, "subject updated", dto.NewSubjectResponse(&m))
}

// DELETE /subjects/:id
func (ctl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the subject because games or videos still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "subject not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GET /subjects/:id/games?year_id=...
// Games tagged with the subject, optionally narrowed to a grade year.
func (ctl *SubjectController) GetGamesBySubject(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Table("games AS g").
		Joins("JOIN game_subjects AS gs ON gs.game_subject_game_id = g.game_id").
		Where("gs.game_subject_subject_id = ?", id)
	if raw := c.Query("year_id"); raw != "" {
		q = q.Where("g.game_id IN (SELECT game_year_game_id FROM game_years WHERE game_year_year_id = ?)", raw)
	}

	var rows []map[string]interface{}
	if err := q.Select("g.*").Order("g.game_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list games for subject")
	}
	return helper.Success(c, "ok", rows)
}
