package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/catalog/content/dto"
	"eduplay_backend/internals/features/catalog/content/model"
	"eduplay_backend/internals/features/catalog/content/service"
	helper "eduplay_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type VideoController struct {
	DB *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db}
}

// POST /videos
func (ctl *VideoController) CreateVideo(c *fiber.Ctx) error {
	var req dto.CreateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := service.CreateVideoWithTags(ctl.DB.WithContext(c.UserContext()), m, req.SubjectIDs, req.YearIDs); err != nil {
		return helper.HandleError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "video created",
		dto.NewVideoResponse(m, req.SubjectIDs, req.YearIDs))
}

// GET /videos?subject_id=...&year_id=...
func (ctl *VideoController) ListVideos(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Table("videos AS v").
		Select("DISTINCT v.*").
		Order("v.video_name ASC")
	if raw := c.Query("subject_id"); raw != "" {
		q = q.Joins("JOIN video_subjects AS vs ON vs.video_subject_video_id = v.video_id").
			Where("vs.video_subject_subject_id = ?", raw)
	}
	if raw := c.Query("year_id"); raw != "" {
		q = q.Where("v.video_id IN (SELECT video_year_video_id FROM video_years WHERE video_year_year_id = ?)", raw)
	}

	var rows []model.VideoModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list videos")
	}
	return helper.Success(c, "ok", rows)
}

// GET /videos/:id
func (ctl *VideoController) GetVideoByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())

	var m model.VideoModel
	if err := db.First(&m, "video_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "video not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch video")
	}

	subjectIDs, err := service.AssociationIDs(db, service.ContentVideo, id, service.AssociationSubject)
	if err != nil {
		return helper.HandleError(c, err)
	}
	yearIDs, err := service.AssociationIDs(db, service.ContentVideo, id, service.AssociationYear)
	if err != nil {
		return helper.HandleError(c, err)
	}
	return helper.Success(c, "ok", dto.NewVideoResponse(&m, subjectIDs, yearIDs))
}

// PUT /videos/:id
func (ctl *VideoController) UpdateVideo(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateVideoRequest
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
	if err := service.UpdateVideoWithTags(db, id, patch, req.SubjectIDs, req.YearIDs); err != nil {
		return helper.HandleError(c, err)
	}
	return ctl.GetVideoByID(c)
}

// PUT /videos/:id/:tagType  (tagType: subjects|years)
func (ctl *VideoController) ReplaceVideoTags(c *fiber.Ctx) error {
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
	if err := service.ReplaceContentAssociations(db, service.ContentVideo, id, typ, req.TagIDs); err != nil {
		return helper.HandleError(c, err)
	}
	return helper.Success(c, "associations replaced", fiber.Map{
		"video_id": id,
		"type":     typ,
		"tag_ids":  req.TagIDs,
	})
}

// DELETE /videos/:id
// Join rows go with the video (ON DELETE CASCADE on the association tables).
func (ctl *VideoController) DeleteVideo(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.VideoModel{}, "video_id = ?", id)
	if res.Error != nil {
		return helper.HandleError(c, apperr.TranslateDelete(res.Error,
			"cannot delete the video because other records still reference it"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "video not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
