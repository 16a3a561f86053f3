// service/video_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/catalog/content/model"
)

// CreateVideoWithTags mirrors CreateGameWithTags for videos.
func CreateVideoWithTags(db *gorm.DB, m *model.VideoModel, subjectIDs, yearIDs []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return apperr.Translate(err,
				"referenced record not found", "a video with this name already exists")
		}
		if err := ReplaceAssociations(tx, ContentVideo, m.VideoID, AssociationSubject, subjectIDs); err != nil {
			return err
		}
		return ReplaceAssociations(tx, ContentVideo, m.VideoID, AssociationYear, yearIDs)
	})
}

// UpdateVideoWithTags mirrors UpdateGameWithTags for videos.
func UpdateVideoWithTags(db *gorm.DB, videoID uuid.UUID, patch map[string]interface{}, subjectIDs, yearIDs *[]uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if len(patch) > 0 {
			res := tx.Model(&model.VideoModel{}).
				Where("video_id = ?", videoID).
				Updates(patch)
			if res.Error != nil {
				return apperr.Translate(res.Error,
					"referenced record not found", "a video with this name already exists")
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("video not found")
			}
		} else if err := ensureContentExists(tx, ContentVideo, videoID); err != nil {
			return err
		}

		if subjectIDs != nil {
			if err := ReplaceAssociations(tx, ContentVideo, videoID, AssociationSubject, *subjectIDs); err != nil {
				return err
			}
		}
		if yearIDs != nil {
			if err := ReplaceAssociations(tx, ContentVideo, videoID, AssociationYear, *yearIDs); err != nil {
				return err
			}
		}
		return nil
	})
}
