// service/game_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/catalog/content/model"
)

// CreateGameWithTags inserts the game row and writes both tag sets as one
// unit of work. Any failure rolls back the game insert as well; a partially
// created game is never visible.
func CreateGameWithTags(db *gorm.DB, m *model.GameModel, subjectIDs, yearIDs []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return apperr.Translate(err,
				"referenced record not found", "a game with this name already exists")
		}
		if err := ReplaceAssociations(tx, ContentGame, m.GameID, AssociationSubject, subjectIDs); err != nil {
			return err
		}
		return ReplaceAssociations(tx, ContentGame, m.GameID, AssociationYear, yearIDs)
	})
}

// UpdateGameWithTags patches the game row and replaces only the tag sets
// the caller supplied (nil slice pointer = leave that category alone). A
// zero-row update aborts the whole transaction with NotFoundError.
func UpdateGameWithTags(db *gorm.DB, gameID uuid.UUID, patch map[string]interface{}, subjectIDs, yearIDs *[]uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if len(patch) > 0 {
			res := tx.Model(&model.GameModel{}).
				Where("game_id = ?", gameID).
				Updates(patch)
			if res.Error != nil {
				return apperr.Translate(res.Error,
					"referenced record not found", "a game with this name already exists")
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("game not found")
			}
		} else if err := ensureContentExists(tx, ContentGame, gameID); err != nil {
			return err
		}

		if subjectIDs != nil {
			if err := ReplaceAssociations(tx, ContentGame, gameID, AssociationSubject, *subjectIDs); err != nil {
				return err
			}
		}
		if yearIDs != nil {
			if err := ReplaceAssociations(tx, ContentGame, gameID, AssociationYear, *yearIDs); err != nil {
				return err
			}
		}
		return nil
	})
}
