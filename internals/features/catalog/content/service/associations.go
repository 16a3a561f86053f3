// service/associations.go
package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
)

type ContentKind string

const (
	ContentGame  ContentKind = "game"
	ContentVideo ContentKind = "video"
)

type AssociationType string

const (
	AssociationSubject AssociationType = "subject"
	AssociationYear    AssociationType = "year"
)

// joinSpec pins the join table and its columns per (content kind, tag
// category). Table and column names only ever come from this fixed list,
// never from the request.
type joinSpec struct {
	table      string
	contentCol string
	tagCol     string
}

var joinSpecs = map[ContentKind]map[AssociationType]joinSpec{
	ContentGame: {
		AssociationSubject: {"game_subjects", "game_subject_game_id", "game_subject_subject_id"},
		AssociationYear:    {"game_years", "game_year_game_id", "game_year_year_id"},
	},
	ContentVideo: {
		AssociationSubject: {"video_subjects", "video_subject_video_id", "video_subject_subject_id"},
		AssociationYear:    {"video_years", "video_year_video_id", "video_year_year_id"},
	},
}

var contentTables = map[ContentKind]struct{ table, idCol string }{
	ContentGame:  {"games", "game_id"},
	ContentVideo: {"videos", "video_id"},
}

// ReplaceAssociations makes the persisted tag set for (contentID, typ)
// exactly equal to tagIDs: delete everything, insert the new list. Must run
// inside a transaction; an empty list is valid and means "no tags". An
// unknown tag surfaces as ReferenceError, a duplicated tag as ConflictError,
// and the caller's rollback leaves the previous set intact.
func ReplaceAssociations(tx *gorm.DB, kind ContentKind, contentID uuid.UUID, typ AssociationType, tagIDs []uuid.UUID) error {
	spec, ok := joinSpecs[kind][typ]
	if !ok {
		return apperr.Validation("unknown association type")
	}

	if err := tx.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", spec.table, spec.contentCol),
		contentID,
	).Error; err != nil {
		return apperr.Tx(err)
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)", spec.table, spec.contentCol, spec.tagCol)
	for _, tagID := range tagIDs {
		if err := tx.Exec(insertSQL, contentID, tagID).Error; err != nil {
			return apperr.Translate(err,
				fmt.Sprintf("%s %s does not exist", typ, tagID),
				fmt.Sprintf("%s %s is listed more than once", typ, tagID))
		}
	}
	return nil
}

// ReplaceContentAssociations is the standalone replace operation: one
// transaction covering the existence check and the full swap.
func ReplaceContentAssociations(db *gorm.DB, kind ContentKind, contentID uuid.UUID, typ AssociationType, tagIDs []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ensureContentExists(tx, kind, contentID); err != nil {
			return err
		}
		return ReplaceAssociations(tx, kind, contentID, typ, tagIDs)
	})
}

// AssociationIDs lists the current tag set for one (content, category) pair.
func AssociationIDs(db *gorm.DB, kind ContentKind, contentID uuid.UUID, typ AssociationType) ([]uuid.UUID, error) {
	spec, ok := joinSpecs[kind][typ]
	if !ok {
		return nil, apperr.Validation("unknown association type")
	}
	ids := make([]uuid.UUID, 0)
	if err := db.Table(spec.table).
		Where(spec.contentCol+" = ?", contentID).
		Pluck(spec.tagCol, &ids).Error; err != nil {
		return nil, apperr.Tx(err)
	}
	return ids, nil
}

func ensureContentExists(tx *gorm.DB, kind ContentKind, contentID uuid.UUID) error {
	ct := contentTables[kind]
	var n int64
	if err := tx.Table(ct.table).
		Where(ct.idCol+" = ?", contentID).
		Count(&n).Error; err != nil {
		return apperr.Tx(err)
	}
	if n == 0 {
		return apperr.NotFound(string(kind) + " not found")
	}
	return nil
}

// ParseAssociationType maps a path segment to a tag category.
func ParseAssociationType(raw string) (AssociationType, error) {
	switch raw {
	case "subjects", "subject":
		return AssociationSubject, nil
	case "years", "year":
		return AssociationYear, nil
	default:
		return "", apperr.Validation("association type must be subject or year")
	}
}
