// models/game_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GameModel represents the `games` table. Media lives behind external URLs;
// nothing binary is stored here.
type GameModel struct {
	GameID           uuid.UUID `json:"game_id" gorm:"column:game_id;type:uuid;default:gen_random_uuid();primaryKey"`
	GameName         string    `json:"game_name" gorm:"column:game_name;type:varchar(160);unique;not null"`
	GameDescription  *string   `json:"game_description,omitempty" gorm:"column:game_description;type:text"`
	GameURL          *string   `json:"game_url,omitempty" gorm:"column:game_url;type:text"`
	GameThumbnailURL *string   `json:"game_thumbnail_url,omitempty" gorm:"column:game_thumbnail_url;type:text"`

	GameCreatedAt time.Time  `json:"game_created_at" gorm:"column:game_created_at;not null;autoCreateTime"`
	GameUpdatedAt *time.Time `json:"game_updated_at,omitempty" gorm:"column:game_updated_at"`
}

func (GameModel) TableName() string {
	return "games"
}
