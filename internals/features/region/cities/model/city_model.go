// models/city_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CityModel represents the `cities` table. State is the two-letter state
// code, stored uppercase.
type CityModel struct {
	CityID    uuid.UUID `json:"city_id" gorm:"column:city_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CityName  string    `json:"city_name" gorm:"column:city_name;type:varchar(120);not null;uniqueIndex:uq_cities_name_state"`
	CityState string    `json:"city_state" gorm:"column:city_state;type:varchar(2);not null;uniqueIndex:uq_cities_name_state"`

	CityCreatedAt time.Time  `json:"city_created_at" gorm:"column:city_created_at;not null;autoCreateTime"`
	CityUpdatedAt *time.Time `json:"city_updated_at,omitempty" gorm:"column:city_updated_at"`
}

func (CityModel) TableName() string {
	return "cities"
}
