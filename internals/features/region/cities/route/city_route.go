package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cityctrl "eduplay_backend/internals/features/region/cities/controller"
)

// CityUserRoutes: read-only access.
func CityUserRoutes(r fiber.Router, db *gorm.DB) {
	h := cityctrl.NewCityController(db)
	cities := r.Group("/cities")
	cities.Get("/", h.ListCities)
	cities.Get("/:id", h.GetCityByID)
}

// CityAdminRoutes: full CRUD.
func CityAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := cityctrl.NewCityController(db)
	cities := r.Group("/cities")
	cities.Post("/", h.CreateCity)
	cities.Put("/:id", h.UpdateCity)
	cities.Delete("/:id", h.DeleteCity)
}
