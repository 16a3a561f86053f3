package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	yearctrl "eduplay_backend/internals/features/catalog/years/controller"
)

func YearUserRoutes(r fiber.Router, db *gorm.DB) {
	h := yearctrl.NewYearController(db)
	years := r.Group("/years")
	years.Get("/", h.ListYears)
	years.Get("/:id", h.GetYearByID)
	years.Get("/:id/games", h.GetGamesByYear)
}

func YearAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := yearctrl.NewYearController(db)
	years := r.Group("/years")
	years.Post("/", h.CreateYear)
	years.Put("/:id", h.UpdateYear)
	years.Delete("/:id", h.DeleteYear)
}
