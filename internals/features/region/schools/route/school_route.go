package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolctrl "eduplay_backend/internals/features/region/schools/controller"
)

func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	h := schoolctrl.NewSchoolController(db)
	schools := r.Group("/schools")
	schools.Get("/", h.ListSchools)
	schools.Get("/:id", h.GetSchoolByID)
}

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := schoolctrl.NewSchoolController(db)
	schools := r.Group("/schools")
	schools.Post("/", h.CreateSchool)
	schools.Put("/:id", h.UpdateSchool)
	schools.Delete("/:id", h.DeleteSchool)
}
