package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectctrl "eduplay_backend/internals/features/catalog/subjects/controller"
)

func SubjectUserRoutes(r fiber.Router, db *gorm.DB) {
	h := subjectctrl.NewSubjectController(db)
	subjects := r.Group("/subjects")
	subjects.Get("/", h.ListSubjects)
	subjects.Get("/:id", h.GetSubjectByID)
	subjects.Get("/:id/games", h.GetGamesBySubject)
}

func SubjectAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := subjectctrl.NewSubjectController(db)
	subjects := r.Group("/subjects")
	subjects.Post("/", h.CreateSubject)
	subjects.Put("/:id", h.UpdateSubject)
	subjects.Delete("/:id", h.DeleteSubject)
}
