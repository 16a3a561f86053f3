package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classroomctrl "eduplay_backend/internals/features/region/classrooms/controller"
)

func ClassroomUserRoutes(r fiber.Router, db *gorm.DB) {
	h := classroomctrl.NewClassroomController(db)
	classrooms := r.Group("/classrooms")
	classrooms.Get("/", h.ListClassrooms)
	classrooms.Get("/:id", h.GetClassroomByID)
	classrooms.Get("/:id/students", h.GetRoster)
}

func ClassroomAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := classroomctrl.NewClassroomController(db)
	classrooms := r.Group("/classrooms")
	classrooms.Post("/", h.CreateClassroom)
	classrooms.Put("/:id", h.UpdateClassroom)
	classrooms.Delete("/:id", h.DeleteClassroom)
}
