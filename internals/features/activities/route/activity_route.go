package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	actctrl "eduplay_backend/internals/features/activities/controller"
	authmw "eduplay_backend/internals/middlewares/auth"
)

func ActivityUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := actctrl.NewActivityController(db)

	activities := r.Group("/activities")
	activities.Get("/mine", ctl.ListMyClassroomActivities)
	activities.Get("/classroom/:classroomId", ctl.ListActivitiesByClassroom)

	teacher := activities.Group("", authmw.RequireRoles(authmw.RoleTeacher, authmw.RoleAdmin))
	teacher.Post("/", ctl.CreateActivity)
	teacher.Put("/:id/status", ctl.UpdateActivityStatus)
	teacher.Delete("/:id", ctl.DeleteActivity)
}
