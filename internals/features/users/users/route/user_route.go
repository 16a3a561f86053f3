package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctrl "eduplay_backend/internals/features/users/users/controller"
)

func UserSelfRoutes(r fiber.Router, db *gorm.DB) {
	h := userctrl.NewUserController(db)
	r.Get("/users/me", h.GetMe)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := userctrl.NewUserController(db)
	users := r.Group("/users")
	users.Post("/", h.CreateUser)
	users.Get("/", h.ListUsers)
	users.Get("/:id", h.GetUserByID)
	users.Put("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeactivateUser)
}
