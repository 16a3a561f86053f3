package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achctrl "eduplay_backend/internals/features/achievements/controller"
)

func AchievementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := achctrl.NewAchievementController(db)

	r.Get("/achievements", ctl.ListAchievements)
	r.Get("/achievements/:id", ctl.GetAchievementByID)
	r.Get("/users/:userId/achievements", ctl.ListUserAchievements)
}

func AchievementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := achctrl.NewAchievementController(db)

	r.Post("/achievements", ctl.CreateAchievement)
	r.Put("/achievements/:id", ctl.UpdateAchievement)
	r.Delete("/achievements/:id", ctl.DeleteAchievement)

	r.Post("/users/:userId/achievements", ctl.GrantAchievement)
	r.Delete("/users/:userId/achievements/:achievementId", ctl.RevokeAchievement)
}
