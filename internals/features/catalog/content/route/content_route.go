package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentctrl "eduplay_backend/internals/features/catalog/content/controller"
)

func ContentUserRoutes(r fiber.Router, db *gorm.DB) {
	g := contentctrl.NewGameController(db)
	v := contentctrl.NewVideoController(db)

	games := r.Group("/games")
	games.Get("/", g.ListGames)
	games.Get("/:id", g.GetGameByID)

	videos := r.Group("/videos")
	videos.Get("/", v.ListVideos)
	videos.Get("/:id", v.GetVideoByID)
}

func ContentAdminRoutes(r fiber.Router, db *gorm.DB) {
	g := contentctrl.NewGameController(db)
	v := contentctrl.NewVideoController(db)

	games := r.Group("/games")
	games.Post("/", g.CreateGame)
	games.Put("/:id", g.UpdateGame)
	games.Put("/:id/:tagType", g.ReplaceGameTags)
	games.Delete("/:id", g.DeleteGame)

	videos := r.Group("/videos")
	videos.Post("/", v.CreateVideo)
	videos.Put("/:id", v.UpdateVideo)
	videos.Put("/:id/:tagType", v.ReplaceVideoTags)
	videos.Delete("/:id", v.DeleteVideo)
}
