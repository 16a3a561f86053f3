package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scorectrl "eduplay_backend/internals/features/scoring/scores/controller"
)

func ScoreUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scorectrl.NewScoreController(db)

	scores := r.Group("/scores")
	scores.Post("/mine", ctl.SubmitMyScore)
	scores.Get("/me", ctl.ListMyScores)
	scores.Get("/user/:userId", ctl.ListScoresByUser)
	scores.Get("/classroom/:classroomId", ctl.ListScoresByClassroom)
}

func ScoreAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scorectrl.NewScoreController(db)

	scores := r.Group("/scores")
	scores.Post("/", ctl.SubmitScore)
	scores.Put("/:id", ctl.AmendScore)
	scores.Delete("/:id", ctl.RemoveScore)
}
