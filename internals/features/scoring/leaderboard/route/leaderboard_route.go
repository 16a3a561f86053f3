package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lbctrl "eduplay_backend/internals/features/scoring/leaderboard/controller"
)

// Public: leaderboards are world-readable.
func LeaderboardPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lbctrl.NewLeaderboardController(db)

	lb := r.Group("/leaderboards")
	lb.Get("/game/:gameId", ctl.GameLeaderboard)
	lb.Get("/game/:gameId/school/:schoolId", ctl.SchoolLeaderboard)
	lb.Get("/game/:gameId/city/:cityId", ctl.CityLeaderboard)
	lb.Get("/game/:gameId/state/:state", ctl.StateLeaderboard)
	lb.Get("/game/:gameId/user/:userId", ctl.UserRank)
}

// Authenticated: identity-scoped rank lookup.
func LeaderboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := lbctrl.NewLeaderboardController(db)

	lb := r.Group("/leaderboards")
	lb.Get("/game/:gameId/me", ctl.MyRank)
}
