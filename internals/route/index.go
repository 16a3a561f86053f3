package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	achievementroute "eduplay_backend/internals/features/achievements/route"
	activityroute "eduplay_backend/internals/features/activities/route"
	contentroute "eduplay_backend/internals/features/catalog/content/route"
	subjectroute "eduplay_backend/internals/features/catalog/subjects/route"
	yearroute "eduplay_backend/internals/features/catalog/years/route"
	cityroute "eduplay_backend/internals/features/region/cities/route"
	classroomroute "eduplay_backend/internals/features/region/classrooms/route"
	schoolroute "eduplay_backend/internals/features/region/schools/route"
	leaderboardroute "eduplay_backend/internals/features/scoring/leaderboard/route"
	scoreroute "eduplay_backend/internals/features/scoring/scores/route"
	userroute "eduplay_backend/internals/features/users/users/route"
	authmw "eduplay_backend/internals/middlewares/auth"
)

// SetupRoutes mounts three surfaces:
//
//	/api/public  read-only catalog and leaderboards, no token
//	/api/u       any authenticated user
//	/api/a       admin (entity writes), teacher roles where noted
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	public := api.Group("/public")
	cityroute.CityUserRoutes(public, db)
	schoolroute.SchoolUserRoutes(public, db)
	subjectroute.SubjectUserRoutes(public, db)
	yearroute.YearUserRoutes(public, db)
	contentroute.ContentUserRoutes(public, db)
	leaderboardroute.LeaderboardPublicRoutes(public, db)

	user := api.Group("/u", authmw.AuthMiddleware())
	userroute.UserSelfRoutes(user, db)
	classroomroute.ClassroomUserRoutes(user, db)
	scoreroute.ScoreUserRoutes(user, db)
	leaderboardroute.LeaderboardUserRoutes(user, db)
	achievementroute.AchievementUserRoutes(user, db)
	activityroute.ActivityUserRoutes(user, db)

	admin := api.Group("/a", authmw.AuthMiddleware(), authmw.RequireRoles(authmw.RoleAdmin))
	cityroute.CityAdminRoutes(admin, db)
	schoolroute.SchoolAdminRoutes(admin, db)
	classroomroute.ClassroomAdminRoutes(admin, db)
	userroute.UserAdminRoutes(admin, db)
	subjectroute.SubjectAdminRoutes(admin, db)
	yearroute.YearAdminRoutes(admin, db)
	contentroute.ContentAdminRoutes(admin, db)
	scoreroute.ScoreAdminRoutes(admin, db)
	achievementroute.AchievementAdminRoutes(admin, db)
}
