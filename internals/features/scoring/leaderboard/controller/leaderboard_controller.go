package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/features/scoring/leaderboard/service"
	helper "eduplay_backend/internals/helpers"
	authmw "eduplay_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type LeaderboardController struct {
	DB *gorm.DB
}

func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{DB: db}
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// GET /leaderboards/game/:gameId?limit=
func (ctl *LeaderboardController) GameLeaderboard(c *fiber.Ctx) error {
	gameID, err := helper.ParseUUIDParam(c, "gameId")
	if err != nil {
		return err
	}
	return ctl.respond(c, service.GameScope(gameID))
}

// GET /leaderboards/game/:gameId/school/:schoolId?limit=
func (ctl *LeaderboardController) SchoolLeaderboard(c *fiber.Ctx) error {
	gameID, err := helper.ParseUUIDParam(c, "gameId")
	if err != nil {
		return err
	}
	schoolID, err := helper.ParseUUIDParam(c, "schoolId")
	if err != nil {
		return err
	}
	return ctl.respond(c, service.SchoolScope(gameID, schoolID))
}

// GET /leaderboards/game/:gameId/city/:cityId?limit=
func (ctl *LeaderboardController) CityLeaderboard(c *fiber.Ctx) error {
	gameID, err := helper.ParseUUIDParam(c, "gameId")
	if err != nil {
		return err
	}
	cityID, err := helper.ParseUUIDParam(c, "cityId")
	if err != nil {
		return err
	}
	return ctl.respond(c, service.CityScope(gameID, cityID))
}

// GET /leaderboards/game/:gameId/state/:state?limit=
// The state segment tolerates stray braces and any letter case.
func (ctl *LeaderboardController) StateLeaderboard(c *fiber.Ctx) error {
	gameID, err := helper.ParseUUIDParam(c, "gameId")
	if err != nil {
		return err
	}
	state := service.NormalizeState(c.Params("state"))
	if state == "" {
		return helper.Error(c, fiber.StatusBadRequest, "state is required")
	}
	return ctl.respond(c, service.StateScope(gameID, state))
}

// GET /leaderboards/game/:gameId/user/:userId
func (ctl *LeaderboardController) UserRank(c *fiber.Ctx) error {
	gameID, err := helper.ParseUUIDParam(c, "gameId")
	if err != nil {
		return err
	}
	userID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return err
	}
	res, rerr := service.UserRank(ctl.DB.WithContext(c.UserContext()), userID, gameID)
	if rerr != nil {
		return helper.HandleError(c, rerr)
	}
	return helper.Success(c, "ok", res)
}

// GET /leaderboards/game/:gameId/me
// Unranked is a valid answer, both fields come back null.
func (ctl *LeaderboardController) MyRank(c *fiber.Ctx) error {
	gameID, err := helper.ParseUUIDParam(c, "gameId")
	if err != nil {
		return err
	}
	userID, uerr := authmw.UserID(c)
	if uerr != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "unauthorized")
	}
	res, rerr := service.UserRank(ctl.DB.WithContext(c.UserContext()), userID, gameID)
	if rerr != nil {
		return helper.HandleError(c, rerr)
	}
	return helper.Success(c, "ok", res)
}

func (ctl *LeaderboardController) respond(c *fiber.Ctx, scope service.Scope) error {
	limit := helper.ResolveLimit(c, defaultLimit, maxLimit)
	entries, err := service.Leaderboard(ctl.DB.WithContext(c.UserContext()), scope, limit)
	if err != nil {
		return helper.HandleError(c, err)
	}
	return helper.Success(c, "ok", entries)
}
