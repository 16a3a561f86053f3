package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eduplay_backend/internals/apperr"
	"eduplay_backend/internals/features/users/users/dto"
	"eduplay_backend/internals/features/users/users/model"
	helper "eduplay_backend/internals/helpers"
	authmw "eduplay_backend/internals/middlewares/auth"
)

/* ================= Controller & Constructor ================= */

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// POST /users
func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.HandleError(c, apperr.Translate(err,
			"the given school or classroom does not exist", "this username is already taken"))
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "user created", dto.NewUserResponse(m))
}

// GET /users  (active users only, optionally filtered by role)
func (ctl *UserController) ListUsers(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.UserContext()).
		Where("user_is_active = TRUE").
		Order("user_name ASC")
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}

	var rows []model.UserModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to list users")
	}
	out := make([]*dto.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewUserResponse(&rows[i]))
	}
	return helper.Success(c, "ok", out)
}

// GET /users/me
func (ctl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}
	return ctl.getByID(c, userID.String())
}

// GET /users/:id
func (ctl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	return ctl.getByID(c, id.String())
}

func (ctl *UserController) getByID(c *fiber.Ctx, id string) error {
	var m model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "user_id = ? AND user_is_active = TRUE", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "user not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	return helper.Success(c, "ok", dto.NewUserResponse(&m))
}

// PUT /users/:id
func (ctl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	patch := req.Patch()
	if len(patch) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "no fields to update")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_id = ? AND user_is_active = TRUE", id).
		Updates(patch)
	if res.Error != nil {
		return helper.HandleError(c, apperr.Translate(res.Error,
			"the given school or classroom does not exist", "this username is already taken"))
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "user not found or inactive")
	}

	var m model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "user_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to fetch user")
	}
	return helper.Success(c, "user updated", dto.NewUserResponse(&m))
}

// DELETE /users/:id  (soft delete: user_is_active = false)
func (ctl *UserController) DeactivateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.UserModel{}).
		Where("user_id = ? AND user_is_active = TRUE", id).
		Updates(map[string]interface{}{
			"user_is_active":  false,
			"user_updated_at": time.Now(),
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "user not found or already inactive")
	}
	return helper.Success(c, "user deactivated", nil)
}
