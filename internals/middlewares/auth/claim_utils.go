// internals/middlewares/auth/claim_utils.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	localUserID      = "user_id"
	localRole        = "role"
	localSchoolID    = "school_id"
	localClassroomID = "classroom_id"
)

func storeIdentity(c *fiber.Ctx, claims jwt.MapClaims) {
	if raw, ok := claims["user_id"].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			c.Locals(localUserID, id.String())
		}
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals(localRole, role)
	}
	if raw, ok := claims["school_id"].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			c.Locals(localSchoolID, id.String())
		}
	}
	if raw, ok := claims["classroom_id"].(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			c.Locals(localClassroomID, id.String())
		}
	}
}

// UserID returns the authenticated caller's id.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(localUserID).(string)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user identity")
	}
	return uuid.Parse(raw)
}

// Role returns the caller role ("" when absent). Opaque to most features.
func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}

// SchoolID returns the caller's school scope, when the token carries one.
func SchoolID(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals(localSchoolID).(string)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// ClassroomID returns the caller's classroom scope, when the token carries one.
func ClassroomID(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals(localClassroomID).(string)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
