package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a :param and parses it as UUID. Some clients wrap
// path ids in braces by mistake, so those are stripped before parsing.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	raw = strings.TrimPrefix(raw, "{")
	raw = strings.TrimSuffix(raw, "}")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// ResolveLimit reads ?limit= with a default and an upper bound (0 = none).
func ResolveLimit(c *fiber.Ctx, def, max int) int {
	limit, err := strconv.Atoi(strings.TrimSpace(c.Query("limit", strconv.Itoa(def))))
	if err != nil || limit <= 0 {
		limit = def
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}
