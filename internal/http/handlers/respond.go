package handlers

import (
	"errors"

	applog "farmstand/internal/log"
	"farmstand/internal/repos"
	"farmstand/internal/services"

	"github.com/gofiber/fiber/v2"
)

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"reason": msg})
	return message(c, fiber.StatusBadRequest, msg)
}

// fail maps store errors onto HTTP statuses. notFound carries the caller's
// entity-specific absence message.
func fail(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, repos.ErrNotFound):
		return message(c, fiber.StatusNotFound, notFound)
	case errors.Is(err, services.ErrBadCreds):
		return message(c, fiber.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, repos.ErrDuplicateKey):
		return message(c, fiber.StatusConflict, "Identifier or email already in use")
	case errors.Is(err, repos.ErrInsufficientStock):
		return message(c, fiber.StatusConflict, "Insufficient stock")
	case errors.Is(err, repos.ErrConstraint):
		return message(c, fiber.StatusConflict, "Referenced record does not exist")
	default:
		applog.Error(c, "store.error", err, nil)
		return message(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}
