package utils

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/ocs-portal/placement_service/internal/apperr"
)

// ResponseSuccess writes the payload under the standard success envelope.
func ResponseSuccess(ctx *fiber.Ctx, status int, payload fiber.Map) error {
	if payload == nil {
		payload = fiber.Map{}
	}
	payload["success"] = true
	return ctx.Status(status).JSON(payload)
}

// ResponseError maps a domain error to its code and status. Anything that is
// not an *apperr.Error is a server fault: the cause is logged and the client
// gets a generic body so internals never leak.
func ResponseError(ctx *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return ctx.Status(appErr.Status).JSON(fiber.Map{
			"success": false,
			"error":   appErr.Message,
			"code":    appErr.Code,
		})
	}

	log.Printf("%s %s error: %v", ctx.Method(), ctx.Path(), err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Server error",
	})
}
