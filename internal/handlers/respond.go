package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
)

// respondError maps a typed application error onto the HTTP surface.
// Forbidden is flattened into 401 alongside Unauthenticated so that
// admin-scoped resource ownership cannot be probed from status codes.
func respondError(c *fiber.Ctx, err error) error {
	appErr := apperrors.Get(err)

	status := fiber.StatusInternalServerError
	message := appErr.Message

	switch appErr.Code {
	case apperrors.CodeUnauthenticated, apperrors.CodeForbidden:
		status = fiber.StatusUnauthorized
		message = "Unauthorized"
	case apperrors.CodeNotFound:
		status = fiber.StatusNotFound
	case apperrors.CodeValidation:
		status = fiber.StatusBadRequest
	case apperrors.CodeConflict:
		status = fiber.StatusConflict
	case apperrors.CodeInternal:
		// Full detail stays in the server logs; the caller gets a
		// generic body.
		log.Printf("internal error: %v", appErr)
		message = "Internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
