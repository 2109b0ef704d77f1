package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

type ProfileHandler struct {
	userService services.UserService
}

func NewProfileHandler(userService services.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// HandleGet handles GET /profile
func (h *ProfileHandler) HandleGet(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	profile, err := h.userService.GetProfile(identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// HandleUpdate handles PATCH /profile
func (h *ProfileHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	profile, err := h.userService.UpdateProfile(identity, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
