package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

type AdminApplicationHandler struct {
	applicationService services.ApplicationService
	queryService       services.ApplicationQueryService
}

func NewAdminApplicationHandler(
	applicationService services.ApplicationService,
	queryService services.ApplicationQueryService,
) *AdminApplicationHandler {
	return &AdminApplicationHandler{
		applicationService: applicationService,
		queryService:       queryService,
	}
}

// HandleList handles GET /admin/applications
func (h *AdminApplicationHandler) HandleList(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	applications, err := h.queryService.ListForAdmin(identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}

// HandleGetDetail handles GET /admin/applications/:id
func (h *AdminApplicationHandler) HandleGetDetail(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	application, err := h.applicationService.GetDetail(identity, applicationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(application)
}

// HandleUpdateStatus handles PATCH /admin/applications/:id/status
func (h *AdminApplicationHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	application, err := h.applicationService.UpdateStatus(identity, applicationID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(application)
}
