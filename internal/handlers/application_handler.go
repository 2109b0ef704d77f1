package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

type ApplicationHandler struct {
	applicationService services.ApplicationService
	queryService       services.ApplicationQueryService
}

func NewApplicationHandler(
	applicationService services.ApplicationService,
	queryService services.ApplicationQueryService,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		queryService:       queryService,
	}
}

// HandleApply handles POST /jobs/:id/apply
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	application, err := h.applicationService.Submit(identity, jobID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Application submitted successfully",
		"application": application,
	})
}

// HandleListOwn handles GET /applications
func (h *ApplicationHandler) HandleListOwn(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	applications, err := h.queryService.ListOwn(identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(applications)
}
