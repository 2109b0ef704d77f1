package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

type AdminJobHandler struct {
	jobService services.JobService
}

func NewAdminJobHandler(jobService services.JobService) *AdminJobHandler {
	return &AdminJobHandler{jobService: jobService}
}

// HandleList handles GET /admin/jobs
func (h *AdminJobHandler) HandleList(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	jobs, err := h.jobService.ListForAdmin(identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobs)
}

// HandleCreate handles POST /admin/jobs
func (h *AdminJobHandler) HandleCreate(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	job, err := h.jobService.Create(identity, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"job":     job,
	})
}

// HandleGet handles GET /admin/jobs/:id
func (h *AdminJobHandler) HandleGet(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobService.GetForEdit(identity, jobID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}

// HandleUpdate handles PATCH /admin/jobs/:id
func (h *AdminJobHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := auth.FromContext(c)

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	var req models.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	job, err := h.jobService.Update(identity, jobID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(job)
}
