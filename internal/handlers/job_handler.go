package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

type JobHandler struct {
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// HandleListPublic handles GET /jobs. No auth: active jobs with their
// questions are public.
func (h *JobHandler) HandleListPublic(c *fiber.Ctx) error {
	jobs, err := h.jobService.ListPublic()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(jobs)
}
