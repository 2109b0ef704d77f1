package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

type UploadHandler struct {
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(storageService services.StorageService, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /uploads. The saved file's URL is what
// applicants submit as resumeUrl or as the answer to a FILE question.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	identity := auth.FromContext(c)
	if !identity.IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload 'resume' as a PDF or Word document.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, _, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Filename: filename,
		URL:      "/uploads/" + filename,
	})
}
