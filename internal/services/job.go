package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/policy"
	"github.com/ZamaMehdi/RecruitProo/internal/repositories"
)

type JobService interface {
	ListPublic() ([]models.Job, error)
	Create(identity auth.Identity, req *models.CreateJobRequest) (*models.Job, error)
	Update(identity auth.Identity, jobID uuid.UUID, req *models.UpdateJobRequest) (*models.Job, error)
	GetForEdit(identity auth.Identity, jobID uuid.UUID) (*models.Job, error)
	ListForAdmin(identity auth.Identity) ([]models.JobWithApplicationCount, error)
}

type jobService struct {
	jobs repositories.JobRepository
}

func NewJobService(jobs repositories.JobRepository) JobService {
	return &jobService{jobs: jobs}
}

// ListPublic implements JobService.
func (s *jobService) ListPublic() ([]models.Job, error) {
	return s.jobs.ListActive()
}

// Create implements JobService. The owning admin email always comes
// from the session identity, never from the payload.
func (s *jobService) Create(identity auth.Identity, req *models.CreateJobRequest) (*models.Job, error) {
	if !identity.IsAdmin() || identity.Email == "" {
		return nil, apperrors.Unauthenticated("admin access required")
	}

	if req.Title == "" || req.Department == "" || req.Location == "" || req.Status == "" {
		return nil, apperrors.Validation("Missing required fields")
	}
	status := models.JobStatus(req.Status)
	if !models.IsValidJobStatus(status) {
		return nil, apperrors.Validation("invalid job status")
	}

	now := time.Now()
	job := &models.Job{
		ID:         uuid.New(),
		Title:      req.Title,
		Department: req.Department,
		Location:   req.Location,
		Salary:     req.Salary,
		Status:     status,
		AdminEmail: identity.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, q := range req.CustomQuestions {
		questionType := models.QuestionType(q.Type)
		if !models.IsValidQuestionType(questionType) {
			return nil, apperrors.Validation("invalid question type")
		}
		if q.Question == "" {
			return nil, apperrors.Validation("question text is required")
		}
		job.CustomQuestions = append(job.CustomQuestions, models.CustomQuestion{
			ID:       uuid.New(),
			Question: q.Question,
			Type:     questionType,
			Required: q.Required,
		})
	}

	if err := s.jobs.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update implements JobService. Non-owners get NotFound rather than
// Forbidden so job existence cannot be probed.
func (s *jobService) Update(identity auth.Identity, jobID uuid.UUID, req *models.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageJob(identity, job) {
		return nil, apperrors.NotFound("job not found")
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Status != nil {
		status := models.JobStatus(*req.Status)
		if !models.IsValidJobStatus(status) {
			return nil, apperrors.Validation("invalid job status")
		}
		updates["status"] = status
	}

	return s.jobs.Update(jobID, updates)
}

// GetForEdit implements JobService.
func (s *jobService) GetForEdit(identity auth.Identity, jobID uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.FindByIDWithQuestions(jobID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManageJob(identity, job) {
		return nil, apperrors.NotFound("job not found")
	}
	return job, nil
}

// ListForAdmin implements JobService.
func (s *jobService) ListForAdmin(identity auth.Identity) ([]models.JobWithApplicationCount, error) {
	if !identity.IsAdmin() || identity.Email == "" {
		return nil, apperrors.Unauthenticated("admin access required")
	}
	return s.jobs.ListByAdminWithCounts(identity.Email)
}
