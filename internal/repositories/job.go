package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindByIDWithQuestions(id uuid.UUID) (*models.Job, error)
	ListActive() ([]models.Job, error)
	ListByAdminWithCounts(adminEmail string) ([]models.JobWithApplicationCount, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository. Nested custom questions are created
// in the same transaction as the job row.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return apperrors.Internal("failed to create job", err)
	}
	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, apperrors.Internal("failed to find job", err)
	}
	return &job, nil
}

// FindByIDWithQuestions implements JobRepository.
func (r *jobRepository) FindByIDWithQuestions(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Preload("CustomQuestions").Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("job not found")
		}
		return nil, apperrors.Internal("failed to find job", err)
	}
	return &job, nil
}

// ListActive implements JobRepository. Only ACTIVE jobs are publicly
// listable; questions are included for the application form.
func (r *jobRepository) ListActive() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Preload("CustomQuestions").
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list jobs", err)
	}
	return jobs, nil
}

// ListByAdminWithCounts implements JobRepository.
func (r *jobRepository) ListByAdminWithCounts(adminEmail string) ([]models.JobWithApplicationCount, error) {
	var jobs []models.Job
	err := r.db.
		Preload("CustomQuestions").
		Where("admin_email = ?", adminEmail).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list jobs", err)
	}

	if len(jobs) == 0 {
		return []models.JobWithApplicationCount{}, nil
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}

	type jobCount struct {
		JobID uuid.UUID
		Count int64
	}
	var counts []jobCount
	err = r.db.Model(&models.Application{}).
		Select("job_id, count(*) as count").
		Where("job_id IN ?", jobIDs).
		Group("job_id").
		Scan(&counts).Error
	if err != nil {
		return nil, apperrors.Internal("failed to count applications", err)
	}

	countByJob := make(map[uuid.UUID]int64, len(counts))
	for _, c := range counts {
		countByJob[c.JobID] = c.Count
	}

	annotated := make([]models.JobWithApplicationCount, 0, len(jobs))
	for _, job := range jobs {
		annotated = append(annotated, models.JobWithApplicationCount{
			Job:              job,
			ApplicationCount: countByJob[job.ID],
		})
	}
	return annotated, nil
}

// Update implements JobRepository. Only the patched columns are
// touched; custom questions are immutable through this path.
func (r *jobRepository) Update(id uuid.UUID, updates map[string]interface{}) (*models.Job, error) {
	result := r.db.Model(&models.Job{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, apperrors.Internal("failed to update job", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("job not found")
	}
	return r.FindByIDWithQuestions(id)
}
