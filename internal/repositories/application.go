package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
)

type ApplicationRepository interface {
	CreateWithAnswers(application *models.Application) error
	ExistsByUserAndJob(userID, jobID uuid.UUID) (bool, error)
	FindByIDWithJob(id uuid.UUID) (*models.Application, error)
	FindDetail(id uuid.UUID) (*models.Application, error)
	UpdateStatusWithLog(id uuid.UUID, status models.ApplicationStatus, action string) (*models.Application, error)
	ListByUser(userID uuid.UUID) ([]models.Application, error)
	ListByJobOwner(adminEmail string) ([]models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// CreateWithAnswers implements ApplicationRepository. The application,
// its answers, and the initial action log row are one atomic unit. The
// unique (user_id, job_id) index resolves concurrent duplicates: the
// losing insert surfaces as a conflict here regardless of any earlier
// existence check.
func (r *applicationRepository) CreateWithAnswers(application *models.Application) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(application).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("You have already applied to this job.")
		}
		return apperrors.Internal("failed to create application", err)
	}
	return nil
}

// ExistsByUserAndJob implements ApplicationRepository.
func (r *applicationRepository) ExistsByUserAndJob(userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Internal("failed to check existing application", err)
	}
	return count > 0, nil
}

// FindByIDWithJob implements ApplicationRepository. The job is loaded
// alongside because ownership checks run against its admin email.
func (r *applicationRepository) FindByIDWithJob(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Where("id = ?", id).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, apperrors.Internal("failed to find application", err)
	}
	return &application, nil
}

// FindDetail implements ApplicationRepository. Answers carry their
// question text and action logs come back newest-first.
func (r *applicationRepository) FindDetail(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.
		Preload("User").
		Preload("Job").
		Preload("Answers.CustomQuestion").
		Preload("ActionLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp DESC")
		}).
		Where("id = ?", id).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, apperrors.Internal("failed to find application", err)
	}
	return &application, nil
}

// UpdateStatusWithLog implements ApplicationRepository. The status
// change and its audit entry commit together; a crash between them
// cannot leave an unlogged transition.
func (r *applicationRepository) UpdateStatusWithLog(id uuid.UUID, status models.ApplicationStatus, action string) (*models.Application, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		entry := models.ActionLog{
			ID:            uuid.New(),
			ApplicationID: id,
			Action:        action,
			Timestamp:     time.Now(),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, apperrors.Internal("failed to update application status", err)
	}
	return r.FindByIDWithJob(id)
}

// ListByUser implements ApplicationRepository.
func (r *applicationRepository) ListByUser(userID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list applications", err)
	}
	return applications, nil
}

// ListByJobOwner implements ApplicationRepository. Access to a row is
// derived transitively through its job's owning admin, so the filter
// joins on jobs rather than any column of the application itself.
func (r *applicationRepository) ListByJobOwner(adminEmail string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.admin_email = ?", adminEmail).
		Preload("User").
		Preload("Job").
		Order("applications.created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list applications", err)
	}
	return applications, nil
}
