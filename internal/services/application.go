package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/policy"
	"github.com/ZamaMehdi/RecruitProo/internal/repositories"
)

// ApplicationService owns the application lifecycle: submission with
// its answers, status transitions with their audit entries, and the
// owner-scoped detail read.
type ApplicationService interface {
	Submit(identity auth.Identity, jobID uuid.UUID, req *models.ApplyRequest) (*models.Application, error)
	UpdateStatus(identity auth.Identity, applicationID uuid.UUID, status string) (*models.Application, error)
	GetDetail(identity auth.Identity, applicationID uuid.UUID) (*models.Application, error)
}

type applicationService struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
) ApplicationService {
	return &applicationService{
		applications: applications,
		jobs:         jobs,
	}
}

// Submit implements ApplicationService.
func (s *applicationService) Submit(identity auth.Identity, jobID uuid.UUID, req *models.ApplyRequest) (*models.Application, error) {
	if !policy.CanCreateApplication(identity) {
		return nil, apperrors.Unauthenticated("authentication required")
	}

	job, err := s.jobs.FindByIDWithQuestions(jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.Validation("job is not accepting applications")
	}

	// Optimization only: the unique index on (user_id, job_id) is what
	// actually decides concurrent duplicates.
	exists, err := s.applications.ExistsByUserAndJob(identity.UserID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("You have already applied to this job.")
	}

	answers, err := buildAnswers(job, req.Answers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	application := &models.Application{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		JobID:     jobID,
		Status:    models.StatusPending,
		ResumeURL: req.ResumeURL,
		CreatedAt: now,
		UpdatedAt: now,
		Answers:   answers,
		ActionLogs: []models.ActionLog{
			{
				ID:        uuid.New(),
				Action:    "application submitted",
				Timestamp: now,
			},
		},
	}

	if err := s.applications.CreateWithAnswers(application); err != nil {
		return nil, err
	}
	return application, nil
}

// buildAnswers validates submitted answers against the job's question
// set. Every required question needs a non-empty answer, whatever its
// type, and answers must reference questions that belong to the job.
func buildAnswers(job *models.Job, inputs []models.AnswerInput) ([]models.Answer, error) {
	questionsByID := make(map[uuid.UUID]models.CustomQuestion, len(job.CustomQuestions))
	for _, q := range job.CustomQuestions {
		questionsByID[q.ID] = q
	}

	answered := make(map[uuid.UUID]bool, len(inputs))
	answers := make([]models.Answer, 0, len(inputs))
	for _, input := range inputs {
		questionID, err := uuid.Parse(input.CustomQuestionID)
		if err != nil {
			return nil, apperrors.Validation("invalid customQuestionId")
		}
		if _, ok := questionsByID[questionID]; !ok {
			return nil, apperrors.Validation("answer references a question that does not belong to this job")
		}
		if answered[questionID] {
			return nil, apperrors.Validation("duplicate answer for question")
		}
		answered[questionID] = true

		if strings.TrimSpace(input.Answer) != "" {
			answers = append(answers, models.Answer{
				ID:               uuid.New(),
				CustomQuestionID: questionID,
				Answer:           input.Answer,
			})
		}
	}

	for _, q := range job.CustomQuestions {
		if !q.Required {
			continue
		}
		if !hasAnswer(answers, q.ID) {
			return nil, apperrors.Validation(fmt.Sprintf("missing answer for required question: %s", q.Question))
		}
	}

	return answers, nil
}

func hasAnswer(answers []models.Answer, questionID uuid.UUID) bool {
	for _, a := range answers {
		if a.CustomQuestionID == questionID {
			return true
		}
	}
	return false
}

// UpdateStatus implements ApplicationService. Any of the four statuses
// may follow any other; the set is deliberately unordered. The status
// write and its audit entry commit atomically in the repository.
func (s *applicationService) UpdateStatus(identity auth.Identity, applicationID uuid.UUID, status string) (*models.Application, error) {
	newStatus := models.ApplicationStatus(status)
	if !models.IsValidApplicationStatus(newStatus) {
		return nil, apperrors.Validation("Invalid status")
	}

	application, err := s.applications.FindByIDWithJob(applicationID)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdateApplicationStatus(identity, application.Job.AdminEmail) {
		return nil, apperrors.Forbidden("not allowed to update this application")
	}

	action := fmt.Sprintf("status changed to %s", newStatus)
	return s.applications.UpdateStatusWithLog(applicationID, newStatus, action)
}

// GetDetail implements ApplicationService. Ownership runs through the
// application's job; non-owning admins are refused before any of the
// aggregate reaches them.
func (s *applicationService) GetDetail(identity auth.Identity, applicationID uuid.UUID) (*models.Application, error) {
	application, err := s.applications.FindDetail(applicationID)
	if err != nil {
		return nil, err
	}

	if !policy.CanViewApplicationDetail(identity, application.Job.AdminEmail) {
		return nil, apperrors.Forbidden("not allowed to view this application")
	}
	return application, nil
}
