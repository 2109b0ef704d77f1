package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/repositories"
	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

func answersFor(questions []models.CustomQuestion, values ...string) []models.AnswerInput {
	inputs := make([]models.AnswerInput, 0, len(values))
	for i, v := range values {
		inputs = append(inputs, models.AnswerInput{
			CustomQuestionID: questions[i].ID.String(),
			Answer:           v,
		})
	}
	return inputs
}

func TestSubmitCreatesAggregate(t *testing.T) {
	db := newTestDB(t)
	applicationRepo := repositories.NewApplicationRepository(db)
	svc := services.NewApplicationService(applicationRepo, repositories.NewJobRepository(db))

	admin := adminIdentity("a@corp.com")
	applicant := applicantIdentity("u@mail.com")
	seedUser(t, db, applicant, "Uma")
	job := seedJob(t, db, admin.Email, models.JobStatusActive,
		requiredQuestion(models.QuestionTypeFile, "Upload your resume"),
		optionalQuestion(models.QuestionTypeText, "Anything else?"),
	)

	resume := "https://files/x.pdf"
	application, err := svc.Submit(applicant, job.ID, &models.ApplyRequest{
		Answers:   answersFor(job.CustomQuestions, "https://files/x.pdf"),
		ResumeURL: &resume,
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, application.Status)
	assert.Equal(t, applicant.UserID, application.UserID)
	assert.Len(t, application.Answers, 1)

	detail, err := applicationRepo.FindDetail(application.ID)
	require.NoError(t, err)
	require.Len(t, detail.Answers, 1)
	assert.Equal(t, "Upload your resume", detail.Answers[0].CustomQuestion.Question)
	require.Len(t, detail.ActionLogs, 1)
	assert.Equal(t, "application submitted", detail.ActionLogs[0].Action)
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)
	job := seedJob(t, db, "a@corp.com", models.JobStatusActive)

	_, err := svc.Submit(auth.Anonymous, job.ID, &models.ApplyRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthenticated))
}

func TestSubmitUnknownJob(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)

	_, err := svc.Submit(applicantIdentity("u@mail.com"), uuid.New(), &models.ApplyRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestSubmitClosedJob(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)
	job := seedJob(t, db, "a@corp.com", models.JobStatusClosed)

	_, err := svc.Submit(applicantIdentity("u@mail.com"), job.ID, &models.ApplyRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
}

func TestSubmitMissingRequiredAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)
	// Required questions of every type must be answered, not only FILE.
	job := seedJob(t, db, "a@corp.com", models.JobStatusActive,
		requiredQuestion(models.QuestionTypeText, "Why this role?"),
	)

	_, err := svc.Submit(applicantIdentity("u@mail.com"), job.ID, &models.ApplyRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))

	// A blank answer does not satisfy the requirement either.
	_, err = svc.Submit(applicantIdentity("u2@mail.com"), job.ID, &models.ApplyRequest{
		Answers: answersFor(job.CustomQuestions, "   "),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
}

func TestSubmitRejectsForeignQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)
	job := seedJob(t, db, "a@corp.com", models.JobStatusActive)
	otherJob := seedJob(t, db, "a@corp.com", models.JobStatusActive,
		optionalQuestion(models.QuestionTypeText, "Belongs elsewhere"),
	)

	_, err := svc.Submit(applicantIdentity("u@mail.com"), job.ID, &models.ApplyRequest{
		Answers: answersFor(otherJob.CustomQuestions, "answer"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
}

func TestSubmitDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)
	job := seedJob(t, db, "a@corp.com", models.JobStatusActive)
	applicant := applicantIdentity("u@mail.com")

	_, err := svc.Submit(applicant, job.ID, &models.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.Submit(applicant, job.ID, &models.ApplyRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))

	// A different applicant is unaffected.
	_, err = svc.Submit(applicantIdentity("other@mail.com"), job.ID, &models.ApplyRequest{})
	require.NoError(t, err)
}

// The unique index, not the pre-check, is the correctness mechanism:
// inserting directly through the repository with no existence check
// still resolves to exactly one success and one conflict.
func TestDuplicateBackstopAtStorageLayer(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)
	job := seedJob(t, db, "a@corp.com", models.JobStatusActive)
	userID := uuid.New()

	first := &models.Application{
		ID: uuid.New(), UserID: userID, JobID: job.ID,
		Status: models.StatusPending, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateWithAnswers(first))

	second := &models.Application{
		ID: uuid.New(), UserID: userID, JobID: job.ID,
		Status: models.StatusPending, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	err := repo.CreateWithAnswers(second)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))

	var count int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, job.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// Any of the four statuses may follow any other, and every successful
// transition appends exactly one action log entry.
func TestUpdateStatusTransitionTotality(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)
	svc := services.NewApplicationService(repo, repositories.NewJobRepository(db))

	admin := adminIdentity("a@corp.com")
	job := seedJob(t, db, admin.Email, models.JobStatusActive)
	application, err := svc.Submit(applicantIdentity("u@mail.com"), job.ID, &models.ApplyRequest{})
	require.NoError(t, err)

	statuses := []models.ApplicationStatus{
		models.StatusAccepted, models.StatusRejected, models.StatusOnHold, models.StatusPending,
		models.StatusOnHold, models.StatusAccepted, models.StatusPending, models.StatusRejected,
	}

	logCount := 1 // the submission entry
	for _, status := range statuses {
		updated, err := svc.UpdateStatus(admin, application.ID, string(status))
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		logCount++

		var count int64
		require.NoError(t, db.Model(&models.ActionLog{}).
			Where("application_id = ?", application.ID).
			Count(&count).Error)
		assert.EqualValues(t, logCount, count)
	}
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)

	_, err := svc.UpdateStatus(adminIdentity("a@corp.com"), uuid.New(), "APPROVED")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
}

func TestUpdateStatusForbiddenForNonOwner(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)

	ownerAdmin := adminIdentity("a@corp.com")
	otherAdmin := adminIdentity("b@corp.com")
	job := seedJob(t, db, ownerAdmin.Email, models.JobStatusActive)
	application, err := svc.Submit(applicantIdentity("u@mail.com"), job.ID, &models.ApplyRequest{})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(otherAdmin, application.ID, string(models.StatusAccepted))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))

	// No audit entry for the denied attempt.
	var count int64
	require.NoError(t, db.Model(&models.ActionLog{}).
		Where("application_id = ?", application.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateStatusUnknownApplication(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)

	_, err := svc.UpdateStatus(adminIdentity("a@corp.com"), uuid.New(), string(models.StatusAccepted))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestGetDetailOwnershipAndIdempotence(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewJobRepository(db),
	)

	admin := adminIdentity("a@corp.com")
	applicant := applicantIdentity("u@mail.com")
	seedUser(t, db, applicant, "Uma")
	job := seedJob(t, db, admin.Email, models.JobStatusActive,
		requiredQuestion(models.QuestionTypeText, "Why this role?"),
	)
	application, err := svc.Submit(applicant, job.ID, &models.ApplyRequest{
		Answers: answersFor(job.CustomQuestions, "Because."),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(admin, application.ID, string(models.StatusOnHold))
	require.NoError(t, err)

	first, err := svc.GetDetail(admin, application.ID)
	require.NoError(t, err)
	second, err := svc.GetDetail(admin, application.ID)
	require.NoError(t, err)

	// Idempotent read: identical content with no intervening writes.
	assert.Equal(t, first.Answers, second.Answers)
	assert.Equal(t, first.ActionLogs, second.ActionLogs)

	// Logs newest-first: the transition precedes the submission entry.
	require.Len(t, first.ActionLogs, 2)
	assert.Equal(t, "status changed to ON_HOLD", first.ActionLogs[0].Action)
	assert.Equal(t, "application submitted", first.ActionLogs[1].Action)
	assert.False(t, first.ActionLogs[0].Timestamp.Before(first.ActionLogs[1].Timestamp))

	// Non-owning admin is refused.
	_, err = svc.GetDetail(adminIdentity("b@corp.com"), application.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))

	// Unknown id is NotFound.
	_, err = svc.GetDetail(admin, uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

// Full walkthrough: required FILE question, duplicate submission,
// foreign admin denied, owner accepts with an audit entry.
func TestApplicationLifecycleScenario(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewApplicationRepository(db)
	svc := services.NewApplicationService(repo, repositories.NewJobRepository(db))

	adminA := adminIdentity("a@corp.com")
	adminB := adminIdentity("b@corp.com")
	applicant := applicantIdentity("u@mail.com")
	job := seedJob(t, db, adminA.Email, models.JobStatusActive,
		requiredQuestion(models.QuestionTypeFile, "Resume"),
	)

	submittedAt := time.Now()
	application, err := svc.Submit(applicant, job.ID, &models.ApplyRequest{
		Answers: answersFor(job.CustomQuestions, "https://files/x.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, application.Status)

	_, err = svc.Submit(applicant, job.ID, &models.ApplyRequest{
		Answers: answersFor(job.CustomQuestions, "https://files/x.pdf"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConflict))

	_, err = svc.UpdateStatus(adminB, application.ID, string(models.StatusAccepted))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))

	updated, err := svc.UpdateStatus(adminA, application.ID, string(models.StatusAccepted))
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	detail, err := svc.GetDetail(adminA, application.ID)
	require.NoError(t, err)
	require.Len(t, detail.ActionLogs, 2)
	assert.Equal(t, "status changed to ACCEPTED", detail.ActionLogs[0].Action)
	assert.False(t, detail.ActionLogs[0].Timestamp.Before(submittedAt))
}
