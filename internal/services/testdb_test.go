package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/config"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
)

// newTestDB opens a per-test in-memory database with the production
// schema, including the unique (user_id, job_id) index the duplicate
// tests rely on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func adminIdentity(email string) auth.Identity {
	return auth.Identity{UserID: uuid.New(), Email: email, Role: models.RoleAdmin}
}

func applicantIdentity(email string) auth.Identity {
	return auth.Identity{UserID: uuid.New(), Email: email, Role: models.RoleApplicant}
}

func seedUser(t *testing.T, db *gorm.DB, identity auth.Identity, name string) {
	t.Helper()
	user := models.User{
		ID:        identity.UserID,
		Name:      name,
		Email:     identity.Email,
		Role:      identity.Role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&user).Error)
}

func seedJob(t *testing.T, db *gorm.DB, adminEmail string, status models.JobStatus, questions ...models.CustomQuestion) *models.Job {
	t.Helper()
	job := models.Job{
		ID:              uuid.New(),
		Title:           "Backend Engineer",
		Department:      "Engineering",
		Location:        "Remote",
		Status:          status,
		AdminEmail:      adminEmail,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		CustomQuestions: questions,
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func requiredQuestion(questionType models.QuestionType, text string) models.CustomQuestion {
	return models.CustomQuestion{
		ID:       uuid.New(),
		Question: text,
		Type:     questionType,
		Required: true,
	}
}

func optionalQuestion(questionType models.QuestionType, text string) models.CustomQuestion {
	return models.CustomQuestion{
		ID:       uuid.New(),
		Question: text,
		Type:     questionType,
		Required: false,
	}
}
