package models

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusClosed JobStatus = "CLOSED"
)

func IsValidJobStatus(status JobStatus) bool {
	return status == JobStatusActive || status == JobStatusClosed
}

type QuestionType string

const (
	QuestionTypeText    QuestionType = "TEXT"
	QuestionTypeYesNo   QuestionType = "YESNO"
	QuestionTypeFile    QuestionType = "FILE"
	QuestionTypeInteger QuestionType = "INTEGER"
)

func IsValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionTypeText, QuestionTypeYesNo, QuestionTypeFile, QuestionTypeInteger:
		return true
	default:
		return false
	}
}

type Job struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"type:text;not null" json:"title"`
	Department string    `gorm:"type:text;not null" json:"department"`
	Location   string    `gorm:"type:text;not null" json:"location"`
	Salary     *string   `gorm:"type:text" json:"salary,omitempty"`
	Status     JobStatus `gorm:"type:text;not null;default:'ACTIVE'" json:"status"`
	AdminEmail string    `gorm:"type:text;not null;index" json:"adminEmail"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`

	// Relations
	CustomQuestions []CustomQuestion `gorm:"foreignKey:JobID" json:"customQuestions,omitempty"`
	Applications    []Application    `gorm:"foreignKey:JobID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

type CustomQuestion struct {
	ID       uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	JobID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"jobId"`
	Question string       `gorm:"type:text;not null" json:"question"`
	Type     QuestionType `gorm:"type:text;not null;default:'TEXT'" json:"type"`
	Required bool         `gorm:"not null;default:false" json:"required"`
}

func (CustomQuestion) TableName() string {
	return "custom_questions"
}
