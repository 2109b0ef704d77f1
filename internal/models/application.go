package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
	StatusOnHold   ApplicationStatus = "ON_HOLD"
)

// IsValidApplicationStatus reports membership in the status set. Any
// valid status may follow any other; there is no forward-only ordering.
func IsValidApplicationStatus(status ApplicationStatus) bool {
	switch status {
	case StatusPending, StatusAccepted, StatusRejected, StatusOnHold:
		return true
	default:
		return false
	}
}

type Application struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"userId"`
	JobID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"jobId"`
	Status    ApplicationStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	ResumeURL *string           `gorm:"type:text" json:"resumeUrl,omitempty"`
	CreatedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`

	// Relations
	User       User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Job        Job         `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Answers    []Answer    `gorm:"foreignKey:ApplicationID" json:"answers,omitempty"`
	ActionLogs []ActionLog `gorm:"foreignKey:ApplicationID" json:"actionLogs,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

type Answer struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID    uuid.UUID `gorm:"type:uuid;not null;index" json:"applicationId"`
	CustomQuestionID uuid.UUID `gorm:"type:uuid;not null" json:"customQuestionId"`
	Answer           string    `gorm:"type:text;not null" json:"answer"`

	CustomQuestion CustomQuestion `gorm:"foreignKey:CustomQuestionID" json:"customQuestion,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}

// ActionLog rows are append-only: no operation in this codebase updates
// or deletes one after creation.
type ActionLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index" json:"applicationId"`
	Action        string    `gorm:"type:text;not null" json:"action"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
}

func (ActionLog) TableName() string {
	return "action_logs"
}
