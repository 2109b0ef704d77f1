package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleAdmin     Role = "ADMIN"
)

func IsValidRole(role Role) bool {
	return role == RoleApplicant || role == RoleAdmin
}

type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"type:text" json:"name"`
	Email          string         `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password       string         `gorm:"type:text" json:"-"`
	Role           Role           `gorm:"type:text;not null;default:'APPLICANT'" json:"role"`
	Phone          string         `gorm:"type:text" json:"phone"`
	Github         string         `gorm:"type:text" json:"github"`
	Portfolio      string         `gorm:"type:text" json:"portfolio"`
	Education      datatypes.JSON `gorm:"type:json" json:"education"`
	WorkExperience datatypes.JSON `gorm:"type:json" json:"workExperience"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Applications []Application `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// EducationEntry and WorkExperienceEntry describe the structured
// records stored inside the User JSON profile columns.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

type WorkExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}
