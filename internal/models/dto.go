package models

import "gorm.io/datatypes"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CustomQuestionInput struct {
	Question string `json:"question"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type CreateJobRequest struct {
	Title           string                `json:"title"`
	Department      string                `json:"department"`
	Location        string                `json:"location"`
	Salary          *string               `json:"salary"`
	Status          string                `json:"status"`
	CustomQuestions []CustomQuestionInput `json:"customQuestions"`
}

// UpdateJobRequest is a partial patch; nil fields are left untouched.
// Custom questions are immutable through this path.
type UpdateJobRequest struct {
	Title      *string `json:"title"`
	Department *string `json:"department"`
	Location   *string `json:"location"`
	Salary     *string `json:"salary"`
	Status     *string `json:"status"`
}

type AnswerInput struct {
	CustomQuestionID string `json:"customQuestionId"`
	Answer           string `json:"answer"`
}

type ApplyRequest struct {
	Answers   []AnswerInput `json:"answers"`
	ResumeURL *string       `json:"resumeUrl"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateProfileRequest struct {
	Name           *string         `json:"name"`
	Phone          *string         `json:"phone"`
	Github         *string         `json:"github"`
	Portfolio      *string         `json:"portfolio"`
	Education      *datatypes.JSON `json:"education"`
	WorkExperience *datatypes.JSON `json:"workExperience"`
}

type ProfileResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Github         string         `json:"github"`
	Portfolio      string         `json:"portfolio"`
	Education      datatypes.JSON `json:"education"`
	WorkExperience datatypes.JSON `json:"workExperience"`
}

// JobWithApplicationCount annotates a job for the admin listing.
type JobWithApplicationCount struct {
	Job
	ApplicationCount int64 `json:"applicationCount"`
}

type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
