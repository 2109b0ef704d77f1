package services

import (
	"time"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/repositories"
)

type UserService interface {
	GetProfile(identity auth.Identity) (*models.ProfileResponse, error)
	UpdateProfile(identity auth.Identity, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type userService struct {
	users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) UserService {
	return &userService{users: users}
}

// GetProfile implements UserService.
func (s *userService) GetProfile(identity auth.Identity) (*models.ProfileResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, apperrors.Unauthenticated("authentication required")
	}
	user, err := s.users.FindByID(identity.UserID)
	if err != nil {
		return nil, err
	}
	return profileResponse(user), nil
}

// UpdateProfile implements UserService. Email and role are never
// patchable through this path.
func (s *userService) UpdateProfile(identity auth.Identity, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	if !identity.IsAuthenticated() {
		return nil, apperrors.Unauthenticated("authentication required")
	}
	user, err := s.users.FindByID(identity.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Github != nil {
		user.Github = *req.Github
	}
	if req.Portfolio != nil {
		user.Portfolio = *req.Portfolio
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.WorkExperience != nil {
		user.WorkExperience = *req.WorkExperience
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return profileResponse(user), nil
}

func profileResponse(user *models.User) *models.ProfileResponse {
	return &models.ProfileResponse{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		Github:         user.Github,
		Portfolio:      user.Portfolio,
		Education:      user.Education,
		WorkExperience: user.WorkExperience,
	}
}
