package services

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/repositories"
)

type AuthService interface {
	Register(req *models.RegisterRequest) (*models.UserResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	users  repositories.UserRepository
	tokens *auth.TokenProvider
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenProvider) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register implements AuthService.
func (s *authService) Register(req *models.RegisterRequest) (*models.UserResponse, error) {
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, apperrors.Validation("Missing required fields")
	}
	role := models.Role(req.Role)
	if !models.IsValidRole(role) {
		return nil, apperrors.Validation("invalid role")
	}

	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, apperrors.Conflict("User already exists")
	} else if !apperrors.Is(err, apperrors.CodeNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return &models.UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}

// Login implements AuthService. Bad email and bad password are not
// distinguished in the response.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("Missing required fields")
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, apperrors.Unauthenticated("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthenticated("invalid credentials")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.Internal("failed to issue token", err)
	}

	return &models.LoginResponse{
		Token: token,
		User: models.UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}
