package services

import (
	"github.com/ZamaMehdi/RecruitProo/internal/apperrors"
	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
	"github.com/ZamaMehdi/RecruitProo/internal/policy"
	"github.com/ZamaMehdi/RecruitProo/internal/repositories"
)

// ApplicationQueryService serves the role-scoped listings: applicants
// see their own applications, admins see applications to jobs they own.
type ApplicationQueryService interface {
	ListOwn(identity auth.Identity) ([]models.Application, error)
	ListForAdmin(identity auth.Identity) ([]models.Application, error)
}

type applicationQueryService struct {
	applications repositories.ApplicationRepository
}

func NewApplicationQueryService(applications repositories.ApplicationRepository) ApplicationQueryService {
	return &applicationQueryService{applications: applications}
}

// ListOwn implements ApplicationQueryService.
func (s *applicationQueryService) ListOwn(identity auth.Identity) ([]models.Application, error) {
	if !policy.CanListOwnApplications(identity) {
		return nil, apperrors.Unauthenticated("authentication required")
	}
	return s.applications.ListByUser(identity.UserID)
}

// ListForAdmin implements ApplicationQueryService. Denial is explicit,
// never a silent empty list.
func (s *applicationQueryService) ListForAdmin(identity auth.Identity) ([]models.Application, error) {
	if !policy.CanListAllApplications(identity) {
		return nil, apperrors.Unauthenticated("admin access required")
	}
	return s.applications.ListByJobOwner(identity.Email)
}
