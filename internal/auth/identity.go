package auth

import (
	"github.com/google/uuid"

	"github.com/ZamaMehdi/RecruitProo/internal/models"
)

// Identity is the resolved (userId, email, role) tuple for the current
// request. The zero value is Anonymous: a missing or invalid token
// never produces a partial identity.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
}

var Anonymous = Identity{}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != uuid.Nil
}

func (i Identity) IsAdmin() bool {
	return i.IsAuthenticated() && i.Role == models.RoleAdmin
}
