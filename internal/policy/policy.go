// Package policy holds the access decisions for every protected
// operation. Handlers never re-derive these predicates inline; keeping
// them in one place prevents drift between endpoints.
package policy

import (
	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/models"
)

// CanListAllApplications allows an admin with a resolved email to list
// applications across their jobs.
func CanListAllApplications(identity auth.Identity) bool {
	return identity.IsAdmin() && identity.Email != ""
}

// CanViewApplicationDetail allows only the admin owning the
// application's job. Ownership is derived transitively through the job,
// never from the application row itself.
func CanViewApplicationDetail(identity auth.Identity, jobOwnerEmail string) bool {
	return identity.IsAdmin() && identity.Email != "" && identity.Email == jobOwnerEmail
}

func CanUpdateApplicationStatus(identity auth.Identity, jobOwnerEmail string) bool {
	return CanViewApplicationDetail(identity, jobOwnerEmail)
}

// CanCreateApplication requires authentication only; role is
// irrelevant for applying.
func CanCreateApplication(identity auth.Identity) bool {
	return identity.IsAuthenticated()
}

func CanManageJob(identity auth.Identity, job *models.Job) bool {
	return identity.IsAdmin() && identity.Email != "" && identity.Email == job.AdminEmail
}

func CanListOwnApplications(identity auth.Identity) bool {
	return identity.IsAuthenticated()
}
