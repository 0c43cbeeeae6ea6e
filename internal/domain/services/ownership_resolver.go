package services

import (
	"strings"

	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/pkg/utils"
)

// MatchTier is the rule that tied an admin to a job
type MatchTier int

const (
	MatchNone MatchTier = iota
	MatchByID
	MatchByEmail
	MatchByCompany
)

func (t MatchTier) String() string {
	switch t {
	case MatchByID:
		return "id"
	case MatchByEmail:
		return "email"
	case MatchByCompany:
		return "company"
	}
	return "none"
}

// company names shorter than this never take part in containment matching
const minCompanyMatchLen = 3

// InterfaceOwnershipResolver decides which jobs an admin may manage
type InterfaceOwnershipResolver interface {
	Match(admin models.AdminIdentity, job *models.Job) MatchTier
	IsOwner(admin models.AdminIdentity, job *models.Job) bool
	ResolveOwnedJobs(admin models.AdminIdentity, jobs []models.Job) []models.Job
}

// OwnershipResolver applies the tiered id, email, company matching.
// When a job carries PostedByAdminID that id is the only thing consulted.
type OwnershipResolver struct {
	CompanyMatch bool
}

// NewOwnershipResolver creates a resolver honouring OWNERSHIP_COMPANY_MATCH
func NewOwnershipResolver(cfg *config.Config) InterfaceOwnershipResolver {
	return &OwnershipResolver{
		CompanyMatch: cfg.OwnershipCompanyMatch,
	}
}

// 1 Match returns the first tier tying admin to job
func (r *OwnershipResolver) Match(admin models.AdminIdentity, job *models.Job) MatchTier {
	if job == nil {
		return MatchNone
	}

	if job.PostedByAdminID != nil {
		if *job.PostedByAdminID == admin.ID {
			return MatchByID
		}
		return MatchNone
	}

	adminEmail := strings.TrimSpace(admin.Email)
	if adminEmail != "" && strings.EqualFold(adminEmail, strings.TrimSpace(job.PostedByEmail)) {
		return MatchByEmail
	}

	if r.CompanyMatch && companyContains(admin.CompanyName, job.CompanyName) {
		return MatchByCompany
	}
	return MatchNone
}

// 2 IsOwner reports whether any tier matches
func (r *OwnershipResolver) IsOwner(admin models.AdminIdentity, job *models.Job) bool {
	return r.Match(admin, job) != MatchNone
}

// 3 ResolveOwnedJobs filters jobs down to the ones admin owns, keeping order
func (r *OwnershipResolver) ResolveOwnedJobs(admin models.AdminIdentity, jobs []models.Job) []models.Job {
	owned := make([]models.Job, 0, len(jobs))
	for i := range jobs {
		if r.IsOwner(admin, &jobs[i]) {
			owned = append(owned, jobs[i])
		}
	}
	return owned
}

func companyContains(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if len(a) < minCompanyMatchLen || len(b) < minCompanyMatchLen {
		return false
	}
	return utils.ContainsFold(a, b) || utils.ContainsFold(b, a)
}
