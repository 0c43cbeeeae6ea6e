package services

import (
	"fmt"
	"strings"
	"time"

	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/infrastructure/config"
	Logger "jobboard-http-service/pkg/logger"
	"jobboard-http-service/pkg/utils"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// InterfaceDashboardService defines the candidate dashboard projections
type InterfaceDashboardService interface {
	Summarize(admin models.AdminIdentity) (*StatusSummary, error)
	FilterCandidates(admin models.AdminIdentity, filter CandidateFilter) ([]Candidate, error)
	JobBreakdown(admin models.AdminIdentity) ([]JobBreakdown, error)
}

// StatusSummary counts applications across the admin's jobs
type StatusSummary struct {
	Total    int64                              `json:"total"`
	ByStatus map[models.ApplicationStatus]int64 `json:"by_status"`
}

// Candidate is an application enriched with the applicant's contact details
type Candidate struct {
	models.Application
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
}

// CandidateFilter narrows FilterCandidates; Status "" or "all" disables the status filter
type CandidateFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// JobBreakdown is one owned job with its per-status application counts
type JobBreakdown struct {
	JobID            uint                               `json:"job_id"`
	Title            string                             `json:"title"`
	Status           models.JobStatus                   `json:"status"`
	ApplicationCount int64                              `json:"application_count"`
	ViewCount        int64                              `json:"view_count"`
	ByStatus         map[models.ApplicationStatus]int64 `json:"by_status"`
}

// DashboardService builds read-only projections for admins
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
	Jobs   InterfaceJobService
	Redis  InterfaceRedisService
	group  singleflight.Group
}

// NewDashboardService creates the aggregator; redis may be nil
func NewDashboardService(db *gorm.DB, cfg *config.Config, jobs InterfaceJobService, redis InterfaceRedisService) InterfaceDashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
		Jobs:   jobs,
		Redis:  redis,
	}
}

type statusCount struct {
	JobID  uint
	Status models.ApplicationStatus
	Count  int64
}

func emptyStatusCounts() map[models.ApplicationStatus]int64 {
	counts := make(map[models.ApplicationStatus]int64, len(models.ApplicationStatuses))
	for _, status := range models.ApplicationStatuses {
		counts[status] = 0
	}
	return counts
}

// 1 Summarize counts the admin's applications by status
func (s *DashboardService) Summarize(admin models.AdminIdentity) (*StatusSummary, error) {
	var summary StatusSummary
	err := s.cached("summary", admin, &summary, func() (interface{}, error) {
		return s.computeSummary(admin)
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *DashboardService) computeSummary(admin models.AdminIdentity) (*StatusSummary, error) {
	summary := &StatusSummary{ByStatus: emptyStatusCounts()}

	jobIDs, err := ownedJobIDs(s.Jobs, admin)
	if err != nil || len(jobIDs) == 0 {
		return summary, err
	}

	var rows []statusCount
	if err := s.DB.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Where("job_id IN ?", jobIDs).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		summary.ByStatus[row.Status] += row.Count
		summary.Total += row.Count
	}
	return summary, nil
}

// 2 FilterCandidates lists applications to the admin's jobs matching search and status
func (s *DashboardService) FilterCandidates(admin models.AdminIdentity, filter CandidateFilter) ([]Candidate, error) {
	candidates := []Candidate{}

	query := s.DB.Table("applications").
		Select("applications.*, users.name AS applicant_name, users.email AS applicant_email").
		Joins("LEFT JOIN users ON users.id = applications.user_id")

	if raw := strings.TrimSpace(filter.Status); raw != "" && !strings.EqualFold(raw, "all") {
		status, ok := models.ParseApplicationStatus(raw)
		if !ok {
			return nil, &ValidationError{Field: "status", Reason: "must be all or one of pending, reviewed, shortlisted, rejected, accepted"}
		}
		query = query.Where("applications.status = ?", status)
	}

	jobIDs, err := ownedJobIDs(s.Jobs, admin)
	if err != nil {
		return nil, err
	}
	if len(jobIDs) == 0 {
		return candidates, nil
	}
	query = query.Where("applications.job_id IN ?", jobIDs)

	if strings.TrimSpace(filter.Search) != "" {
		like := utils.ContainsPattern(filter.Search)
		query = query.Where(
			"LOWER(users.name) LIKE ? ESCAPE '!' OR LOWER(users.email) LIKE ? ESCAPE '!' OR LOWER(applications.job_title) LIKE ? ESCAPE '!'",
			like, like, like,
		)
	}

	if err := query.Order("applications.applied_at DESC, applications.id DESC").Scan(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// 3 JobBreakdown returns per-job counters for every job the admin owns
func (s *DashboardService) JobBreakdown(admin models.AdminIdentity) ([]JobBreakdown, error) {
	var breakdown []JobBreakdown
	err := s.cached("jobs", admin, &breakdown, func() (interface{}, error) {
		return s.computeJobBreakdown(admin)
	})
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

func (s *DashboardService) computeJobBreakdown(admin models.AdminIdentity) ([]JobBreakdown, error) {
	owned, err := s.Jobs.ListJobsByAdmin(admin)
	if err != nil {
		return nil, err
	}

	breakdown := make([]JobBreakdown, 0, len(owned))
	if len(owned) == 0 {
		return breakdown, nil
	}

	index := make(map[uint]int, len(owned))
	jobIDs := make([]uint, 0, len(owned))
	for i, job := range owned {
		index[job.ID] = i
		jobIDs = append(jobIDs, job.ID)
		breakdown = append(breakdown, JobBreakdown{
			JobID:            job.ID,
			Title:            job.Title,
			Status:           job.Status,
			ApplicationCount: job.ApplicationCount,
			ViewCount:        job.ViewCount,
			ByStatus:         emptyStatusCounts(),
		})
	}

	var rows []statusCount
	if err := s.DB.Model(&models.Application{}).
		Select("job_id, status, COUNT(*) AS count").
		Where("job_id IN ?", jobIDs).
		Group("job_id, status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		if i, ok := index[row.JobID]; ok {
			breakdown[i].ByStatus[row.Status] += row.Count
		}
	}
	return breakdown, nil
}

// cached serves dest from redis when possible and collapses concurrent misses into one computation
func (s *DashboardService) cached(kind string, admin models.AdminIdentity, dest interface{}, compute func() (interface{}, error)) error {
	key := s.cacheKey(kind, admin)
	if key != "" {
		if err := s.Redis.Get(key, dest); err == nil {
			return nil
		}
	}

	flightKey := key
	if flightKey == "" {
		flightKey = fmt.Sprintf("%s:%d:%s:%s", kind, admin.ID, admin.Email, admin.CompanyName)
	}

	v, err, _ := s.group.Do(flightKey, func() (interface{}, error) {
		result, err := compute()
		if err != nil {
			return nil, err
		}
		if key != "" {
			if err := s.Redis.Set(key, result, s.ttl()); err != nil {
				Logger.Warning("failed to cache dashboard %s for admin %d: %v", kind, admin.ID, err)
			}
		}
		return result, nil
	})
	if err != nil {
		return err
	}

	switch d := dest.(type) {
	case *StatusSummary:
		*d = *v.(*StatusSummary)
	case *[]JobBreakdown:
		*d = v.([]JobBreakdown)
	default:
		return fmt.Errorf("unsupported dashboard projection %T", dest)
	}
	return nil
}

// cacheKey is empty when redis is unavailable
func (s *DashboardService) cacheKey(kind string, admin models.AdminIdentity) string {
	if s.Redis == nil {
		return ""
	}
	version, err := s.Redis.DashboardVersion()
	if err != nil {
		Logger.Warning("dashboard cache unavailable: %v", err)
		return ""
	}
	// email and company are part of the identity the resolver matches on
	return fmt.Sprintf("dashboard:v%d:%s:%d:%s:%s", version, kind, admin.ID,
		strings.ToLower(admin.Email), strings.ToLower(admin.CompanyName))
}

func (s *DashboardService) ttl() time.Duration {
	if s.Config != nil && s.Config.DashboardCacheTTL > 0 {
		return s.Config.DashboardCacheTTL
	}
	return 30 * time.Second
}
