package services

import (
	"errors"
	"strings"

	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/infrastructure/config"
	Logger "jobboard-http-service/pkg/logger"
	"jobboard-http-service/pkg/utils"

	"gorm.io/gorm"
)

// InterfaceJobService defines the job store
type InterfaceJobService interface {
	CreateJob(input *CreateJobInput) (*models.Job, error)
	GetJob(id uint) (*models.Job, error)
	ListJobs(filter JobFilter) ([]models.Job, int64, error)
	UpdateJob(admin models.AdminIdentity, id uint, input *UpdateJobInput) (*models.Job, error)
	DeleteJob(admin models.AdminIdentity, id uint) error
	RecordView(id uint) error
	IncrementApplicationCount(tx *gorm.DB, id uint) error
	ListJobsByAdmin(admin models.AdminIdentity) ([]models.Job, error)
	GetOwnedJob(admin models.AdminIdentity, id uint) (*models.Job, error)
}

// CreateJobInput carries the fields of a new posting.
// PostedByEmail and PostedByAdminID are filled from the verified admin, never from the request body.
type CreateJobInput struct {
	Title           string `json:"title" validate:"required,max=200"`
	CompanyName     string `json:"company_name" validate:"required,max=191"`
	Location        string `json:"location" validate:"max=200"`
	Description     string `json:"description"`
	EmploymentType  string `json:"employment_type" validate:"max=50"`
	SalaryRange     string `json:"salary_range" validate:"max=100"`
	Status          string `json:"status"`
	PostedByEmail   string `json:"-"`
	PostedByAdminID *uint  `json:"-"`
}

// UpdateJobInput holds the editable fields; nil means unchanged
type UpdateJobInput struct {
	Title          *string `json:"title" validate:"omitempty,min=1,max=200"`
	CompanyName    *string `json:"company_name" validate:"omitempty,min=1,max=191"`
	Location       *string `json:"location" validate:"omitempty,max=200"`
	Description    *string `json:"description"`
	EmploymentType *string `json:"employment_type" validate:"omitempty,max=50"`
	SalaryRange    *string `json:"salary_range" validate:"omitempty,max=100"`
	Status         *string `json:"status"`
}

// JobFilter narrows ListJobs
type JobFilter struct {
	Status   string `form:"status"`
	Search   string `form:"search"`
	Location string `form:"location"`
	models.PaginationQuery
}

// JobService persists job postings
type JobService struct {
	DB       *gorm.DB
	Config   *config.Config
	Resolver InterfaceOwnershipResolver
	Redis    InterfaceRedisService
}

// NewJobService creates the job store; redis may be nil
func NewJobService(db *gorm.DB, cfg *config.Config, resolver InterfaceOwnershipResolver, redis InterfaceRedisService) InterfaceJobService {
	return &JobService{
		DB:       db,
		Config:   cfg,
		Resolver: resolver,
		Redis:    redis,
	}
}

// 1 CreateJob validates and stores a new posting with zeroed counters
func (s *JobService) CreateJob(input *CreateJobInput) (*models.Job, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	status := models.JobStatusDraft
	if input.Status != "" {
		parsed, ok := models.ParseJobStatus(input.Status)
		if !ok {
			return nil, &ValidationError{Field: "status", Reason: "must be draft, published or closed"}
		}
		status = parsed
	}

	job := &models.Job{
		Title:           input.Title,
		CompanyName:     input.CompanyName,
		Location:        input.Location,
		Description:     input.Description,
		EmploymentType:  input.EmploymentType,
		SalaryRange:     input.SalaryRange,
		PostedByEmail:   strings.TrimSpace(input.PostedByEmail),
		PostedByAdminID: input.PostedByAdminID,
		Status:          status,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}

	invalidateDashboards(s.Redis)
	return job, nil
}

// 2 GetJob loads a job by id
func (s *JobService) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: ResourceJob, ID: id}
		}
		return nil, err
	}
	return &job, nil
}

// 3 ListJobs returns one page of jobs, newest first, plus the total match count
func (s *JobService) ListJobs(filter JobFilter) ([]models.Job, int64, error) {
	filter.Normalize()

	query := s.DB.Model(&models.Job{})

	if filter.Status != "" {
		status, ok := models.ParseJobStatus(filter.Status)
		if !ok {
			return nil, 0, &ValidationError{Field: "status", Reason: "must be draft, published or closed"}
		}
		query = query.Where("status = ?", status)
	}

	if strings.TrimSpace(filter.Search) != "" {
		like := utils.ContainsPattern(filter.Search)
		query = query.Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(company_name) LIKE ? ESCAPE '!'", like, like)
	}

	if strings.TrimSpace(filter.Location) != "" {
		query = query.Where("LOWER(location) LIKE ? ESCAPE '!'", utils.ContainsPattern(filter.Location))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	jobs := []models.Job{}
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(filter.PageSize).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// 4 UpdateJob edits an owned job; title and company changes are copied onto its applications
func (s *JobService) UpdateJob(admin models.AdminIdentity, id uint, input *UpdateJobInput) (*models.Job, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	job, err := s.GetOwnedJob(admin, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	snapshot := map[string]interface{}{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, &ValidationError{Field: "title", Reason: "is required"}
		}
		updates["title"] = title
		snapshot["job_title"] = title
	}
	if input.CompanyName != nil {
		company := strings.TrimSpace(*input.CompanyName)
		if company == "" {
			return nil, &ValidationError{Field: "company_name", Reason: "is required"}
		}
		updates["company_name"] = company
		snapshot["company_name"] = company
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.EmploymentType != nil {
		updates["employment_type"] = *input.EmploymentType
	}
	if input.SalaryRange != nil {
		updates["salary_range"] = *input.SalaryRange
	}
	if input.Status != nil {
		status, ok := models.ParseJobStatus(*input.Status)
		if !ok {
			return nil, &ValidationError{Field: "status", Reason: "must be draft, published or closed"}
		}
		updates["status"] = status
	}

	if len(updates) == 0 {
		return job, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(job).Updates(updates).Error; err != nil {
			return err
		}
		if len(snapshot) > 0 {
			return tx.Model(&models.Application{}).Where("job_id = ?", job.ID).Updates(snapshot).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// the per-job breakdown carries title and status; company changes move jobs between admins
	invalidateDashboards(s.Redis)
	return s.GetJob(id)
}

// 5 DeleteJob removes an owned job; its applications are kept for the applicants' history
func (s *JobService) DeleteJob(admin models.AdminIdentity, id uint) error {
	job, err := s.GetOwnedJob(admin, id)
	if err != nil {
		return err
	}

	if err := s.DB.Delete(job).Error; err != nil {
		return err
	}

	Logger.Info("job %d deleted by admin %d", job.ID, admin.ID)
	invalidateDashboards(s.Redis)
	return nil
}

// 6 RecordView atomically bumps the view counter
func (s *JobService) RecordView(id uint) error {
	result := s.DB.Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: ResourceJob, ID: id}
	}
	return nil
}

// 7 IncrementApplicationCount atomically bumps the application counter inside tx
func (s *JobService) IncrementApplicationCount(tx *gorm.DB, id uint) error {
	if tx == nil {
		tx = s.DB
	}
	result := tx.Model(&models.Job{}).
		Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: ResourceJob, ID: id}
	}
	return nil
}

// 8 ListJobsByAdmin returns every job the admin owns under any tier, newest first
func (s *JobService) ListJobsByAdmin(admin models.AdminIdentity) ([]models.Job, error) {
	var candidates []models.Job
	// jobs tagged with another admin's id can never match, so skip them in SQL
	if err := s.DB.
		Where("posted_by_admin_id = ? OR posted_by_admin_id IS NULL", admin.ID).
		Order("created_at DESC, id DESC").
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	return s.Resolver.ResolveOwnedJobs(admin, candidates), nil
}

// 9 GetOwnedJob loads a job and checks the admin owns it
func (s *JobService) GetOwnedJob(admin models.AdminIdentity, id uint) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}
	if !s.Resolver.IsOwner(admin, job) {
		return nil, &AuthorizationError{AdminID: admin.ID, Resource: ResourceJob, ID: id}
	}
	return job, nil
}

// invalidateDashboards is best effort; stale entries still expire with their TTL
func invalidateDashboards(redis InterfaceRedisService) {
	if redis == nil {
		return
	}
	if err := redis.InvalidateDashboards(); err != nil {
		Logger.Warning("failed to invalidate dashboard cache: %v", err)
	}
}
