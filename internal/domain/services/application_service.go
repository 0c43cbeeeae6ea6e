package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/internal/infrastructure/database"
	Logger "jobboard-http-service/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceApplicationService defines the application tracker
type InterfaceApplicationService interface {
	Apply(userID, jobID uint, input *ApplyInput) (*models.Application, error)
	GetApplication(id uint) (*models.Application, error)
	UpdateStatus(admin models.AdminIdentity, id uint, status string) (*models.Application, error)
	DeleteApplication(admin models.AdminIdentity, id uint) error
	ListByJob(jobID uint) ([]models.Application, error)
	ListByJobForAdmin(admin models.AdminIdentity, jobID uint) ([]models.Application, error)
	ListByUser(userID uint) ([]models.Application, error)
	ListByOwnedJobs(admin models.AdminIdentity) ([]models.Application, error)
	History(admin models.AdminIdentity, id uint) ([]models.OperationLog, error)
}

// ApplyInput is the body of an application
type ApplyInput struct {
	ResumeRef   string `json:"resume_ref"`
	CoverLetter string `json:"cover_letter"`
}

// ApplicationService records applications and drives their status
type ApplicationService struct {
	DB       *gorm.DB
	Config   *config.Config
	Jobs     InterfaceJobService
	Resolver InterfaceOwnershipResolver
	Redis    InterfaceRedisService
}

// NewApplicationService creates the tracker; redis may be nil
func NewApplicationService(db *gorm.DB, cfg *config.Config, jobs InterfaceJobService, resolver InterfaceOwnershipResolver, redis InterfaceRedisService) InterfaceApplicationService {
	return &ApplicationService{
		DB:       db,
		Config:   cfg,
		Jobs:     jobs,
		Resolver: resolver,
		Redis:    redis,
	}
}

// 1 Apply creates a pending application and bumps the job counter in one transaction
func (s *ApplicationService) Apply(userID, jobID uint, input *ApplyInput) (*models.Application, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: ResourceUser, ID: userID}
		}
		return nil, err
	}

	job, err := s.Jobs.GetJob(jobID)
	if err != nil {
		return nil, err
	}

	var existing int64
	if err := s.DB.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, &DuplicateApplicationError{UserID: userID, JobID: jobID}
	}

	selfApply, err := s.isPoster(user.Email, job)
	if err != nil {
		return nil, err
	}
	if selfApply {
		return nil, &SelfApplicationError{JobID: jobID}
	}

	resumeRef := strings.TrimSpace(input.ResumeRef)
	if resumeRef == "" {
		return nil, &ValidationError{Field: "resume_ref", Reason: "is required"}
	}

	application := &models.Application{
		JobID:       job.ID,
		UserID:      userID,
		Status:      models.ApplicationStatusPending,
		ResumeRef:   resumeRef,
		CoverLetter: input.CoverLetter,
		JobTitle:    job.Title,
		CompanyName: job.CompanyName,
		AppliedAt:   time.Now(),
	}

	// the unique index on (user_id, job_id) settles concurrent applies that both passed the count check
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(application).Error; err != nil {
			if database.IsDuplicateKeyError(err) {
				return &DuplicateApplicationError{UserID: userID, JobID: jobID}
			}
			return err
		}
		return s.Jobs.IncrementApplicationCount(tx, job.ID)
	})
	if err != nil {
		return nil, err
	}

	Logger.Info("user %d applied to job %d (application %d)", userID, jobID, application.ID)
	invalidateDashboards(s.Redis)
	return application, nil
}

// isPoster reports whether email belongs to the admin that posted job
func (s *ApplicationService) isPoster(email string, job *models.Job) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}
	if strings.EqualFold(email, strings.TrimSpace(job.PostedByEmail)) {
		return true, nil
	}
	if job.PostedByAdminID == nil {
		return false, nil
	}

	var admin models.Admin
	err := s.DB.Select("id", "email").First(&admin, *job.PostedByAdminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.EqualFold(email, strings.TrimSpace(admin.Email)), nil
}

// 2 GetApplication loads an application by id
func (s *ApplicationService) GetApplication(id uint) (*models.Application, error) {
	var application models.Application
	if err := s.DB.First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: ResourceApplication, ID: id}
		}
		return nil, err
	}
	return &application, nil
}

// ownedApplication loads an application whose job the admin owns.
// Applications of deleted jobs have no owner and are refused.
func (s *ApplicationService) ownedApplication(admin models.AdminIdentity, id uint) (*models.Application, error) {
	application, err := s.GetApplication(id)
	if err != nil {
		return nil, err
	}

	job, err := s.Jobs.GetJob(application.JobID)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, &AuthorizationError{AdminID: admin.ID, Resource: ResourceApplication, ID: id}
		}
		return nil, err
	}
	if !s.Resolver.IsOwner(admin, job) {
		return nil, &AuthorizationError{AdminID: admin.ID, Resource: ResourceApplication, ID: id}
	}
	return application, nil
}

// 3 UpdateStatus sets a new status on an owned application.
// Any status in the enum is accepted unless strict transitions are configured.
func (s *ApplicationService) UpdateStatus(admin models.AdminIdentity, id uint, status string) (*models.Application, error) {
	// ownership is resolved before the status value is validated
	application, err := s.ownedApplication(admin, id)
	if err != nil {
		return nil, err
	}

	next, ok := models.ParseApplicationStatus(status)
	if !ok {
		return nil, &ValidationError{Field: "status", Reason: "must be one of pending, reviewed, shortlisted, rejected, accepted"}
	}

	if s.Config != nil && s.Config.StrictStatusTransitions && !application.Status.CanTransitionTo(next) {
		return nil, &StatusTransitionError{From: application.Status, To: next}
	}

	if application.Status == next {
		return application, nil
	}

	previous := application.Status
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(application).Update("status", next).Error; err != nil {
			return err
		}
		return tx.Create(&models.OperationLog{
			OperationType: models.OperationStatusChange,
			AdminID:       admin.ID,
			ApplicationID: application.ID,
			JobID:         application.JobID,
			FromStatus:    previous,
			ToStatus:      next,
			Timestamp:     time.Now(),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	application.Status = next

	Logger.Info("application %d moved %s -> %s by admin %d", id, previous, next, admin.ID)
	invalidateDashboards(s.Redis)
	return application, nil
}

// 4 DeleteApplication removes an owned application; the job counter is left untouched
func (s *ApplicationService) DeleteApplication(admin models.AdminIdentity, id uint) error {
	application, err := s.ownedApplication(admin, id)
	if err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(application).Error; err != nil {
			return err
		}
		return tx.Create(&models.OperationLog{
			OperationType: models.OperationApplicationDelete,
			AdminID:       admin.ID,
			ApplicationID: application.ID,
			JobID:         application.JobID,
			FromStatus:    application.Status,
			Details:       "user " + strconv.FormatUint(uint64(application.UserID), 10),
			Timestamp:     time.Now(),
		}).Error
	})
	if err != nil {
		return err
	}

	invalidateDashboards(s.Redis)
	return nil
}

// 5 ListByJob returns the applications of a job, newest first
func (s *ApplicationService) ListByJob(jobID uint) ([]models.Application, error) {
	applications := []models.Application{}
	err := s.DB.Where("job_id = ?", jobID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

// 6 ListByJobForAdmin is ListByJob gated on ownership
func (s *ApplicationService) ListByJobForAdmin(admin models.AdminIdentity, jobID uint) ([]models.Application, error) {
	if _, err := s.Jobs.GetOwnedJob(admin, jobID); err != nil {
		return nil, err
	}
	return s.ListByJob(jobID)
}

// 7 ListByUser returns a user's applications including those of deleted jobs
func (s *ApplicationService) ListByUser(userID uint) ([]models.Application, error) {
	applications := []models.Application{}
	err := s.DB.Where("user_id = ?", userID).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

// 8 ListByOwnedJobs returns every application to jobs the admin owns
func (s *ApplicationService) ListByOwnedJobs(admin models.AdminIdentity) ([]models.Application, error) {
	jobIDs, err := ownedJobIDs(s.Jobs, admin)
	if err != nil {
		return nil, err
	}

	applications := []models.Application{}
	if len(jobIDs) == 0 {
		return applications, nil
	}

	err = s.DB.Where("job_id IN ?", jobIDs).
		Order("applied_at DESC, id DESC").
		Find(&applications).Error
	return applications, err
}

// 9 History returns the operation log of an owned application, oldest first
func (s *ApplicationService) History(admin models.AdminIdentity, id uint) ([]models.OperationLog, error) {
	if _, err := s.ownedApplication(admin, id); err != nil {
		return nil, err
	}

	logs := []models.OperationLog{}
	err := s.DB.Where("application_id = ?", id).
		Order("id ASC").
		Find(&logs).Error
	return logs, err
}

func ownedJobIDs(jobs InterfaceJobService, admin models.AdminIdentity) ([]uint, error) {
	owned, err := jobs.ListJobsByAdmin(admin)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(owned))
	for _, job := range owned {
		ids = append(ids, job.ID)
	}
	return ids, nil
}
