package services

import (
	"path/filepath"
	"testing"
	"time"

	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/internal/infrastructure/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	cfg       *config.Config
	resolver  InterfaceOwnershipResolver
	jobs      InterfaceJobService
	apps      InterfaceApplicationService
	dashboard InterfaceDashboardService
	identity  InterfaceIdentityService
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBDriver:              "sqlite",
		DBName:                filepath.Join(t.TempDir(), "jobboard.sqlite"),
		DBLogLevel:            "silent",
		JWTSecretKey:          "test-secret",
		JWTExpiryHours:        1,
		OwnershipCompanyMatch: true,
		DashboardCacheTTL:     time.Minute,
	}
}

func newFixture(t *testing.T, redis InterfaceRedisService, tweak ...func(*config.Config)) *fixture {
	t.Helper()
	cfg := testConfig(t)
	for _, fn := range tweak {
		fn(cfg)
	}

	pool, err := database.NewConnectionPool(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	require.NoError(t, database.Migrate(pool.DB, "auto"))

	resolver := NewOwnershipResolver(cfg)
	jobs := NewJobService(pool.DB, cfg, resolver, redis)
	return &fixture{
		db:        pool.DB,
		cfg:       cfg,
		resolver:  resolver,
		jobs:      jobs,
		apps:      NewApplicationService(pool.DB, cfg, jobs, resolver, redis),
		dashboard: NewDashboardService(pool.DB, cfg, jobs, redis),
		identity:  NewIdentityService(pool.DB, cfg, NewJWTService(cfg)),
	}
}

// admin inserts an admin row directly; bcrypt is only exercised in the identity tests
func (f *fixture) admin(t *testing.T, email, company string) models.AdminIdentity {
	t.Helper()
	admin := &models.Admin{Email: email, Password: "x", Name: email, CompanyName: company}
	require.NoError(t, f.db.Create(admin).Error)
	return admin.Identity()
}

func (f *fixture) user(t *testing.T, email, name string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "x", Name: name}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func (f *fixture) job(t *testing.T, admin models.AdminIdentity, title string) *models.Job {
	t.Helper()
	id := admin.ID
	job, err := f.jobs.CreateJob(&CreateJobInput{
		Title:           title,
		CompanyName:     admin.CompanyName,
		Location:        "Remote",
		Status:          "published",
		PostedByEmail:   admin.Email,
		PostedByAdminID: &id,
	})
	require.NoError(t, err)
	return job
}

// legacyJob has only an email recorded, like postings from the old flow
func (f *fixture) legacyJob(t *testing.T, email, company, title string) *models.Job {
	t.Helper()
	job, err := f.jobs.CreateJob(&CreateJobInput{
		Title:         title,
		CompanyName:   company,
		PostedByEmail: email,
	})
	require.NoError(t, err)
	return job
}

func (f *fixture) apply(t *testing.T, userID, jobID uint) *models.Application {
	t.Helper()
	app, err := f.apps.Apply(userID, jobID, &ApplyInput{ResumeRef: "https://files.example.com/cv.pdf"})
	require.NoError(t, err)
	return app
}

func (f *fixture) applicationCount(t *testing.T, jobID uint) int64 {
	t.Helper()
	job, err := f.jobs.GetJob(jobID)
	require.NoError(t, err)
	return job.ApplicationCount
}

func (f *fixture) storedApplications(t *testing.T, jobID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&n).Error)
	return n
}
