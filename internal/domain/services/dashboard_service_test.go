package services

import (
	"testing"
	"time"

	"jobboard-http-service/internal/domain/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardScenario struct {
	acme, globex models.AdminIdentity
	jobA, jobB   *models.Job
	alice, bob   *models.User
}

func seedDashboard(t *testing.T, f *fixture) dashboardScenario {
	t.Helper()
	s := dashboardScenario{
		acme:   f.admin(t, "hr@acme.io", "Acme"),
		globex: f.admin(t, "hr@globex.io", "Globex"),
		alice:  f.user(t, "alice@mail.io", "Alice Smith"),
		bob:    f.user(t, "bob@mail.io", "Bob Jones"),
	}
	s.jobA = f.job(t, s.acme, "Go Developer")
	s.jobB = f.job(t, s.acme, "Product Designer")
	globexJob := f.job(t, s.globex, "Accountant")

	appAliceA := f.apply(t, s.alice.ID, s.jobA.ID)
	f.apply(t, s.bob.ID, s.jobA.ID)
	f.apply(t, s.alice.ID, s.jobB.ID)
	f.apply(t, s.bob.ID, globexJob.ID)

	_, err := f.apps.UpdateStatus(s.acme, appAliceA.ID, "shortlisted")
	require.NoError(t, err)
	return s
}

func TestSummarize(t *testing.T) {
	f := newFixture(t, nil)
	s := seedDashboard(t, f)

	summary, err := f.dashboard.Summarize(s.acme)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total)
	assert.Equal(t, int64(2), summary.ByStatus[models.ApplicationStatusPending])
	assert.Equal(t, int64(1), summary.ByStatus[models.ApplicationStatusShortlisted])
	assert.Len(t, summary.ByStatus, len(models.ApplicationStatuses))

	summary, err = f.dashboard.Summarize(s.globex)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Total)

	empty, err := f.dashboard.Summarize(f.admin(t, "x@initech.io", "Initech"))
	require.NoError(t, err)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.ByStatus[models.ApplicationStatusAccepted])
}

func TestFilterCandidates(t *testing.T) {
	f := newFixture(t, nil)
	s := seedDashboard(t, f)

	all, err := f.dashboard.FilterCandidates(s.acme, CandidateFilter{Status: "All"})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, c := range all {
		assert.NotEmpty(t, c.ApplicantEmail)
		assert.NotEqual(t, "Accountant", c.JobTitle)
	}

	byName, err := f.dashboard.FilterCandidates(s.acme, CandidateFilter{Search: "ALICE"})
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byEmail, err := f.dashboard.FilterCandidates(s.acme, CandidateFilter{Search: "bob@"})
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Bob Jones", byEmail[0].ApplicantName)

	byTitle, err := f.dashboard.FilterCandidates(s.acme, CandidateFilter{Search: "designer"})
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, s.jobB.ID, byTitle[0].JobID)

	shortlisted, err := f.dashboard.FilterCandidates(s.acme, CandidateFilter{Status: "shortlisted"})
	require.NoError(t, err)
	require.Len(t, shortlisted, 1)
	assert.Equal(t, s.alice.ID, shortlisted[0].UserID)

	_, err = f.dashboard.FilterCandidates(s.acme, CandidateFilter{Status: "archived"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestJobBreakdown(t *testing.T) {
	f := newFixture(t, nil)
	s := seedDashboard(t, f)

	breakdown, err := f.dashboard.JobBreakdown(s.acme)
	require.NoError(t, err)
	require.Len(t, breakdown, 2)

	byJob := map[uint]JobBreakdown{}
	for _, b := range breakdown {
		byJob[b.JobID] = b
	}
	a := byJob[s.jobA.ID]
	assert.Equal(t, int64(2), a.ApplicationCount)
	assert.Equal(t, int64(1), a.ByStatus[models.ApplicationStatusPending])
	assert.Equal(t, int64(1), a.ByStatus[models.ApplicationStatusShortlisted])
	assert.Equal(t, int64(1), byJob[s.jobB.ID].ByStatus[models.ApplicationStatusPending])
}

func TestDashboardCacheInvalidation(t *testing.T) {
	rs, mr := newTestRedis(t)
	f := newFixture(t, rs)
	s := seedDashboard(t, f)

	first, err := f.dashboard.Summarize(s.acme)
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Total)
	assert.NotEmpty(t, mr.Keys())

	// served from cache even though the row changed underneath
	require.NoError(t, f.db.Model(&models.Application{}).Where("job_id = ?", s.jobA.ID).
		Update("status", models.ApplicationStatusRejected).Error)
	cached, err := f.dashboard.Summarize(s.acme)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cached.ByStatus[models.ApplicationStatusRejected])

	carol := f.user(t, "carol@mail.io", "Carol")
	f.apply(t, carol.ID, s.jobB.ID)

	fresh, err := f.dashboard.Summarize(s.acme)
	require.NoError(t, err)
	assert.Equal(t, int64(4), fresh.Total)
	assert.Equal(t, int64(2), fresh.ByStatus[models.ApplicationStatusRejected])

	breakdown, err := f.dashboard.JobBreakdown(s.acme)
	require.NoError(t, err)
	assert.Len(t, breakdown, 2)
	again, err := f.dashboard.JobBreakdown(s.acme)
	require.NoError(t, err)
	assert.Equal(t, breakdown, again)
}

func TestDashboardWithoutRedisServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	f := newFixture(t, NewRedisServiceWithClient(client))
	s := seedDashboard(t, f)

	summary, err := f.dashboard.Summarize(s.acme)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total)
}

func TestFilterCandidatesSearchTreatsWildcardsLiterally(t *testing.T) {
	f := newFixture(t, nil)
	s := seedDashboard(t, f)

	for _, term := range []string{"_", "%", "!"} {
		candidates, err := f.dashboard.FilterCandidates(s.acme, CandidateFilter{Search: term})
		require.NoError(t, err)
		assert.Empty(t, candidates, term)
	}
}
