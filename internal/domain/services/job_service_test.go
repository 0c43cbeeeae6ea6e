package services

import (
	"math"
	"testing"

	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobDefaults(t *testing.T) {
	f := newFixture(t, nil)
	admin := f.admin(t, "hr@acme.io", "Acme")

	job, err := f.jobs.CreateJob(&CreateJobInput{Title: " Backend Engineer ", CompanyName: "Acme", PostedByEmail: admin.Email})
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, models.JobStatusDraft, job.Status)
	assert.Zero(t, job.ApplicationCount)
	assert.Zero(t, job.ViewCount)
	assert.Nil(t, job.PostedByAdminID)
}

func TestCreateJobValidation(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.jobs.CreateJob(&CreateJobInput{CompanyName: "Acme"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = f.jobs.CreateJob(&CreateJobInput{Title: "Dev", CompanyName: "   "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "company_name", verr.Field)

	_, err = f.jobs.CreateJob(&CreateJobInput{Title: "Dev", CompanyName: "Acme", Status: "archived"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)

	job, err := f.jobs.CreateJob(&CreateJobInput{Title: "Dev", CompanyName: "Acme", Status: "Active"})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPublished, job.Status)
}

func TestGetJobNotFound(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.jobs.GetJob(404)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, ResourceJob, nf.Resource)
	assert.Equal(t, uint(404), nf.ID)
}

func TestListJobsFilters(t *testing.T) {
	f := newFixture(t, nil)
	acme := f.admin(t, "hr@acme.io", "Acme")
	globex := f.admin(t, "hr@globex.io", "Globex")

	f.job(t, acme, "Go Developer")
	f.job(t, globex, "Data Analyst")
	_, err := f.jobs.CreateJob(&CreateJobInput{Title: "Intern", CompanyName: "Acme", Location: "Berlin"})
	require.NoError(t, err)

	jobs, total, err := f.jobs.ListJobs(JobFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, "Intern", jobs[0].Title, "newest first")

	jobs, total, err = f.jobs.ListJobs(JobFilter{Status: "published"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, jobs, 2)

	jobs, _, err = f.jobs.ListJobs(JobFilter{Search: "ACME"})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, _, err = f.jobs.ListJobs(JobFilter{Search: "analyst"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Analyst", jobs[0].Title)

	jobs, _, err = f.jobs.ListJobs(JobFilter{Location: "berl"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Intern", jobs[0].Title)

	jobs, total, err = f.jobs.ListJobs(JobFilter{PaginationQuery: models.PaginationQuery{Page: 2, PageSize: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, jobs, 1)

	_, _, err = f.jobs.ListJobs(JobFilter{Status: "bogus"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestUpdateJobOwnerOnly(t *testing.T) {
	f := newFixture(t, nil)
	owner := f.admin(t, "hr@acme.io", "Acme")
	other := f.admin(t, "hr@globex.io", "Globex")
	job := f.job(t, owner, "Go Developer")
	user := f.user(t, "u@mail.io", "U")
	f.apply(t, user.ID, job.ID)

	title := "Senior Go Developer"
	_, err := f.jobs.UpdateJob(other, job.ID, &UpdateJobInput{Title: &title})
	var aerr *AuthorizationError
	require.ErrorAs(t, err, &aerr)

	status := "closed"
	updated, err := f.jobs.UpdateJob(owner, job.ID, &UpdateJobInput{Title: &title, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, models.JobStatusClosed, updated.Status)
	assert.Equal(t, int64(1), updated.ApplicationCount)

	apps, err := f.apps.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, title, apps[0].JobTitle)

	empty := " "
	_, err = f.jobs.UpdateJob(owner, job.ID, &UpdateJobInput{Title: &empty})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteJobKeepsApplications(t *testing.T) {
	f := newFixture(t, nil)
	owner := f.admin(t, "hr@acme.io", "Acme")
	other := f.admin(t, "hr@globex.io", "Globex")
	job := f.job(t, owner, "Go Developer")
	user := f.user(t, "u@mail.io", "U")
	f.apply(t, user.ID, job.ID)

	var aerr *AuthorizationError
	require.ErrorAs(t, f.jobs.DeleteJob(other, job.ID), &aerr)

	require.NoError(t, f.jobs.DeleteJob(owner, job.ID))

	_, err := f.jobs.GetJob(job.ID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)

	apps, err := f.apps.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Go Developer", apps[0].JobTitle)
	assert.Equal(t, "Acme", apps[0].CompanyName)

	require.ErrorAs(t, f.jobs.DeleteJob(owner, job.ID), &nf)
}

func TestRecordView(t *testing.T) {
	f := newFixture(t, nil)
	owner := f.admin(t, "hr@acme.io", "Acme")
	job := f.job(t, owner, "Go Developer")

	require.NoError(t, f.jobs.RecordView(job.ID))
	require.NoError(t, f.jobs.RecordView(job.ID))

	got, err := f.jobs.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)

	var nf *NotFoundError
	assert.ErrorAs(t, f.jobs.RecordView(999), &nf)
}

func TestIncrementApplicationCountUnknownJob(t *testing.T) {
	f := newFixture(t, nil)

	var nf *NotFoundError
	assert.ErrorAs(t, f.jobs.IncrementApplicationCount(nil, 77), &nf)
}

func TestListJobsByAdminTiers(t *testing.T) {
	f := newFixture(t, nil)
	acme := f.admin(t, "hr@acme.io", "Acme")
	globex := f.admin(t, "hr@globex.io", "Globex")

	byID := f.job(t, acme, "By ID")
	byEmail := f.legacyJob(t, "HR@acme.io", "Somebody Else", "By Email")
	byCompany := f.legacyJob(t, "old@acme.io", "Acme Europe", "By Company")
	f.job(t, globex, "Globex Job")
	f.legacyJob(t, "nobody@x.io", "Umbrella", "Unowned")

	owned, err := f.jobs.ListJobsByAdmin(acme)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{byID.ID, byEmail.ID, byCompany.ID}, jobIDs(owned))

	owned, err = f.jobs.ListJobsByAdmin(globex)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestListJobsByAdminWithoutCompanyMatch(t *testing.T) {
	f := newFixture(t, nil, func(c *config.Config) { c.OwnershipCompanyMatch = false })
	acme := f.admin(t, "hr@acme.io", "Acme")
	f.legacyJob(t, "old@acme.io", "Acme Europe", "By Company")

	owned, err := f.jobs.ListJobsByAdmin(acme)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestListJobsSearchTreatsWildcardsLiterally(t *testing.T) {
	f := newFixture(t, nil)
	acme := f.admin(t, "hr@acme.io", "Acme")

	f.job(t, acme, "Go Developer")
	f.job(t, acme, "Data Analyst")

	for _, term := range []string{"_", "%", "!"} {
		jobs, total, err := f.jobs.ListJobs(JobFilter{Search: term})
		require.NoError(t, err)
		assert.Zero(t, total, term)
		assert.Empty(t, jobs, term)

		jobs, _, err = f.jobs.ListJobs(JobFilter{Location: term})
		require.NoError(t, err)
		assert.Empty(t, jobs, term)
	}

	f.job(t, acme, "Sales_Lead 50% remote")

	jobs, _, err := f.jobs.ListJobs(JobFilter{Search: "50%"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Sales_Lead 50% remote", jobs[0].Title)

	jobs, _, err = f.jobs.ListJobs(JobFilter{Search: "sa_es"})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestListJobsHugePage(t *testing.T) {
	f := newFixture(t, nil)
	acme := f.admin(t, "hr@acme.io", "Acme")
	f.job(t, acme, "Go Developer")

	jobs, total, err := f.jobs.ListJobs(JobFilter{PaginationQuery: models.PaginationQuery{Page: math.MaxInt, PageSize: 1000}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, jobs)
}
