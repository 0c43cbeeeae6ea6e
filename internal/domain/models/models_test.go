package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJobStatusAliases(t *testing.T) {
	cases := map[string]JobStatus{
		"draft":     JobStatusDraft,
		"Published": JobStatusPublished,
		"active":    JobStatusPublished,
		" CLOSED ":  JobStatusClosed,
		"expired":   JobStatusClosed,
	}
	for raw, want := range cases {
		got, ok := ParseJobStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := ParseJobStatus("archived")
	assert.False(t, ok)
}

func TestParseApplicationStatus(t *testing.T) {
	got, ok := ParseApplicationStatus("Shortlisted")
	assert.True(t, ok)
	assert.Equal(t, ApplicationStatusShortlisted, got)

	_, ok = ParseApplicationStatus("Archived")
	assert.False(t, ok)
	_, ok = ParseApplicationStatus("")
	assert.False(t, ok)
}

func TestCanTransitionTo(t *testing.T) {
	assert.True(t, ApplicationStatusPending.CanTransitionTo(ApplicationStatusReviewed))
	assert.True(t, ApplicationStatusShortlisted.CanTransitionTo(ApplicationStatusAccepted))
	assert.True(t, ApplicationStatusShortlisted.CanTransitionTo(ApplicationStatusRejected))
	assert.True(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusRejected))

	assert.False(t, ApplicationStatusPending.CanTransitionTo(ApplicationStatusAccepted))
	assert.False(t, ApplicationStatusRejected.CanTransitionTo(ApplicationStatusPending))
	assert.False(t, ApplicationStatusAccepted.CanTransitionTo(ApplicationStatusShortlisted))

	assert.True(t, ApplicationStatusAccepted.IsTerminal())
	assert.False(t, ApplicationStatusReviewed.IsTerminal())
}

func TestNewPaginationResult(t *testing.T) {
	p := NewPaginationResult(21, 2, 10)
	assert.Equal(t, int64(3), p.TotalPages)

	q := PaginationQuery{Page: 0, PageSize: 500}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxPageSize, q.PageSize)

	q = PaginationQuery{Page: MaxPage + 1, PageSize: -3}
	q.Normalize()
	assert.Equal(t, MaxPage, q.Page)
	assert.Equal(t, DefaultPageSize, q.PageSize)

	q = PaginationQuery{Page: 3, PageSize: 100}
	q.Normalize()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.PageSize)
}
