package models

import (
	"strings"
	"time"
)

// ApplicationStatus represents where an application sits in the triage workflow
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
)

// ApplicationStatuses lists every status in workflow order
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusAccepted,
}

// ParseApplicationStatus matches raw case-insensitively against the enum
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	candidate := ApplicationStatus(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range ApplicationStatuses {
		if s == candidate {
			return s, true
		}
	}
	return "", false
}

// IsTerminal reports whether no forward transition leaves s
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusAccepted
}

// forward edges of the recommended progression
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:     {ApplicationStatusReviewed},
	ApplicationStatusReviewed:    {ApplicationStatusShortlisted},
	ApplicationStatusShortlisted: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// CanTransitionTo reports whether next follows s in the recommended progression.
// Writing the current status again is always allowed.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application is one user's submission against one job.
// (UserID, JobID) is unique; JobID is kept after the job is deleted.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	JobID       uint              `gorm:"not null;uniqueIndex:idx_application_user_job,priority:2;index" json:"job_id"`
	UserID      uint              `gorm:"not null;uniqueIndex:idx_application_user_job,priority:1" json:"user_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ResumeRef   string            `gorm:"type:varchar(500);not null" json:"resume_ref"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter,omitempty"`
	JobTitle    string            `gorm:"type:varchar(200)" json:"job_title"`
	CompanyName string            `gorm:"type:varchar(191)" json:"company_name"`
	AppliedAt   time.Time         `gorm:"not null" json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
