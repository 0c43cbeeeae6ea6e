package services

import (
	"errors"
	"fmt"

	"jobboard-http-service/internal/domain/models"
)

// ValidationError reports a missing or malformed input field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DuplicateApplicationError is returned when (UserID, JobID) already has an application
type DuplicateApplicationError struct {
	UserID uint
	JobID  uint
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("user %d has already applied to job %d", e.UserID, e.JobID)
}

// SelfApplicationError is returned when the applicant is the job's poster
type SelfApplicationError struct {
	JobID uint
}

func (e *SelfApplicationError) Error() string {
	return fmt.Sprintf("cannot apply to job %d posted by yourself", e.JobID)
}

// NotFoundError names the resource kind and the id that was looked up
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// AuthorizationError is returned when an admin mutates or reads something it does not own
type AuthorizationError struct {
	AdminID  uint
	Resource string
	ID       uint
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("admin %d may not manage %s %d", e.AdminID, e.Resource, e.ID)
}

// StatusTransitionError is only produced when strict status transitions are enabled
type StatusTransitionError struct {
	From models.ApplicationStatus
	To   models.ApplicationStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("status cannot move from %s to %s", e.From, e.To)
}

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// resource names used in NotFoundError and AuthorizationError
const (
	ResourceJob         = "job"
	ResourceApplication = "application"
	ResourceUser        = "user"
	ResourceAdmin       = "admin"
)
