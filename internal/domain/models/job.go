package models

import "strings"

// JobStatus represents the publication state of a posting
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
)

// ParseJobStatus accepts the canonical names plus the active/expired aliases
func ParseJobStatus(raw string) (JobStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "draft":
		return JobStatusDraft, true
	case "published", "active":
		return JobStatusPublished, true
	case "closed", "expired":
		return JobStatusClosed, true
	}
	return "", false
}

// Job is a posting created by an admin.
// PostedByAdminID is nil for jobs that came through the legacy email-only path.
type Job struct {
	BaseModel
	Title            string    `gorm:"type:varchar(200);not null" json:"title"`
	CompanyName      string    `gorm:"type:varchar(191);not null;index" json:"company_name"`
	Location         string    `gorm:"type:varchar(200)" json:"location"`
	Description      string    `gorm:"type:text" json:"description"`
	EmploymentType   string    `gorm:"type:varchar(50)" json:"employment_type"`
	SalaryRange      string    `gorm:"type:varchar(100)" json:"salary_range"`
	PostedByEmail    string    `gorm:"type:varchar(191);index" json:"posted_by_email"`
	PostedByAdminID  *uint     `gorm:"index" json:"posted_by_admin_id"`
	Status           JobStatus `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	ApplicationCount int64     `gorm:"not null;default:0" json:"application_count"`
	ViewCount        int64     `gorm:"not null;default:0" json:"view_count"`
}
