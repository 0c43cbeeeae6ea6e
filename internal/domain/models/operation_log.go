package models

import (
	"time"
)

type OperationType string

const (
	OperationStatusChange      OperationType = "status_change"
	OperationApplicationDelete OperationType = "application_delete"
)

// OperationLog records an admin action taken on an application
type OperationLog struct {
	BaseModel
	OperationType OperationType     `gorm:"type:varchar(50);not null;index" json:"operation_type"`
	AdminID       uint              `gorm:"not null;index" json:"admin_id"`
	ApplicationID uint              `gorm:"not null;index" json:"application_id"`
	JobID         uint              `gorm:"index" json:"job_id"`
	FromStatus    ApplicationStatus `gorm:"type:varchar(20)" json:"from_status,omitempty"`
	ToStatus      ApplicationStatus `gorm:"type:varchar(20)" json:"to_status,omitempty"`
	Details       string            `gorm:"type:text" json:"details,omitempty"`
	Timestamp     time.Time         `gorm:"not null" json:"timestamp"`
}
