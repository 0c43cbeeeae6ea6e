package models

// User is a job seeker account
type User struct {
	BaseModel
	Email     string `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	Password  string `gorm:"type:varchar(100);not null" json:"-"`
	Name      string `gorm:"type:varchar(100)" json:"name"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`
	ResumeRef string `gorm:"type:varchar(500)" json:"resume_ref,omitempty"`
}
