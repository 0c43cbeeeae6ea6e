package models

// Admin is a recruiter account that posts jobs and triages applications
type Admin struct {
	BaseModel
	Email       string `gorm:"type:varchar(191);uniqueIndex;not null" json:"email"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	CompanyName string `gorm:"type:varchar(191);index" json:"company_name"`
	CompanyType string `gorm:"type:varchar(50)" json:"company_type"`
}

// AdminIdentity is the verified view of an admin the core authorizes against.
// It is always loaded server-side from the token subject.
type AdminIdentity struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
}

// Identity returns the authorization view of the admin
func (a *Admin) Identity() AdminIdentity {
	return AdminIdentity{
		ID:          a.ID,
		Email:       a.Email,
		CompanyName: a.CompanyName,
	}
}
