package services

import (
	"errors"
	"strings"
	"time"

	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/infrastructure/config"
	"jobboard-http-service/internal/infrastructure/database"
	"jobboard-http-service/pkg/utils"

	"gorm.io/gorm"
)

// InterfaceIdentityService registers, authenticates and loads admins and users
type InterfaceIdentityService interface {
	RegisterAdmin(input *AdminRegisterInput) (*models.Admin, error)
	RegisterUser(input *UserRegisterInput) (*models.User, error)
	LoginAdmin(email, password string) (*LoginResult, error)
	LoginUser(email, password string) (*LoginResult, error)
	GetAdmin(id uint) (*models.Admin, error)
	GetAdminIdentity(id uint) (*models.AdminIdentity, error)
	UpdateAdmin(id uint, input *AdminProfileInput) (*models.Admin, error)
	GetUser(id uint) (*models.User, error)
	UpdateUser(id uint, input *UserProfileInput) (*models.User, error)
}

// AdminRegisterInput is the admin sign-up body
type AdminRegisterInput struct {
	Email       string `json:"email" validate:"required,email,max=191"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Name        string `json:"name" validate:"max=100"`
	CompanyName string `json:"company_name" validate:"required,max=191"`
	CompanyType string `json:"company_type" validate:"max=50"`
}

// UserRegisterInput is the job seeker sign-up body
type UserRegisterInput struct {
	Email     string `json:"email" validate:"required,email,max=191"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Name      string `json:"name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"max=20"`
	ResumeRef string `json:"resume_ref" validate:"max=500"`
}

// AdminProfileInput holds editable admin fields; nil means unchanged
type AdminProfileInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	CompanyName *string `json:"company_name" validate:"omitempty,min=1,max=191"`
	CompanyType *string `json:"company_type" validate:"omitempty,max=50"`
}

// UserProfileInput holds editable user fields; nil means unchanged
type UserProfileInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
	ResumeRef *string `json:"resume_ref" validate:"omitempty,max=500"`
}

// LoginResult is returned by both login flows
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
}

// IdentityService is backed by the admins and users tables
type IdentityService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

// NewIdentityService creates the identity store
func NewIdentityService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceIdentityService {
	return &IdentityService{
		DB:     db,
		Config: cfg,
		JWT:    jwtService,
	}
}

// 1 RegisterAdmin creates an admin with a hashed password
func (s *IdentityService) RegisterAdmin(input *AdminRegisterInput) (*models.Admin, error) {
	input.Email = utils.NormalizeEmail(input.Email)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(&models.Admin{}, input.Email); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:       input.Email,
		Password:    hashed,
		Name:        strings.TrimSpace(input.Name),
		CompanyName: input.CompanyName,
		CompanyType: input.CompanyType,
	}
	if err := s.DB.Create(admin).Error; err != nil {
		if database.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return admin, nil
}

// 2 RegisterUser creates a job seeker with a hashed password
func (s *IdentityService) RegisterUser(input *UserRegisterInput) (*models.User, error) {
	input.Email = utils.NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(&models.User{}, input.Email); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     input.Email,
		Password:  hashed,
		Name:      input.Name,
		Phone:     input.Phone,
		ResumeRef: strings.TrimSpace(input.ResumeRef),
	}
	if err := s.DB.Create(user).Error; err != nil {
		if database.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *IdentityService) ensureEmailFree(model interface{}, email string) error {
	var count int64
	if err := s.DB.Model(model).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	return nil
}

// 3 LoginAdmin checks admin credentials and issues an admin token
func (s *IdentityService) LoginAdmin(email, password string) (*LoginResult, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", utils.NormalizeEmail(email)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.JWT.GenerateToken(admin.ID, RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      RoleAdmin,
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
	}, nil
}

// 4 LoginUser checks user credentials and issues a user token
func (s *IdentityService) LoginUser(email, password string) (*LoginResult, error) {
	var user models.User
	if err := s.DB.Where("email = ?", utils.NormalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.JWT.GenerateToken(user.ID, RoleUser)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      RoleUser,
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
	}, nil
}

// 5 GetAdmin loads an admin by id
func (s *IdentityService) GetAdmin(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: ResourceAdmin, ID: id}
		}
		return nil, err
	}
	return &admin, nil
}

// 6 GetAdminIdentity loads the authorization view of an admin
func (s *IdentityService) GetAdminIdentity(id uint) (*models.AdminIdentity, error) {
	admin, err := s.GetAdmin(id)
	if err != nil {
		return nil, err
	}
	identity := admin.Identity()
	return &identity, nil
}

// 7 UpdateAdmin edits an admin profile; email is immutable
func (s *IdentityService) UpdateAdmin(id uint, input *AdminProfileInput) (*models.Admin, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	admin, err := s.GetAdmin(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.CompanyName != nil {
		company := strings.TrimSpace(*input.CompanyName)
		if company == "" {
			return nil, &ValidationError{Field: "company_name", Reason: "is required"}
		}
		updates["company_name"] = company
	}
	if input.CompanyType != nil {
		updates["company_type"] = *input.CompanyType
	}
	if len(updates) == 0 {
		return admin, nil
	}

	if err := s.DB.Model(admin).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetAdmin(id)
}

// 8 GetUser loads a user by id
func (s *IdentityService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: ResourceUser, ID: id}
		}
		return nil, err
	}
	return &user, nil
}

// 9 UpdateUser edits a user profile; email is immutable
func (s *IdentityService) UpdateUser(id uint, input *UserProfileInput) (*models.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Reason: "is required"}
		}
		updates["name"] = name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.ResumeRef != nil {
		updates["resume_ref"] = strings.TrimSpace(*input.ResumeRef)
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUser(id)
}
