package controllers

import (
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController defines registration and login for both identity classes
type InterfaceAuthController interface {
	RegisterAdmin()
	LoginAdmin()
	RegisterUser()
	LoginUser()
}

// AuthController handles authentication requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates an auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login body for admins and users
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"hr@acme.io"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// HandleAuthFunc returns a gin handler for auth requests
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "registerAdmin":
			controller.RegisterAdmin()
		case "loginAdmin":
			controller.LoginAdmin()
		case "registerUser":
			controller.RegisterUser()
		case "loginUser":
			controller.LoginUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *AuthController) identity() services.InterfaceIdentityService {
	return c.Container.GetService("identity").(services.InterfaceIdentityService)
}

// 1. RegisterAdmin
// @Summary      Register a recruiter account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body services.AdminRegisterInput true "admin account"
// @Success      201  {object}  models.Admin
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /auth/admin/register [post]
func (c *AuthController) RegisterAdmin() {
	var req services.AdminRegisterInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	admin, err := c.identity().RegisterAdmin(&req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, admin)
}

// 2. LoginAdmin
// @Summary      Admin login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "credentials"
// @Success      200  {object}  services.LoginResult
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/admin/login [post]
func (c *AuthController) LoginAdmin() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	result, err := c.identity().LoginAdmin(req.Email, req.Password)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, result)
}

// 3. RegisterUser
// @Summary      Register a job seeker account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body services.UserRegisterInput true "user account"
// @Success      201  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /auth/user/register [post]
func (c *AuthController) RegisterUser() {
	var req services.UserRegisterInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	user, err := c.identity().RegisterUser(&req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, user)
}

// 4. LoginUser
// @Summary      Job seeker login
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "credentials"
// @Success      200  {object}  services.LoginResult
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/user/login [post]
func (c *AuthController) LoginUser() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	result, err := c.identity().LoginUser(req.Email, req.Password)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, result)
}
