package controllers

import (
	"jobboard-http-service/internal/app/middleware"
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// ProfileController lets each identity read and edit its own profile
type ProfileController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProfileController creates a profile controller
func NewProfileController(ctx *gin.Context, container *container.ServiceContainer) *ProfileController {
	return &ProfileController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleProfileFunc returns a gin handler for profile requests
func HandleProfileFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProfileController(ctx, container)

		switch method {
		case "getUser":
			controller.GetUser()
		case "updateUser":
			controller.UpdateUser()
		case "getAdmin":
			controller.GetAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *ProfileController) identity() services.InterfaceIdentityService {
	return c.Container.GetService("identity").(services.InterfaceIdentityService)
}

// 1. GetUser
// @Summary      My profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  models.User
// @Router       /me [get]
// @Security     BearerAuth
func (c *ProfileController) GetUser() {
	userID, ok := currentUserID(c.Ctx)
	if !ok {
		return
	}

	user, err := c.identity().GetUser(userID)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, user)
}

// 2. UpdateUser
// @Summary      Update my profile
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body services.UserProfileInput true "fields to change"
// @Success      200  {object}  models.User
// @Failure      400  {object}  ErrorResponse
// @Router       /me [put]
// @Security     BearerAuth
func (c *ProfileController) UpdateUser() {
	userID, ok := currentUserID(c.Ctx)
	if !ok {
		return
	}

	var req services.UserProfileInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	user, err := c.identity().UpdateUser(userID, &req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, user)
}

// 3. GetAdmin
// @Summary      Admin profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  models.Admin
// @Router       /admin/profile [get]
// @Security     BearerAuth
func (c *ProfileController) GetAdmin() {
	adminID, ok := middleware.GetSubjectID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "")
		return
	}

	admin, err := c.identity().GetAdmin(adminID)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, admin)
}

// 4. UpdateAdmin
// @Summary      Update admin profile
// @Description  Changing company_name changes which legacy jobs match by company
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Param        request body services.AdminProfileInput true "fields to change"
// @Success      200  {object}  models.Admin
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/profile [put]
// @Security     BearerAuth
func (c *ProfileController) UpdateAdmin() {
	adminID, ok := middleware.GetSubjectID(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx, "")
		return
	}

	var req services.AdminProfileInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	admin, err := c.identity().UpdateAdmin(adminID, &req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, admin)
}
