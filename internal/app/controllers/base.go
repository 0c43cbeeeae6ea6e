package controllers

import (
	"strconv"

	"jobboard-http-service/internal/app/middleware"
	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// ErrorResponse documents the failure envelope
type ErrorResponse struct {
	Code    int         `json:"code" example:"107001"`
	Message string      `json:"message" example:"you have already applied to this job"`
	Data    interface{} `json:"data"`
}

// ListResponse is the data block of paginated endpoints
type ListResponse struct {
	models.PaginationResult
	Data interface{} `json:"data"`
}

// parseID reads a positive integer path parameter
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.FailWithMessage(ctx, code.ErrBind, "invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}

// currentUserID returns the job seeker id verified by AuthenticateUser
func currentUserID(ctx *gin.Context) (uint, bool) {
	id, ok := middleware.GetSubjectID(ctx)
	if !ok {
		response.Unauthorized(ctx, "")
		return 0, false
	}
	return id, true
}

// currentAdmin loads the admin identity for the verified token subject.
// The identity is always read from the database, never from the request.
func currentAdmin(ctx *gin.Context, c *container.ServiceContainer) (models.AdminIdentity, bool) {
	id, ok := middleware.GetSubjectID(ctx)
	if !ok {
		response.Unauthorized(ctx, "")
		return models.AdminIdentity{}, false
	}

	identityService := c.GetService("identity").(services.InterfaceIdentityService)
	identity, err := identityService.GetAdminIdentity(id)
	if err != nil {
		response.Error(ctx, err)
		return models.AdminIdentity{}, false
	}
	return *identity, true
}
