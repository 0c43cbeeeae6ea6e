package controllers

import (
	"jobboard-http-service/internal/app/middleware"
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceApplicationController defines application endpoints
type InterfaceApplicationController interface {
	Apply()
	ListMine()
	ListByJob()
	ListOwned()
	GetApplication()
	UpdateStatus()
	DeleteApplication()
	History()
}

// ApplicationController handles applications for both applicants and admins
type ApplicationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewApplicationController creates an application controller
func NewApplicationController(ctx *gin.Context, container *container.ServiceContainer) *ApplicationController {
	return &ApplicationController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateStatusRequest is the status change body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"shortlisted"`
}

// HandleApplicationFunc returns a gin handler for application requests
func HandleApplicationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewApplicationController(ctx, container)

		switch method {
		case "apply":
			controller.Apply()
		case "listMine":
			controller.ListMine()
		case "listByJob":
			controller.ListByJob()
		case "listOwned":
			controller.ListOwned()
		case "getApplication":
			controller.GetApplication()
		case "updateStatus":
			controller.UpdateStatus()
		case "deleteApplication":
			controller.DeleteApplication()
		case "history":
			controller.History()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *ApplicationController) applications() services.InterfaceApplicationService {
	return c.Container.GetService("application").(services.InterfaceApplicationService)
}

// 1. Apply
// @Summary      Apply to a job
// @Tags         Application
// @Accept       json
// @Produce      json
// @Param        id path int true "job id"
// @Param        request body services.ApplyInput true "application"
// @Success      201  {object}  models.Application
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (c *ApplicationController) Apply() {
	userID, ok := currentUserID(c.Ctx)
	if !ok {
		return
	}
	jobID, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req services.ApplyInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	application, err := c.applications().Apply(userID, jobID, &req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	// application_count is part of the cached job listing
	middleware.PurgeCache()
	response.Created(c.Ctx, application)
}

// 2. ListMine
// @Summary      My applications
// @Description  Includes applications whose job has since been deleted
// @Tags         Application
// @Produce      json
// @Success      200  {array}  models.Application
// @Router       /me/applications [get]
// @Security     BearerAuth
func (c *ApplicationController) ListMine() {
	userID, ok := currentUserID(c.Ctx)
	if !ok {
		return
	}

	applications, err := c.applications().ListByUser(userID)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, applications)
}

// 3. ListByJob
// @Summary      Applications to an owned job
// @Tags         Admin Application
// @Produce      json
// @Param        id path int true "job id"
// @Success      200  {array}  models.Application
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/jobs/{id}/applications [get]
// @Security     BearerAuth
func (c *ApplicationController) ListByJob() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	jobID, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	applications, err := c.applications().ListByJobForAdmin(admin, jobID)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, applications)
}

// 4. ListOwned
// @Summary      Applications across all owned jobs
// @Tags         Admin Application
// @Produce      json
// @Success      200  {array}  models.Application
// @Router       /admin/applications [get]
// @Security     BearerAuth
func (c *ApplicationController) ListOwned() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}

	applications, err := c.applications().ListByOwnedJobs(admin)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, applications)
}

// 5. GetApplication
// @Summary      Get an application to an owned job
// @Tags         Admin Application
// @Produce      json
// @Param        id path int true "application id"
// @Success      200  {object}  models.Application
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/applications/{id} [get]
// @Security     BearerAuth
func (c *ApplicationController) GetApplication() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	application, err := c.applications().GetApplication(id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	jobs := c.Container.GetService("job").(services.InterfaceJobService)
	if _, err := jobs.GetOwnedJob(admin, application.JobID); err != nil {
		response.Error(c.Ctx, &services.AuthorizationError{AdminID: admin.ID, Resource: services.ResourceApplication, ID: id})
		return
	}
	response.Success(c.Ctx, application)
}

// 6. UpdateStatus
// @Summary      Change an application's status
// @Description  Any of pending, reviewed, shortlisted, rejected, accepted unless strict transitions are enabled
// @Tags         Admin Application
// @Accept       json
// @Produce      json
// @Param        id path int true "application id"
// @Param        request body UpdateStatusRequest true "new status"
// @Success      200  {object}  models.Application
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/applications/{id}/status [put]
// @Security     BearerAuth
func (c *ApplicationController) UpdateStatus() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	application, err := c.applications().UpdateStatus(admin, id, req.Status)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, application)
}

// 7. DeleteApplication
// @Summary      Delete an application to an owned job
// @Description  The job's application_count is not decremented
// @Tags         Admin Application
// @Produce      json
// @Param        id path int true "application id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/applications/{id} [delete]
// @Security     BearerAuth
func (c *ApplicationController) DeleteApplication() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	if err := c.applications().DeleteApplication(admin, id); err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, gin.H{"id": id})
}

// 8. History
// @Summary      Operation log of an application
// @Tags         Admin Application
// @Produce      json
// @Param        id path int true "application id"
// @Success      200  {array}  models.OperationLog
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/applications/{id}/history [get]
// @Security     BearerAuth
func (c *ApplicationController) History() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	logs, err := c.applications().History(admin, id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, logs)
}
