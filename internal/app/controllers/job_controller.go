package controllers

import (
	"jobboard-http-service/internal/app/middleware"
	"jobboard-http-service/internal/domain/models"
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/error/response"
	Logger "jobboard-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceJobController defines job endpoints
type InterfaceJobController interface {
	ListJobs()
	GetJob()
	CreateJob()
	UpdateJob()
	DeleteJob()
	ListOwnedJobs()
	GetOwnedJob()
}

// JobController handles job postings
type JobController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJobController creates a job controller
func NewJobController(ctx *gin.Context, container *container.ServiceContainer) *JobController {
	return &JobController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleJobFunc returns a gin handler for job requests
func HandleJobFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJobController(ctx, container)

		switch method {
		case "listJobs":
			controller.ListJobs()
		case "getJob":
			controller.GetJob()
		case "createJob":
			controller.CreateJob()
		case "updateJob":
			controller.UpdateJob()
		case "deleteJob":
			controller.DeleteJob()
		case "listOwnedJobs":
			controller.ListOwnedJobs()
		case "getOwnedJob":
			controller.GetOwnedJob()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *JobController) jobs() services.InterfaceJobService {
	return c.Container.GetService("job").(services.InterfaceJobService)
}

// 1. ListJobs lists public postings; only published jobs unless status is given
// @Summary      List jobs
// @Tags         Job
// @Produce      json
// @Param        status query string false "draft, published (active), closed (expired)"
// @Param        search query string false "matches title or company"
// @Param        location query string false "location substring"
// @Param        page query int false "page, default 1"
// @Param        page_size query int false "page size, default 10, capped at 100"
// @Success      200  {object}  ListResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /jobs [get]
func (c *JobController) ListJobs() {
	var filter services.JobFilter
	if err := c.Ctx.ShouldBindQuery(&filter); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}
	if filter.Status == "" {
		filter.Status = string(models.JobStatusPublished)
	}
	if status, ok := models.ParseJobStatus(filter.Status); ok && status == models.JobStatusDraft {
		response.Forbidden(c.Ctx, "draft jobs are only visible to their owners")
		return
	}
	filter.Normalize()

	jobs, total, err := c.jobs().ListJobs(filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, ListResponse{
		PaginationResult: models.NewPaginationResult(total, filter.Page, filter.PageSize),
		Data:             jobs,
	})
}

// 2. GetJob returns a non-draft job and counts the view
// @Summary      Get job
// @Tags         Job
// @Produce      json
// @Param        id path int true "job id"
// @Success      200  {object}  models.Job
// @Failure      404  {object}  ErrorResponse
// @Router       /jobs/{id} [get]
func (c *JobController) GetJob() {
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobs().GetJob(id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	if job.Status == models.JobStatusDraft {
		response.Error(c.Ctx, &services.NotFoundError{Resource: services.ResourceJob, ID: id})
		return
	}

	if err := c.jobs().RecordView(id); err != nil {
		Logger.Warning("failed to record view for job %d: %v", id, err)
	} else {
		job.ViewCount++
	}
	response.Success(c.Ctx, job)
}

// 3. CreateJob posts a job tagged with the caller's id and email
// @Summary      Create job
// @Tags         Admin Job
// @Accept       json
// @Produce      json
// @Param        request body services.CreateJobInput true "job"
// @Success      201  {object}  models.Job
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/jobs [post]
// @Security     BearerAuth
func (c *JobController) CreateJob() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}

	var req services.CreateJobInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}
	if req.CompanyName == "" {
		req.CompanyName = admin.CompanyName
	}
	adminID := admin.ID
	req.PostedByAdminID = &adminID
	req.PostedByEmail = admin.Email

	job, err := c.jobs().CreateJob(&req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	middleware.PurgeCache()
	response.Created(c.Ctx, job)
}

// 4. UpdateJob
// @Summary      Update an owned job
// @Tags         Admin Job
// @Accept       json
// @Produce      json
// @Param        id path int true "job id"
// @Param        request body services.UpdateJobInput true "fields to change"
// @Success      200  {object}  models.Job
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/jobs/{id} [put]
// @Security     BearerAuth
func (c *JobController) UpdateJob() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	var req services.UpdateJobInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	job, err := c.jobs().UpdateJob(admin, id, &req)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, job)
}

// 5. DeleteJob
// @Summary      Delete an owned job
// @Description  Applications to the job are kept for the applicants' history
// @Tags         Admin Job
// @Produce      json
// @Param        id path int true "job id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/jobs/{id} [delete]
// @Security     BearerAuth
func (c *JobController) DeleteJob() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	if err := c.jobs().DeleteJob(admin, id); err != nil {
		response.Error(c.Ctx, err)
		return
	}

	middleware.PurgeCache()
	response.Success(c.Ctx, gin.H{"id": id})
}

// 6. ListOwnedJobs
// @Summary      List jobs the caller manages
// @Tags         Admin Job
// @Produce      json
// @Success      200  {array}  models.Job
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (c *JobController) ListOwnedJobs() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}

	jobs, err := c.jobs().ListJobsByAdmin(admin)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, jobs)
}

// 7. GetOwnedJob returns any owned job, drafts included
// @Summary      Get an owned job
// @Tags         Admin Job
// @Produce      json
// @Param        id path int true "job id"
// @Success      200  {object}  models.Job
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/jobs/{id} [get]
// @Security     BearerAuth
func (c *JobController) GetOwnedJob() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}
	id, ok := parseID(c.Ctx, "id")
	if !ok {
		return
	}

	job, err := c.jobs().GetOwnedJob(admin, id)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, job)
}
