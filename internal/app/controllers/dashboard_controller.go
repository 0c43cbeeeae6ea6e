package controllers

import (
	"jobboard-http-service/internal/domain/services"
	"jobboard-http-service/internal/domain/services/container"
	"jobboard-http-service/internal/error/code"
	"jobboard-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the admin candidate dashboard
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a dashboard controller
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc returns a gin handler for dashboard requests
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "summary":
			controller.Summary()
		case "jobs":
			controller.Jobs()
		case "candidates":
			controller.Candidates()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

func (c *DashboardController) dashboard() services.InterfaceDashboardService {
	return c.Container.GetService("dashboard").(services.InterfaceDashboardService)
}

// 1. Summary
// @Summary      Application counts by status
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  services.StatusSummary
// @Router       /admin/dashboard/summary [get]
// @Security     BearerAuth
func (c *DashboardController) Summary() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}

	summary, err := c.dashboard().Summarize(admin)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, summary)
}

// 2. Jobs
// @Summary      Per-job application counts
// @Tags         Dashboard
// @Produce      json
// @Success      200  {array}  services.JobBreakdown
// @Router       /admin/dashboard/jobs [get]
// @Security     BearerAuth
func (c *DashboardController) Jobs() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}

	breakdown, err := c.dashboard().JobBreakdown(admin)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, breakdown)
}

// 3. Candidates
// @Summary      Search candidates
// @Tags         Dashboard
// @Produce      json
// @Param        search query string false "applicant name, email or job title"
// @Param        status query string false "all or one application status"
// @Success      200  {array}  services.Candidate
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/candidates [get]
// @Security     BearerAuth
func (c *DashboardController) Candidates() {
	admin, ok := currentAdmin(c.Ctx, c.Container)
	if !ok {
		return
	}

	var filter services.CandidateFilter
	if err := c.Ctx.ShouldBindQuery(&filter); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	candidates, err := c.dashboard().FilterCandidates(admin, filter)
	if err != nil {
		response.Error(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, candidates)
}
