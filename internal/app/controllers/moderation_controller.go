package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/services"
	"github.com/tobi/edushare/internal/middleware"
	"github.com/tobi/edushare/internal/pkg/helpers"
)

// ModerationController handles content moderation and report operations
type ModerationController struct {
	moderationService services.ModerationService
}

// NewModerationController creates a new ModerationController
func NewModerationController(moderationService services.ModerationService) *ModerationController {
	return &ModerationController{moderationService: moderationService}
}

// GetModerationQueue lists materials awaiting moderation
// @Summary Get moderation queue
// @Description Lists materials in pending moderation state, oldest first
// @Tags moderation
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 25, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialListResponse} "Queue retrieved successfully"
// @Security BearerAuth
// @Router /moderation/materials [get]
func (c *ModerationController) GetModerationQueue(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	queue, err := c.moderationService.GetModerationQueue(ctx.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(queue))
}

// ModerateMaterial approves or rejects a material
// @Summary Moderate a material
// @Description Moves a material to approved or rejected state. Re-moderation is allowed.
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body dto.ModerationRequest true "Moderation decision"
// @Success 200 {object} dto.APIResponse "Material moderated"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /moderation/materials/{id} [put]
func (c *ModerationController) ModerateMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	err := c.moderationService.ModerateMaterial(ctx.Request.Context(), id, models.ModerationStatus(req.Status), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Material moderated"))
}

// ModerateQuiz approves or rejects a quiz
// @Summary Moderate a quiz
// @Description Moves a quiz to approved or rejected state. Re-moderation is allowed.
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param request body dto.ModerationRequest true "Moderation decision"
// @Success 200 {object} dto.APIResponse "Quiz moderated"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Security BearerAuth
// @Router /moderation/quizzes/{id} [put]
func (c *ModerationController) ModerateQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ModerationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	err := c.moderationService.ModerateQuiz(ctx.Request.Context(), id, models.ModerationStatus(req.Status), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Quiz moderated"))
}

// FileReport files a report against a material
// @Summary Report a material
// @Description Files a moderation report against a material
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body dto.CreateReportRequest true "Report reason"
// @Success 201 {object} dto.APIResponse{data=models.Report} "Report filed"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id}/reports [post]
func (c *ModerationController) FileReport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	report, err := c.moderationService.FileReport(ctx.Request.Context(), middleware.GetUserID(ctx), id, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(report))
}

// GetReports lists reports by status
// @Summary List reports
// @Description Lists moderation reports in the given state (default: pending)
// @Tags moderation
// @Produce json
// @Param status query string false "Report status (pending, resolved, dismissed)"
// @Success 200 {object} dto.APIResponse{data=[]models.Report} "Reports retrieved successfully"
// @Security BearerAuth
// @Router /moderation/reports [get]
func (c *ModerationController) GetReports(ctx *gin.Context) {
	status := models.ReportStatus(ctx.DefaultQuery("status", string(models.ReportPending)))

	reports, err := c.moderationService.GetReports(ctx.Request.Context(), status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reports))
}

// ResolveReport closes a report
// @Summary Resolve a report
// @Description Closes a report as resolved or dismissed
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body dto.ResolveReportRequest true "Resolution"
// @Success 200 {object} dto.APIResponse "Report closed"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /moderation/reports/{id} [put]
func (c *ModerationController) ResolveReport(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResolveReportRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	err := c.moderationService.ResolveReport(ctx.Request.Context(), id, models.ReportStatus(req.Status), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Report closed"))
}
