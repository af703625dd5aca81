package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/services"
	"github.com/tobi/edushare/internal/middleware"
)

// PerformanceController handles student performance aggregation
type PerformanceController struct {
	performanceService services.PerformanceService
}

// NewPerformanceController creates a new PerformanceController
func NewPerformanceController(performanceService services.PerformanceService) *PerformanceController {
	return &PerformanceController{performanceService: performanceService}
}

// GetOwnPerformance returns the authenticated student's aggregated quiz performance
// @Summary Get own performance
// @Description Aggregates the student's quiz attempts into averages, pass rate, study streak, weekly trend and per-course strengths and weaknesses
// @Tags performance
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.PerformanceResponse} "Performance retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /students/me/performance [get]
func (c *PerformanceController) GetOwnPerformance(ctx *gin.Context) {
	perf, err := c.performanceService.GetStudentPerformance(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(perf))
}
