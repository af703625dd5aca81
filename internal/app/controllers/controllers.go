package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/services"
)

// Controllers bundles all HTTP controllers
type Controllers struct {
	Auth        *AuthController
	Material    *MaterialController
	Quiz        *QuizController
	Performance *PerformanceController
	Catalog     *CatalogController
	Engagement  *EngagementController
	Moderation  *ModerationController
}

// NewControllers wires all controllers onto the service layer
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(svcs.Auth),
		Material:    NewMaterialController(svcs.Material),
		Quiz:        NewQuizController(svcs.Quiz),
		Performance: NewPerformanceController(svcs.Performance),
		Catalog:     NewCatalogController(svcs.Catalog),
		Engagement:  NewEngagementController(svcs.Engagement),
		Moderation:  NewModerationController(svcs.Moderation),
	}
}

// parseIDParam parses a numeric path parameter, writing the error response
// itself on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
