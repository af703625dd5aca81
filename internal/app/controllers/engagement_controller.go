package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/services"
	"github.com/tobi/edushare/internal/middleware"
)

// EngagementController handles bookmarks, ratings and reviews
type EngagementController struct {
	engagementService services.EngagementService
}

// NewEngagementController creates a new EngagementController
func NewEngagementController(engagementService services.EngagementService) *EngagementController {
	return &EngagementController{engagementService: engagementService}
}

// GetBookmarks lists the authenticated user's bookmarks
// @Summary List own bookmarks
// @Tags engagement
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Bookmark} "Bookmarks retrieved successfully"
// @Security BearerAuth
// @Router /users/me/bookmarks [get]
func (c *EngagementController) GetBookmarks(ctx *gin.Context) {
	bookmarks, err := c.engagementService.GetBookmarks(ctx.Request.Context(), middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(bookmarks))
}

// AddBookmark bookmarks a material
// @Summary Bookmark a material
// @Description Bookmarks an approved material. Bookmarking the same material twice is a no-op.
// @Tags engagement
// @Produce json
// @Param id path int true "Material ID"
// @Success 201 {object} dto.APIResponse "Material bookmarked"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id}/bookmark [post]
func (c *EngagementController) AddBookmark(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.engagementService.AddBookmark(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Material bookmarked"))
}

// RemoveBookmark removes a bookmark
// @Summary Remove a bookmark
// @Tags engagement
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse "Bookmark removed"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Security BearerAuth
// @Router /materials/{id}/bookmark [delete]
func (c *EngagementController) RemoveBookmark(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.engagementService.RemoveBookmark(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Bookmark removed"))
}

// RateMaterial records or replaces the caller's rating of a material
// @Summary Rate a material
// @Description Records or replaces the caller's 1-5 star rating
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body dto.RateMaterialRequest true "Rating value"
// @Success 200 {object} dto.APIResponse "Rating recorded"
// @Failure 400 {object} dto.ErrorResponse "Rating out of range"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id}/rating [put]
func (c *EngagementController) RateMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RateMaterialRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.engagementService.RateMaterial(ctx.Request.Context(), middleware.GetUserID(ctx), id, req.Value); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Rating recorded"))
}

// RemoveRating removes the caller's rating of a material
// @Summary Remove a rating
// @Tags engagement
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse "Rating removed"
// @Security BearerAuth
// @Router /materials/{id}/rating [delete]
func (c *EngagementController) RemoveRating(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.engagementService.RemoveRating(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Rating removed"))
}

// GetReviews lists a material's reviews
// @Summary List reviews
// @Tags engagement
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Review} "Reviews retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id}/reviews [get]
func (c *EngagementController) GetReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	reviews, err := c.engagementService.GetReviews(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(reviews))
}

// ReviewMaterial records or replaces the caller's review of a material
// @Summary Review a material
// @Description Records or replaces the caller's written review
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body dto.CreateReviewRequest true "Review body"
// @Success 200 {object} dto.APIResponse "Review recorded"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id}/reviews [put]
func (c *EngagementController) ReviewMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.engagementService.ReviewMaterial(ctx.Request.Context(), middleware.GetUserID(ctx), id, req.Body); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Review recorded"))
}

// RemoveReview removes the caller's review of a material
// @Summary Remove a review
// @Tags engagement
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse "Review removed"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Security BearerAuth
// @Router /materials/{id}/reviews [delete]
func (c *EngagementController) RemoveReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.engagementService.RemoveReview(ctx.Request.Context(), middleware.GetUserID(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Review removed"))
}
