package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/services"
	"github.com/tobi/edushare/internal/middleware"
	"github.com/tobi/edushare/internal/pkg/helpers"
)

// MaterialController handles learning material operations
type MaterialController struct {
	materialService services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

// ListMaterials handles the materials list with filtering, sorting and pagination
// @Summary List materials
// @Description Retrieves learning materials with optional filtering, sorting and pagination
// @Tags materials
// @Accept json
// @Produce json
// @Param courseId query int false "Filter by course ID"
// @Param level query int false "Filter by level (100-500)"
// @Param semester query int false "Filter by semester (1 or 2)"
// @Param topic query string false "Filter by topic (case-insensitive substring)"
// @Param materialType query string false "Filter by type (lecture_notes, textbook, study_guide, past_questions)"
// @Param uploaderRole query string false "Filter by uploader role (STUDENT, INSTRUCTOR, INSTITUTION)"
// @Param search query string false "Search in title and description"
// @Param sortBy query string false "Sort order (newest, oldest, highest_rated, most_reviewed, alphabetical)"
// @Param status query string false "Filter by moderation status (admins only)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 25, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialListResponse} "Materials retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /materials [get]
func (c *MaterialController) ListMaterials(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	q := dto.MaterialQuery{
		Topic:        ctx.Query("topic"),
		MaterialType: ctx.Query("materialType"),
		UploaderRole: ctx.Query("uploaderRole"),
		Search:       ctx.Query("search"),
		SortBy:       ctx.Query("sortBy"),
		Status:       ctx.Query("status"),
		Page:         page,
		Limit:        limit,
	}

	if courseIDStr := ctx.Query("courseId"); courseIDStr != "" {
		if courseID, err := strconv.ParseInt(courseIDStr, 10, 64); err == nil {
			q.CourseID = &courseID
		}
	}
	if levelStr := ctx.Query("level"); levelStr != "" {
		if level, err := strconv.Atoi(levelStr); err == nil {
			q.Level = &level
		}
	}
	if semesterStr := ctx.Query("semester"); semesterStr != "" {
		if semester, err := strconv.Atoi(semesterStr); err == nil {
			q.Semester = &semester
		}
	}

	result, err := c.materialService.ListMaterials(ctx.Request.Context(), q, middleware.GetUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetMaterial handles retrieving one material by ID
// @Summary Get a material
// @Description Retrieves a single material and registers a view
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=models.Material} "Material retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id} [get]
func (c *MaterialController) GetMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	material, err := c.materialService.GetMaterial(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(material))
}

// CreateMaterial handles uploading new material metadata
// @Summary Create a material
// @Description Records uploaded material metadata in pending moderation state
// @Tags materials
// @Accept json
// @Produce json
// @Param request body dto.CreateMaterialRequest true "Material details"
// @Success 201 {object} dto.APIResponse{data=models.Material} "Material created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /materials [post]
func (c *MaterialController) CreateMaterial(ctx *gin.Context) {
	var req dto.CreateMaterialRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	material, err := c.materialService.CreateMaterial(ctx.Request.Context(), &req, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(material))
}

// UpdateMaterial handles editing material metadata
// @Summary Update a material
// @Description Applies a partial update to material metadata. Restricted to the uploader and admins.
// @Tags materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param request body dto.UpdateMaterialRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Material} "Material updated successfully"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id} [put]
func (c *MaterialController) UpdateMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMaterialRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	material, err := c.materialService.UpdateMaterial(ctx.Request.Context(), id, &req, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(material))
}

// DeleteMaterial handles removing a material
// @Summary Delete a material
// @Description Deletes a material. Restricted to the uploader and admins.
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse "Material deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id} [delete]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.materialService.DeleteMaterial(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Material deleted successfully"))
}

// DownloadMaterial handles registering a material download
// @Summary Download a material
// @Description Registers a download and returns the material with its file URL
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.APIResponse{data=models.Material} "Download registered"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Security BearerAuth
// @Router /materials/{id}/download [post]
func (c *MaterialController) DownloadMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	material, err := c.materialService.RegisterDownload(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(material))
}
