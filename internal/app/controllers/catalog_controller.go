package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/services"
	"github.com/tobi/edushare/internal/middleware"
)

// CatalogController handles institution, programme and course operations
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// optionalIDQuery parses an optional numeric query parameter
func optionalIDQuery(ctx *gin.Context, name string) *int64 {
	if s := ctx.Query(name); s != "" {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			return &id
		}
	}
	return nil
}

// GetInstitutions lists all institutions
// @Summary List institutions
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Institution} "Institutions retrieved successfully"
// @Router /institutions [get]
func (c *CatalogController) GetInstitutions(ctx *gin.Context) {
	institutions, err := c.catalogService.GetInstitutions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(institutions))
}

// GetInstitution retrieves one institution
// @Summary Get an institution
// @Tags catalog
// @Produce json
// @Param id path int true "Institution ID"
// @Success 200 {object} dto.APIResponse{data=models.Institution} "Institution retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Router /institutions/{id} [get]
func (c *CatalogController) GetInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	institution, err := c.catalogService.GetInstitution(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(institution))
}

// CreateInstitution creates an institution
// @Summary Create an institution
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateInstitutionRequest true "Institution details"
// @Success 201 {object} dto.APIResponse{data=models.Institution} "Institution created successfully"
// @Failure 409 {object} dto.ErrorResponse "Institution already exists"
// @Security BearerAuth
// @Router /institutions [post]
func (c *CatalogController) CreateInstitution(ctx *gin.Context) {
	var req dto.CreateInstitutionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	institution, err := c.catalogService.CreateInstitution(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(institution))
}

// UpdateInstitution updates an institution
// @Summary Update an institution
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Institution ID"
// @Param request body dto.UpdateInstitutionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Institution} "Institution updated successfully"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Security BearerAuth
// @Router /institutions/{id} [put]
func (c *CatalogController) UpdateInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstitutionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	institution, err := c.catalogService.UpdateInstitution(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(institution))
}

// DeleteInstitution deletes an institution
// @Summary Delete an institution
// @Tags catalog
// @Produce json
// @Param id path int true "Institution ID"
// @Success 200 {object} dto.APIResponse "Institution deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Security BearerAuth
// @Router /institutions/{id} [delete]
func (c *CatalogController) DeleteInstitution(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteInstitution(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Institution deleted successfully"))
}

// GetProgrammes lists programmes, optionally for one institution
// @Summary List programmes
// @Tags catalog
// @Produce json
// @Param institutionId query int false "Filter by institution ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Programme} "Programmes retrieved successfully"
// @Router /programmes [get]
func (c *CatalogController) GetProgrammes(ctx *gin.Context) {
	programmes, err := c.catalogService.GetProgrammes(ctx.Request.Context(), optionalIDQuery(ctx, "institutionId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(programmes))
}

// CreateProgramme creates a programme
// @Summary Create a programme
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateProgrammeRequest true "Programme details"
// @Success 201 {object} dto.APIResponse{data=models.Programme} "Programme created successfully"
// @Failure 404 {object} dto.ErrorResponse "Institution not found"
// @Security BearerAuth
// @Router /programmes [post]
func (c *CatalogController) CreateProgramme(ctx *gin.Context) {
	var req dto.CreateProgrammeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	programme, err := c.catalogService.CreateProgramme(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(programme))
}

// DeleteProgramme deletes a programme
// @Summary Delete a programme
// @Tags catalog
// @Produce json
// @Param id path int true "Programme ID"
// @Success 200 {object} dto.APIResponse "Programme deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Programme not found"
// @Security BearerAuth
// @Router /programmes/{id} [delete]
func (c *CatalogController) DeleteProgramme(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteProgramme(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Programme deleted successfully"))
}

// GetCourses lists courses, optionally for one programme
// @Summary List courses
// @Tags catalog
// @Produce json
// @Param programmeId query int false "Filter by programme ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	courses, err := c.catalogService.GetCourses(ctx.Request.Context(), optionalIDQuery(ctx, "programmeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// CreateCourse creates a course
// @Summary Create a course
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course details"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 404 {object} dto.ErrorResponse "Programme not found"
// @Security BearerAuth
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.catalogService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags catalog
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Security BearerAuth
// @Router /courses/{id} [delete]
func (c *CatalogController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted successfully"))
}
