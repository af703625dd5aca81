package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tobi/edushare/internal/app/models"
	"github.com/tobi/edushare/internal/app/models/dto"
	"github.com/tobi/edushare/internal/app/services"
	"github.com/tobi/edushare/internal/middleware"
)

// QuizController handles quiz and attempt operations
type QuizController struct {
	quizService services.QuizService
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService services.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

func toAttemptResponse(a *models.QuizAttempt) dto.AttemptResponse {
	return dto.AttemptResponse{
		ID:             a.ID,
		QuizID:         a.QuizID,
		Score:          a.Score,
		TotalQuestions: a.TotalQuestions,
		ScorePercent:   int(math.Round(a.ScorePercent())),
		Passed:         a.Passed,
		CompletedAt:    a.CompletedAt,
	}
}

// CreateQuiz handles creating a quiz with its questions
// @Summary Create a quiz
// @Description Creates a quiz with its questions in pending moderation state
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz details"
// @Success 201 {object} dto.APIResponse{data=dto.QuizResponse} "Quiz created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.CreateQuizRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	quiz, err := c.quizService.CreateQuiz(ctx.Request.Context(), &req, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromQuiz(quiz)))
}

// ListQuizzes handles listing quizzes
// @Summary List quizzes
// @Description Lists quizzes, restricted to the approved set for non-admins
// @Tags quizzes
// @Produce json
// @Param status query string false "Filter by moderation status (admins only)"
// @Success 200 {object} dto.APIResponse{data=[]dto.QuizResponse} "Quizzes retrieved successfully"
// @Security BearerAuth
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzes(ctx.Request.Context(), middleware.GetUserRole(ctx), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.QuizResponse, 0, len(quizzes))
	for i := range quizzes {
		responses = append(responses, dto.FromQuiz(&quizzes[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(responses))
}

// GetQuiz handles retrieving one quiz with its questions
// @Summary Get a quiz
// @Description Retrieves a quiz with its questions. Correct answers are never included.
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse{data=dto.QuizResponse} "Quiz retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Security BearerAuth
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	quiz, err := c.quizService.GetQuiz(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromQuiz(quiz)))
}

// DeleteQuiz handles removing a quiz
// @Summary Delete a quiz
// @Description Deletes a quiz. Restricted to the creator and admins. Recorded attempts are kept.
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse "Quiz deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Security BearerAuth
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.quizService.DeleteQuiz(ctx.Request.Context(), id, middleware.GetUserID(ctx), middleware.GetUserRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Quiz deleted successfully"))
}

// SubmitAttempt handles scoring a quiz submission
// @Summary Submit a quiz attempt
// @Description Scores the submitted answers and records the attempt. The pass result is fixed at submission time.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param request body dto.SubmitAttemptRequest true "Chosen option index per question, in question order"
// @Success 201 {object} dto.APIResponse{data=dto.AttemptResponse} "Attempt recorded"
// @Failure 400 {object} dto.ErrorResponse "Answer count does not match question count"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Security BearerAuth
// @Router /quizzes/{id}/attempts [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SubmitAttemptRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	attempt, err := c.quizService.SubmitAttempt(ctx.Request.Context(), id, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(toAttemptResponse(attempt)))
}
