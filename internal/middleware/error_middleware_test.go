package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tobi/edushare/internal/pkg/apperrors"
)

func handleErr(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w.Code
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"material not found", apperrors.ErrMaterialNotFound, 404},
		{"quiz not found", apperrors.ErrQuizNotFound, 404},
		{"user not found", apperrors.ErrUserNotFound, 404},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound), 404},
		{"permission denied", apperrors.ErrPermissionDenied, 403},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401},
		{"account disabled", apperrors.ErrAccountDisabled, 403},
		{"token expired", apperrors.ErrTokenExpired, 401},
		{"token revoked", apperrors.ErrTokenRevoked, 401},
		{"answer count mismatch", apperrors.ErrAnswerCountMismatch, 400},
		{"rating out of range", apperrors.ErrRatingOutOfRange, 400},
		{"bad request with message", apperrors.NewBadRequestError("broken payload"), 400},
		{"email taken", apperrors.ErrEmailAlreadyExists, 409},
		{"unknown error", errors.New("connection reset"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handleErr(tt.err))
		})
	}
}
