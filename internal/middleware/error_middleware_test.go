package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
		wantEnvelop string
	}{
		{"domain not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found", dto.StatusFail},
		{"wrapped not found", fmt.Errorf("load: %w", apperrors.ErrLessonNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Lesson not found", dto.StatusFail},
		{"custom message", apperrors.NewCustomError(apperrors.ErrSubmissionNotFound, "No submission found for this exam"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "No submission found for this exam", dto.StatusFail},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Incorrect phone or password", dto.StatusFail},
		{"forbidden", apperrors.NewForbiddenError("Admins only"), http.StatusForbidden, dto.ErrorCodeForbidden, "Admins only", dto.StatusFail},
		{"already subscribed", apperrors.ErrAlreadySubscribed, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Already subscribed to this course", dto.StatusFail},
		{"phone taken", apperrors.ErrPhoneAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Phone number already registered", dto.StatusFail},
		{"wrong password", apperrors.ErrInvalidPassword, http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Current password is incorrect", dto.StatusFail},
		{"inactive", apperrors.ErrAssessmentInactive, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Assessment is not active", dto.StatusFail},
		{"validation", apperrors.NewValidationError("examId is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "examId is required", dto.StatusFail},
		{"conflict", apperrors.NewConflictError("Educational level already exists"), http.StatusConflict, dto.ErrorCodeConflict, "Educational level already exists", dto.StatusFail},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", dto.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantEnvelop, resp.Status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}
