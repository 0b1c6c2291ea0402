package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/apperrors"
	"github.com/genius/elearning/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	status  int
	code    dto.ErrorCode
	message string
}

// errorTable is checked in order; the first matching sentinel wins
var errorTable = []struct {
	targets []error
	mapping errorMapping
}{
	{
		targets: []error{
			apperrors.ErrUserNotFound, apperrors.ErrEducationalLevelNotFound, apperrors.ErrCourseNotFound,
			apperrors.ErrLessonNotFound, apperrors.ErrExamNotFound, apperrors.ErrAssignmentNotFound,
			apperrors.ErrQuestionNotFound, apperrors.ErrSubmissionNotFound, apperrors.ErrSubscriptionNotFound,
			apperrors.ErrNotificationNotFound, apperrors.ErrNoteNotFound, apperrors.ErrNoteOrderNotFound,
		},
		mapping: errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
	},
	{[]error{apperrors.ErrResourceNotFound}, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"}},
	{[]error{apperrors.ErrPermissionDenied}, errorMapping{http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"}},
	{[]error{apperrors.ErrInvalidCredentials}, errorMapping{http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Incorrect phone or password"}},
	{[]error{apperrors.ErrTokenExpired}, errorMapping{http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"}},
	{[]error{apperrors.ErrTokenInvalid}, errorMapping{http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"}},
	{[]error{apperrors.ErrTokenNotFound}, errorMapping{http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Not authorized, no token"}},
	{[]error{apperrors.ErrUnauthorized}, errorMapping{http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Not authorized"}},
	{[]error{apperrors.ErrInvalidPassword}, errorMapping{http.StatusBadRequest, dto.ErrorCodeInvalidPassword, "Current password is incorrect"}},
	{[]error{apperrors.ErrPhoneAlreadyExists}, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Phone number already registered"}},
	{[]error{apperrors.ErrAlreadySubscribed}, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, "Already subscribed to this course"}},
	{[]error{apperrors.ErrAssessmentInactive}, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceInvalid, ""}},
	{[]error{apperrors.ErrValidationFailed}, errorMapping{http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"}},
	{[]error{apperrors.ErrBadRequest}, errorMapping{http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"}},
	{[]error{apperrors.ErrConflict}, errorMapping{http.StatusConflict, dto.ErrorCodeConflict, "Resource already exists"}},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	status, code, message := http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"

	matched := false
	for _, entry := range errorTable {
		for _, target := range entry.targets {
			if !errors.Is(err, target) {
				continue
			}
			status, code, message = entry.mapping.status, entry.mapping.code, entry.mapping.message
			if message == "" {
				message = capitalize(target.Error())
			}
			matched = true
			break
		}
		if matched {
			break
		}
	}

	if matched {
		if msg, ok := apperrors.Message(err); ok {
			message = msg
		}
	} else {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
	}

	errorDetail := dto.NewErrorDetail(code, message)
	c.AbortWithStatusJSON(status, dto.NewErrorResponseForStatus(status, errorDetail))
}
