package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleBindError turns a ShouldBind* failure into a 400 response listing every failed field
func HandleBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		collected := dto.NewValidationErrors()
		for _, fe := range verrs {
			collected.AddError(fe.Field(), validation.FieldMessage(fe))
		}

		message := collected.Errors[0].Message
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
			WithField(collected.Errors[0].Field).
			WithDetails(collected.Messages())
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, typeErr.Field+" has an invalid type").
			WithField(typeErr.Field)
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request format").WithDetails(err.Error())
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
